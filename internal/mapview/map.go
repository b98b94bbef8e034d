// SPDX-License-Identifier: MIT
package mapview

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrNoMap is returned by constructors that need a map and got nil
var ErrNoMap = errors.New("map is required")

// Map is the subset of a Leaflet map the controllers drive
type Map interface {
	AddLayer(l Layer)
	RemoveLayer(l Layer)
	HasLayer(l Layer) bool
	FitBounds(b orb.Bound, opts FitOptions)
}

// FitOptions are the options passed along with a fitBounds call
type FitOptions struct {
	Padding [2]int `json:"padding"`
	MaxZoom int    `json:"maxZoom"`
}

// DefaultFitOptions pads 50px on both axes and stops at zoom 14
func DefaultFitOptions() FitOptions {
	return FitOptions{Padding: [2]int{50, 50}, MaxZoom: 14}
}

// Canvas is the server-side model of one browser map. Layers are kept in
// insertion order; later layers draw above earlier ones.
type Canvas struct {
	layers   []Layer
	viewport *Viewport
}

// Viewport is the last fitBounds request
type Viewport struct {
	Bounds  [2][2]float64 `json:"bounds"`
	Options FitOptions    `json:"options"`
}

// LayerView is the JSON form of a layer handed to the browser
type LayerView struct {
	Kind        LayerKind        `json:"kind"`
	Name        string           `json:"name"`
	URL         string           `json:"url,omitempty"`
	Attribution string           `json:"attribution,omitempty"`
	MaxZoom     int              `json:"maxZoom,omitempty"`
	Bounds      *[2][2]float64   `json:"bounds,omitempty"`
	Style       *Style           `json:"style,omitempty"`
	Interactive bool             `json:"interactive"`
	Feature     *geojson.Feature `json:"feature,omitempty"`
}

// View is a snapshot of the canvas
type View struct {
	Layers   []LayerView `json:"layers"`
	Viewport *Viewport   `json:"viewport,omitempty"`
}

// NewCanvas creates an empty map
func NewCanvas() *Canvas {
	return &Canvas{}
}

// AddLayer puts l on top of the stack. Tile layers go on top of the other
// tile layers but stay below every overlay, matching Leaflet's panes.
// Adding a layer that is already present does nothing.
func (c *Canvas) AddLayer(l Layer) {
	if l == nil || c.HasLayer(l) {
		return
	}
	if l.layerView().Kind != KindTile {
		c.layers = append(c.layers, l)
		return
	}

	i := 0
	for i < len(c.layers) && c.layers[i].layerView().Kind == KindTile {
		i++
	}
	c.layers = append(c.layers, nil)
	copy(c.layers[i+1:], c.layers[i:])
	c.layers[i] = l
}

// RemoveLayer takes l off the map if present
func (c *Canvas) RemoveLayer(l Layer) {
	for i, existing := range c.layers {
		if existing == l {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// HasLayer reports whether this exact layer is on the map
func (c *Canvas) HasLayer(l Layer) bool {
	for _, existing := range c.layers {
		if existing == l {
			return true
		}
	}
	return false
}

// FitBounds records the requested viewport
func (c *Canvas) FitBounds(b orb.Bound, opts FitOptions) {
	c.viewport = &Viewport{Bounds: LatLngBounds(b), Options: opts}
}

// Layers returns the layer stack, bottom first
func (c *Canvas) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Count returns how many layers of a kind are on the map
func (c *Canvas) Count(kind LayerKind) int {
	n := 0
	for _, l := range c.layers {
		if l.layerView().Kind == kind {
			n++
		}
	}
	return n
}

// Viewport returns the last fitted viewport, or nil if none
func (c *Canvas) Viewport() *Viewport {
	if c.viewport == nil {
		return nil
	}
	v := *c.viewport
	return &v
}

// View renders the canvas for the browser
func (c *Canvas) View() View {
	view := View{Layers: make([]LayerView, 0, len(c.layers))}
	for _, l := range c.layers {
		view.Layers = append(view.Layers, l.layerView())
	}
	view.Viewport = c.Viewport()
	return view
}
