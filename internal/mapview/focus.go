// SPDX-License-Identifier: MIT
package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// WorldBounds spans every latitude and longitude
var WorldBounds = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

const (
	dimmerLayerName    = "focus-dimmer"
	highlightLayerName = "focus-highlight"
)

// FocusStyle holds the look of the two focus overlays
type FocusStyle struct {
	Dimmer    Style
	Highlight Style
}

// DefaultFocusStyle is a 60% black curtain and a cyan 4px outline
func DefaultFocusStyle() FocusStyle {
	return FocusStyle{
		Dimmer: Style{
			Color:       "#000",
			Weight:      0,
			FillOpacity: 0.6,
		},
		Highlight: Style{
			Color:       "#00ffff",
			Weight:      4,
			FillColor:   "transparent",
			FillOpacity: 0,
		},
	}
}

// FocusEffect darkens the whole map and outlines one feature on top.
// At most one dimmer and one highlight exist at a time.
type FocusEffect struct {
	m         Map
	style     FocusStyle
	dimmer    *Rectangle
	highlight *GeoJSONLayer
}

// NewFocusEffect binds the effect to a map
func NewFocusEffect(m Map, style FocusStyle) (*FocusEffect, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	return &FocusEffect{m: m, style: style}, nil
}

// Apply replaces any active overlays with a dimmer and a highlight of f.
// A nil feature only clears.
func (e *FocusEffect) Apply(f *geojson.Feature) {
	e.Clear()
	if f == nil {
		return
	}

	e.dimmer = &Rectangle{
		Name:        dimmerLayerName,
		Bounds:      WorldBounds,
		Style:       e.style.Dimmer,
		Interactive: false,
	}
	e.m.AddLayer(e.dimmer)

	e.highlight = &GeoJSONLayer{
		Name:        highlightLayerName,
		Feature:     f,
		Style:       e.style.Highlight,
		Interactive: false,
	}
	e.m.AddLayer(e.highlight)
}

// Clear removes both overlays. Safe to call when nothing is active.
func (e *FocusEffect) Clear() {
	if e.dimmer != nil {
		e.m.RemoveLayer(e.dimmer)
		e.dimmer = nil
	}
	if e.highlight != nil {
		e.m.RemoveLayer(e.highlight)
		e.highlight = nil
	}
}

// Active reports whether overlays are on the map
func (e *FocusEffect) Active() bool {
	return e.dimmer != nil || e.highlight != nil
}

// Feature returns the highlighted feature, or nil
func (e *FocusEffect) Feature() *geojson.Feature {
	if e.highlight == nil {
		return nil
	}
	return e.highlight.Feature
}
