// SPDX-License-Identifier: MIT
package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LayerKind tells the browser which Leaflet constructor to use
type LayerKind string

const (
	KindTile      LayerKind = "tile"
	KindRectangle LayerKind = "rectangle"
	KindGeoJSON   LayerKind = "geojson"
)

// Layer is anything that can sit on a Map
type Layer interface {
	LayerName() string
	layerView() LayerView
}

// Style mirrors Leaflet's path options
type Style struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillColor   string  `json:"fillColor,omitempty"`
	FillOpacity float64 `json:"fillOpacity"`
}

// TileLayer is a pre-built base map
type TileLayer struct {
	Name        string
	URL         string
	Attribution string
	MaxZoom     int
}

func (l *TileLayer) LayerName() string { return l.Name }

func (l *TileLayer) layerView() LayerView {
	return LayerView{
		Kind:        KindTile,
		Name:        l.Name,
		URL:         l.URL,
		Attribution: l.Attribution,
		MaxZoom:     l.MaxZoom,
		Interactive: true,
	}
}

// Rectangle is a styled box between two corners
type Rectangle struct {
	Name        string
	Bounds      orb.Bound
	Style       Style
	Interactive bool
}

func (l *Rectangle) LayerName() string { return l.Name }

func (l *Rectangle) layerView() LayerView {
	b := LatLngBounds(l.Bounds)
	style := l.Style
	return LayerView{
		Kind:        KindRectangle,
		Name:        l.Name,
		Bounds:      &b,
		Style:       &style,
		Interactive: l.Interactive,
	}
}

// GeoJSONLayer draws a single feature
type GeoJSONLayer struct {
	Name        string
	Feature     *geojson.Feature
	Style       Style
	Interactive bool
}

func (l *GeoJSONLayer) LayerName() string { return l.Name }

func (l *GeoJSONLayer) layerView() LayerView {
	style := l.Style
	return LayerView{
		Kind:        KindGeoJSON,
		Name:        l.Name,
		Style:       &style,
		Interactive: l.Interactive,
		Feature:     l.Feature,
	}
}

// LatLngBounds converts an orb bound (lon/lat points) into Leaflet's
// [[south, west], [north, east]] order.
func LatLngBounds(b orb.Bound) [2][2]float64 {
	return [2][2]float64{
		{b.Min.Lat(), b.Min.Lon()},
		{b.Max.Lat(), b.Max.Lon()},
	}
}
