// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"log"

	"github.com/paulmach/orb/geojson"
	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/config"
	"github.com/thatcatcamp/focusmap/internal/dataset"
	"github.com/thatcatcamp/focusmap/internal/db"
	"github.com/thatcatcamp/focusmap/internal/mapview"
	"github.com/thatcatcamp/focusmap/internal/metrics"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

// initSystemDB opens the configured session database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// loadCatalog reads the configured dataset and indexes it
func loadCatalog() (*geojson.FeatureCollection, *catalog.Catalog, error) {
	path := config.GetString("dataset.path")
	fc, err := dataset.Load(path)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			log.Printf("CRITICAL: dataset %s could not be found, the map has no data", path)
		}
		return nil, nil, err
	}

	props := catalog.Properties{
		Department:   config.GetString("dataset.department_property"),
		Municipality: config.GetString("dataset.municipality_property"),
	}
	cat := catalog.Build(fc, props)

	for _, col := range cat.Collisions() {
		log.Printf("dataset: municipality %q in %q (feature %d) replaces the one in %q",
			col.Municipality, col.Department, col.Index, col.PreviousDepartment)
	}
	log.Printf("dataset: %d departments, %d municipalities from %s", len(cat.Departments()), cat.Len(), path)

	metrics.DatasetMunicipalities.Set(float64(cat.Len()))
	metrics.DatasetCollisions.Set(float64(len(cat.Collisions())))

	return fc, cat, nil
}

// tileLayer builds the base layer configured under map.<key>. A layer
// without a URL is treated as not configured.
func tileLayer(key string) *mapview.TileLayer {
	url := config.GetString("map." + key + ".url")
	if url == "" {
		return nil
	}
	return &mapview.TileLayer{
		Name:        config.GetString("map." + key + ".name"),
		URL:         url,
		Attribution: config.GetString("map." + key + ".attribution"),
		MaxZoom:     config.GetInt("map." + key + ".max_zoom"),
	}
}

// newFactory builds the session factory from the map.* settings
func newFactory(cat *catalog.Catalog) *sessions.Factory {
	style := mapview.DefaultFocusStyle()
	style.Dimmer.Color = config.GetString("map.focus.dimmer_color")
	style.Dimmer.FillOpacity = config.GetFloat64("map.focus.dimmer_opacity")
	style.Highlight.Color = config.GetString("map.focus.highlight_color")
	style.Highlight.Weight = config.GetFloat64("map.focus.highlight_weight")

	padding := config.GetInt("map.fit_padding")

	return &sessions.Factory{
		Catalog:   cat,
		OSM:       tileLayer("osm"),
		Satellite: tileLayer("sat"),
		Focus:     style,
		Fit: mapview.FitOptions{
			Padding: [2]int{padding, padding},
			MaxZoom: config.GetInt("map.max_zoom"),
		},
		DefaultBase: mapview.Mode(config.GetString("map.default_base")),
	}
}
