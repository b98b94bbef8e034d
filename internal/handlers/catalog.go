// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/focusmap/internal/mapview"
)

// CatalogHandler returns every department with its sorted municipalities
func (h *Handler) CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": h.catalog.Snapshot()})
}

// DatasetHandler returns the loaded feature collection
func (h *Handler) DatasetHandler(c *gin.Context) {
	if h.dataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, h.dataset)
}

// DepartmentsHandler returns the sorted department names
func (h *Handler) DepartmentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Departments())
}

// MunicipalitiesHandler returns the sorted municipalities of a department
func (h *Handler) MunicipalitiesHandler(c *gin.Context) {
	munis, ok := h.catalog.Municipalities(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
		return
	}
	c.JSON(http.StatusOK, munis)
}

// MunicipalityHandler returns one municipality's feature and its bounds in
// Leaflet order. Bounds are null for features without geometry.
func (h *Handler) MunicipalityHandler(c *gin.Context) {
	name := c.Param("name")
	feature, ok := h.catalog.Feature(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "municipality not found"})
		return
	}

	var bounds *[2][2]float64
	if b, ok := h.catalog.Bounds(name); ok {
		lb := mapview.LatLngBounds(b)
		bounds = &lb
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"bounds":  bounds,
		"feature": feature,
	})
}

// SearchHandler finds municipalities by name, ignoring case and accents
func (h *Handler) SearchHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, h.index.Search(c.Query("q"), limit))
}
