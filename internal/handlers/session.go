// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/focusmap/internal/mapview"
	"github.com/thatcatcamp/focusmap/internal/metrics"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

type departmentRequest struct {
	Department string `json:"department"`
}

type municipalityRequest struct {
	Municipality string `json:"municipality"`
}

type fullscreenRequest struct {
	Fullscreen   bool                 `json:"fullscreen"`
	Capabilities mapview.Capabilities `json:"capabilities"`
}

type fullscreenResponse struct {
	Action mapview.FullscreenAction `json:"action"`
	View   sessions.View            `json:"view"`
}

// ViewHandler returns the caller's current map state
func (h *Handler) ViewHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// SelectDepartmentHandler handles a change of the department select. An
// unknown department resets the selection and still answers 200.
func (h *Handler) SelectDepartmentHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view := s.SelectDepartment(req.Department)
	h.save(s)
	c.JSON(http.StatusOK, view)
}

// SelectMunicipalityHandler zooms to and highlights a municipality
func (h *Handler) SelectMunicipalityHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req municipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view := s.SelectMunicipality(req.Municipality)
	h.save(s)
	c.JSON(http.StatusOK, view)
}

// BaseLayerHandler switches between the osm and sat base maps. Unknown
// tokens leave the map untouched.
func (h *Handler) BaseLayerHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	view, switched := s.SwitchBaseLayer(c.Param("tipo"))
	if switched {
		h.save(s)
	}
	c.JSON(http.StatusOK, view)
}

// FullscreenHandler tells the browser which fullscreen method to call on
// the page body. The state itself lives in the browser.
func (h *Handler) FullscreenHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req fullscreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	action := mapview.ToggleFullscreen(req.Fullscreen, req.Capabilities)
	method := action.Method
	if method == "" {
		method = "unsupported"
	}
	metrics.FullscreenTogglesTotal.WithLabelValues(method).Inc()

	c.JSON(http.StatusOK, fullscreenResponse{Action: action, View: s.View()})
}
