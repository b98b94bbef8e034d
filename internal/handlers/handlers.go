// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"github.com/thatcatcamp/focusmap/internal/auth"
	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/search"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

// Handler serves the map page and its JSON API
type Handler struct {
	catalog *catalog.Catalog
	index   *search.Index
	dataset *geojson.FeatureCollection
	store   *sessions.Store
	title   string
}

// New creates a handler. The dataset may be nil, in which case the page
// is drawn without the data layer.
func New(cat *catalog.Catalog, dataset *geojson.FeatureCollection, store *sessions.Store, title string) (*Handler, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}
	return &Handler{
		catalog: cat,
		index:   search.NewIndex(cat),
		dataset: dataset,
		store:   store,
		title:   title,
	}, nil
}

// session fetches the caller's session, writing a 500 when the session
// middleware did not run.
func (h *Handler) session(c *gin.Context) (*sessions.Session, bool) {
	s, ok := auth.CurrentSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "no session"})
		return nil, false
	}
	return s, true
}

// save persists s. The response is sent regardless; a failed write only
// costs the selection on the next restart.
func (h *Handler) save(s *sessions.Session) {
	if err := h.store.Save(s); err != nil {
		log.Printf("%v", err)
	}
}
