// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/focusmap/internal/filter"
	"github.com/thatcatcamp/focusmap/internal/middleware"
)

//go:embed templates/index.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

type pageData struct {
	Title        string
	CSRFToken    string
	Department   filter.Select
	Municipality filter.Select
	Buttons      map[string]bool
}

// PageHandler renders the map page with the caller's current selection
// already filled in.
func (h *Handler) PageHandler(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	view := s.View()

	buttons := make(map[string]bool, len(view.Buttons))
	for _, b := range view.Buttons {
		buttons[b.ID] = b.Active
	}

	data := pageData{
		Title:        h.title,
		CSRFToken:    middleware.CSRFToken(c),
		Department:   view.Department,
		Municipality: view.Municipality,
		Buttons:      buttons,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Printf("failed to render page: %v", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
