// SPDX-License-Identifier: MIT
package handlers

import (
	"embed"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// ServeStaticHandler serves the embedded client script and the generated
// stylesheet.
func ServeStaticHandler(c *gin.Context) {
	name := path.Clean("/" + c.Param("filepath"))[1:]

	if name == "focusmap.css" {
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(GetPageCSS()))
		return
	}

	data, err := staticFiles.ReadFile("static/" + name)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	contentType := "application/octet-stream"
	switch path.Ext(name) {
	case ".js":
		contentType = "application/javascript; charset=utf-8"
	case ".css":
		contentType = "text/css; charset=utf-8"
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, contentType, data)
}
