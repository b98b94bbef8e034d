// SPDX-License-Identifier: MIT
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// basePolicy lets the page load Leaflet from unpkg and tiles from any
// HTTPS host.
const basePolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' https://unpkg.com; " +
	"style-src 'self' 'unsafe-inline' https://unpkg.com; " +
	"img-src 'self' data: https:; " +
	"connect-src 'self'; "

// contentSecurityPolicy allows framing by the page's own origin plus
// frameAncestors.
func contentSecurityPolicy(frameAncestors []string) string {
	return basePolicy + "frame-ancestors " + strings.Join(append([]string{"'self'"}, frameAncestors...), " ")
}

// SecurityHeadersMiddleware adds security headers to all responses. HSTS
// is only sent when hsts is set. When frameAncestors is not empty the map
// may be embedded by those origins and X-Frame-Options is left out, since
// it cannot name other sites.
func SecurityHeadersMiddleware(hsts bool, frameAncestors []string) gin.HandlerFunc {
	csp := contentSecurityPolicy(frameAncestors)
	embeddable := len(frameAncestors) > 0

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		if !embeddable {
			c.Header("X-Frame-Options", "SAMEORIGIN")
		}
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", csp)

		if hsts {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
