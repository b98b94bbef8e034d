// SPDX-License-Identifier: MIT
package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	CSRFCookieName = "focusmap_csrf"
	CSRFHeaderName = "X-CSRF-Token"
	csrfContextKey = "csrf_token"
	csrfTokenLen   = 32
)

// CSRFMiddleware implements double-submit cookie protection. The page
// script echoes the cookie value back in the X-CSRF-Token header. The
// cookie lives as long as the session cookie so an open tab keeps working.
func CSRFMiddleware(policy CookiePolicy, lifetime time.Duration) gin.HandlerFunc {
	maxAge := int(lifetime.Seconds())

	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			policy.SetCookie(c, CSRFCookieName, token, maxAge, false, http.SameSiteStrictMode)
		}
		c.Set(csrfContextKey, token)

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			sent := c.GetHeader(CSRFHeaderName)
			if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid CSRF token"})
				return
			}
		}

		c.Next()
	}
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// CSRFToken returns the token for the current request, or "" when the
// middleware did not run.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
