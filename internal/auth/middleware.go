// SPDX-License-Identifier: MIT
package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/focusmap/internal/middleware"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

// SessionCookieName is the cookie holding the signed session token
const SessionCookieName = "focusmap_session"

const sessionContextKey = "session"

// RequireSession attaches the caller's map session to the context. A
// request without a usable cookie gets an unsaved preview of the default
// map on GET and HEAD; the session is only stored and the cookie issued
// when the caller first changes the map.
func RequireSession(store *sessions.Store, policy middleware.CookiePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			if claims, err := ValidateToken(cookie); err == nil {
				if s, err := store.Get(claims.SessionID); err == nil {
					c.Set(sessionContextKey, s)
					c.Next()
					return
				}
			}
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			s, err := store.Preview()
			if err != nil {
				log.Printf("failed to build preview session: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
				return
			}
			c.Set(sessionContextKey, s)
			c.Next()
			return
		}

		s, err := store.Create()
		if err != nil {
			log.Printf("failed to create session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}
		token, err := GenerateToken(s.ID)
		if err != nil {
			log.Printf("failed to sign session %s: %v", s.ID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}

		policy.SetCookie(c, SessionCookieName, token, int(Lifetime().Seconds()), true, http.SameSiteLaxMode)
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// CurrentSession returns the session set by RequireSession
func CurrentSession(c *gin.Context) (*sessions.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*sessions.Session)
	return s, ok
}
