// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookiePolicy decides the attributes of the cookies the map routes issue.
// A page framed by another site only gets its cookies back on POST when
// they are SameSite=None, which browsers accept only with Secure.
type CookiePolicy struct {
	Secure    bool
	CrossSite bool
}

// NewCookiePolicy returns the policy for a server with TLS set by secure
// that may be framed by frameAncestors.
func NewCookiePolicy(secure bool, frameAncestors []string) CookiePolicy {
	return CookiePolicy{
		Secure:    secure || len(frameAncestors) > 0,
		CrossSite: len(frameAncestors) > 0,
	}
}

// SetCookie writes a cookie using sameSite unless the policy is cross-site
func (p CookiePolicy) SetCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool, sameSite http.SameSite) {
	if p.CrossSite {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(name, value, maxAge, "/", "", p.Secure, httpOnly)
}
