// SPDX-License-Identifier: MIT
package middleware

import "github.com/gin-gonic/gin"

// loopbackProxies are trusted when behind_proxy is set without a list
var loopbackProxies = []string{"127.0.0.1", "::1"}

// TrustProxies controls which peers may set X-Forwarded-For. Without a
// proxy no peer is trusted and c.ClientIP() is always the socket address.
func TrustProxies(r *gin.Engine, behindProxy bool, proxies []string) error {
	if !behindProxy {
		return r.SetTrustedProxies(nil)
	}
	if len(proxies) == 0 {
		proxies = loopbackProxies
	}
	return r.SetTrustedProxies(proxies)
}
