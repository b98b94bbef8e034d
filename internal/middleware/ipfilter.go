// SPDX-License-Identifier: MIT
package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseBlocklist accepts CIDR ranges and bare addresses. Entries that
// parse as neither are logged and skipped.
func parseBlocklist(entries []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				log.Printf("ignoring invalid blocklist entry %q", entry)
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("ignoring invalid blocklist entry %q: %v", entry, err)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

// IPBlocklistMiddleware rejects clients whose address falls in blocklist
func IPBlocklistMiddleware(blocklist []string) gin.HandlerFunc {
	blocked := parseBlocklist(blocklist)

	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		ip := net.ParseIP(c.ClientIP())
		if ip == nil {
			c.AbortWithStatus(403)
			return
		}
		for _, ipNet := range blocked {
			if ipNet.Contains(ip) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}
