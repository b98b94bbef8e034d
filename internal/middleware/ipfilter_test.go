// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func filteredRequest(blocklist []string, remote, forwarded string) int {
	return filteredRequestVia(nil, blocklist, remote, forwarded)
}

// filteredRequestVia runs the blocklist on an engine that trusts proxies.
// A nil proxies list means the server is not behind a proxy.
func filteredRequestVia(proxies []string, blocklist []string, remote, forwarded string) int {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	if err := TrustProxies(r, proxies != nil, proxies); err != nil {
		panic(err)
	}
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remote
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}
	IPBlocklistMiddleware(blocklist)(c)
	return w.Code
}

func TestIPBlocklistCIDR(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := filteredRequest([]string{"192.168.1.0/24"}, "192.168.1.100:1234", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", code)
	}
	if code := filteredRequest([]string{"192.168.1.0/24"}, "10.0.0.1:1234", ""); code == 403 {
		t.Error("Expected allowed for non-blocked IP")
	}
}

func TestIPBlocklistBareAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := filteredRequest([]string{"203.0.113.7"}, "203.0.113.7:80", ""); code != 403 {
		t.Errorf("Expected 403 for blocked address, got %d", code)
	}
	if code := filteredRequest([]string{"203.0.113.7"}, "203.0.113.8:80", ""); code == 403 {
		t.Error("Neighbouring address should be allowed")
	}
	if code := filteredRequest([]string{"2001:db8::1"}, "[2001:db8::1]:443", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IPv6 address, got %d", code)
	}
}

func TestIPBlocklistForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := filteredRequestVia([]string{"10.0.0.0/8"}, []string{"198.51.100.0/24"}, "10.0.0.1:1234", "198.51.100.20, 10.0.0.1")
	if code != 403 {
		t.Errorf("Expected 403 for blocked client behind a trusted proxy, got %d", code)
	}
}

func TestIPBlocklistIgnoresForwardedForWithoutProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := filteredRequest([]string{"10.0.0.5"}, "10.0.0.5:1234", "1.2.3.4"); code != 403 {
		t.Errorf("Blocked socket address must stay blocked with a forged header, got %d", code)
	}
	if code := filteredRequest([]string{"198.51.100.0/24"}, "10.0.0.1:1234", "198.51.100.20"); code == 403 {
		t.Error("Forwarded address from an untrusted peer should be ignored")
	}
}

func TestIPBlocklistUntrustedProxyHeaderIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// the peer is not in the trusted list, so its header is not believed
	code := filteredRequestVia([]string{"127.0.0.1"}, []string{"10.0.0.5"}, "10.0.0.5:1234", "1.2.3.4")
	if code != 403 {
		t.Errorf("Expected 403 for blocked untrusted peer, got %d", code)
	}
}

func TestIPBlocklistIgnoresInvalidEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if code := filteredRequest([]string{"not-an-ip", "10.0.0.0/33", ""}, "10.0.0.1:1234", ""); code == 403 {
		t.Error("Invalid entries should not block anything")
	}
}
