// SPDX-License-Identifier: MIT
package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/db"
	"github.com/thatcatcamp/focusmap/internal/mapview"
	"github.com/thatcatcamp/focusmap/internal/middleware"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

func setupSessionStore(t *testing.T) *sessions.Store {
	t.Helper()
	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	factory := &sessions.Factory{
		Catalog:     catalog.Build(geojson.NewFeatureCollection(), catalog.DefaultProperties),
		OSM:         &mapview.TileLayer{Name: "osm"},
		Satellite:   &mapview.TileLayer{Name: "sat"},
		Focus:       mapview.DefaultFocusStyle(),
		Fit:         mapview.DefaultFitOptions(),
		DefaultBase: mapview.ModeOSM,
	}
	store, err := sessions.NewStore(database, factory)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func sessionRouter(store *sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(RequireSession(store, middleware.CookiePolicy{}))
	echo := func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.ID)
	}
	r.GET("/", echo)
	r.POST("/", echo)
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestRequireSessionStartsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := sessionRouter(setupSessionStore(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("Session cookie should be HttpOnly")
	}

	claims, err := ValidateToken(cookie.Value)
	if err != nil {
		t.Fatalf("Cookie should hold a valid token: %v", err)
	}
	if claims.SessionID != w.Body.String() {
		t.Errorf("Expected session %s in token, got %s", w.Body.String(), claims.SessionID)
	}
}

func TestRequireSessionReusesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := sessionRouter(setupSessionStore(t))

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest("POST", "/", nil))
	cookie := sessionCookie(w1)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	if w2.Body.String() != w1.Body.String() {
		t.Errorf("Expected same session %s, got %s", w1.Body.String(), w2.Body.String())
	}
	if sessionCookie(w2) != nil {
		t.Error("Cookie should not be reissued for a valid session")
	}
}

func TestRequireSessionReplacesInvalidCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := sessionRouter(setupSessionStore(t))

	req := httptest.NewRequest("POST", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if sessionCookie(w) == nil {
		t.Error("Expected a fresh session cookie")
	}
}

func TestRequireSessionUnknownSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := sessionRouter(setupSessionStore(t))

	token, _ := GenerateToken("pruned-session")
	req := httptest.NewRequest("POST", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() == "pruned-session" {
		t.Error("Unknown session ids should not be trusted")
	}
	if sessionCookie(w) == nil {
		t.Error("Expected a fresh session cookie")
	}
}

func TestRequireSessionGetWithoutCookieStoresNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := setupSessionStore(t)
	r := sessionRouter(store)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Fatalf("Expected an unsaved preview session, got id %q", w.Body.String())
		}
		if sessionCookie(w) != nil {
			t.Fatal("GET should not issue a session cookie")
		}
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no stored sessions after cookieless GETs, got %d", n)
	}
}

func TestRequireSessionEmbeddedCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireSession(setupSessionStore(t), middleware.NewCookiePolicy(false, []string{"https://*.wixsite.com"})))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected session cookie to be set")
	}
	if cookie.SameSite != http.SameSiteNoneMode || !cookie.Secure {
		t.Errorf("Embedded page needs SameSite=None; Secure, got SameSite=%v Secure=%v", cookie.SameSite, cookie.Secure)
	}
}
