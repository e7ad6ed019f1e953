package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestSessionSetsSignedCookie(t *testing.T) {
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.ID == "" || s.CSRFToken == "" {
			t.Error("session not initialized")
		}
		_, _ = io.WriteString(w, "ok")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ICON_WEB_SESSION" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected session cookie, got %v", rec.Result().Header["Set-Cookie"])
	}

	// Replaying the cookie must not issue a new one.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	h.ServeHTTP(rec2, req2)
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "ICON_WEB_SESSION" {
			t.Fatal("valid session should not be reissued")
		}
	}

	// A tampered cookie gets replaced.
	rec3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.AddCookie(&http.Cookie{Name: "ICON_WEB_SESSION", Value: cookie.Value + "x"})
	h.ServeHTTP(rec3, req3)
	reissued := false
	for _, c := range rec3.Result().Cookies() {
		if c.Name == "ICON_WEB_SESSION" {
			reissued = true
		}
	}
	if !reissued {
		t.Fatal("tampered session should be replaced")
	}
}

func TestHTMXMarksContext(t *testing.T) {
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsHTMX(r.Context()) {
			t.Error("expected HTMX flag in context")
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)

	h2 := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsHTMX(r.Context()) {
			t.Error("plain request flagged as HTMX")
		}
	}))
	h2.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestCitySchemaResolvesPath(t *testing.T) {
	h := CitySchema(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, CityFromContext(r.Context()))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dumpster-rental-salt-lake-city-ut", nil))
	if got := rec.Body.String(); got != "Salt Lake City" {
		t.Fatalf("city = %q", got)
	}

	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/services", nil))
	if got := rec2.Body.String(); got != "" {
		t.Fatalf("expected empty city for non-city path, got %q", got)
	}
}

func TestAssetsWithCacheETag(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := AssetsWithCache(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}
	if cc := rec.Header().Get("Cache-Control"); cc == "" {
		t.Fatal("expected Cache-Control header")
	}

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/site.css", nil)
	req2.Header.Set("If-None-Match", etag)
	h.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rec2.Code)
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	h := RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
}
