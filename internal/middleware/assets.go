package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AssetsWithCache wraps a file server for dir and applies Cache-Control,
// Vary, and ETag handling for the static assets (hero images, the logo, CSS).
// ETags are computed lazily per file and memoized for the process lifetime;
// assets only change on deploy.
func AssetsWithCache(dir string) http.Handler {
	var (
		mu    sync.RWMutex
		etags = map[string]string{}
	)
	etagFor := func(urlPath string) string {
		mu.RLock()
		et, ok := etags[urlPath]
		mu.RUnlock()
		if ok {
			return et
		}
		et, err := fileETag(filepath.Join(dir, filepath.FromSlash(urlPath)))
		if err != nil {
			return ""
		}
		mu.Lock()
		etags[urlPath] = et
		mu.Unlock()
		return et
	}

	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		rel := strings.TrimPrefix(r.URL.Path, "/")
		if et := etagFor(rel); et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
