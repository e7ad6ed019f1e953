package middleware

import (
	"net/http"

	"github.com/icondumpsters/web/internal/schema"
)

// CitySchema resolves a city name from the raw request path and stashes it
// in the request context. Pages that supply no structured data of their own
// use it to auto-inject a derived LocalBusiness + Service pair. A path that
// resolves to no city simply passes through; auto-injection is skipped, not
// an error.
func CitySchema(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if city := schema.ResolveCityFromPath(r.URL.Path); city != "" {
			r = r.WithContext(WithCity(r.Context(), city))
		}
		next.ServeHTTP(w, r)
	})
}
