package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX  ctxKey = "is_htmx"
	ctxKeySession ctxKey = "session"
	ctxKeyCity    ctxKey = "city"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithCity stores the city name resolved from the request path.
func WithCity(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxKeyCity, name)
}

// CityFromContext returns the resolved city name, "" when the request path
// is not a city landing page.
func CityFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCity).(string)
	return v
}
