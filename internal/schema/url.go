package schema

import "strings"

var baseURL = DefaultBaseURL

// SetBaseURL overrides the origin used to absolutize relative URLs. Call it
// once at startup; an empty value restores the default.
func SetBaseURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultBaseURL
	}
	baseURL = u
}

// BaseURL returns the configured site origin.
func BaseURL() string { return baseURL }

// ToAbsoluteURL resolves ref against base. Scheme-qualified refs pass through
// untouched; anything else is joined onto the base origin. Search engines
// only accept absolute URLs in structured data, so every URL-valued field
// goes through here regardless of how callers supplied it.
func ToAbsoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.Contains(ref, "://") {
		return ref
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}

func absURL(ref string) string { return ToAbsoluteURL(baseURL, ref) }
