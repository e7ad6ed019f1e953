package schema

import (
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityPathPatterns are tried in order; the first capture wins. The canonical
// route comes first, the remaining patterns cover legacy paths that still
// receive inbound links.
var cityPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/dumpster-rental-([a-z0-9-]+)-ut/?$`),
	regexp.MustCompile(`^/dumpster-rental/([a-z0-9-]+)/?$`),
	regexp.MustCompile(`^/cities/([a-z0-9-]+)/?$`),
	regexp.MustCompile(`^/([a-z0-9-]+)-dumpster-rental/?$`),
}

// ResolveCityFromPath recovers the display city name from a request path, or
// "" when the path is not a city landing page. Callers treat "" as "do not
// auto-inject schema", not as an error.
func ResolveCityFromPath(pathname string) string {
	pathname = strings.TrimSpace(pathname)
	if pathname == "" {
		return ""
	}
	for _, re := range cityPathPatterns {
		if m := re.FindStringSubmatch(pathname); m != nil {
			return CityDisplayName(m[1])
		}
	}
	return ""
}

// ResolveCitySlugFromPath is ResolveCityFromPath without the display-name
// conversion; it feeds lookups into the city table.
func ResolveCitySlugFromPath(pathname string) string {
	pathname = strings.TrimSpace(pathname)
	if pathname == "" {
		return ""
	}
	for _, re := range cityPathPatterns {
		if m := re.FindStringSubmatch(pathname); m != nil {
			return m[1]
		}
	}
	return ""
}

// CityDisplayName converts a slug to its page form: "west-jordan" becomes
// "West Jordan".
func CityDisplayName(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	s = strings.Join(strings.Fields(s), " ")
	// cases.Caser carries transform state, so a fresh one per call keeps
	// concurrent renders independent.
	return cases.Title(language.AmericanEnglish).String(s)
}

// CityPagePath is the canonical route for a city slug.
func CityPagePath(slug string) string {
	return "/dumpster-rental-" + slug + "-ut"
}

// BaseURLFromRequest reconstructs the absolute origin for the current
// request. Fallback chain: explicit URL override header, then forwarded
// proto/host, then the configured base origin. Best effort; it never fails.
func BaseURLFromRequest(r *http.Request) string {
	if r == nil {
		return baseURL
	}
	for _, h := range []string{"X-Url", "X-Next-Url"} {
		if origin := originOf(r.Header.Get(h)); origin != "" {
			return origin
		}
	}
	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}
	if host != "" {
		proto := r.Header.Get("X-Forwarded-Proto")
		if proto == "" {
			proto = "https"
		}
		return proto + "://" + host
	}
	return baseURL
}

// PageURLFromRequest returns the absolute URL of the page being rendered,
// honoring the invoke-path header set when the edge rewrites paths.
func PageURLFromRequest(r *http.Request) string {
	if r == nil {
		return baseURL
	}
	p := r.Header.Get("X-Invoke-Path")
	if p == "" && r.URL != nil {
		p = r.URL.Path
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return BaseURLFromRequest(r) + p
}

// originOf extracts scheme://host from a raw URL string, or "" when the
// value is not an absolute URL.
func originOf(raw string) string {
	i := strings.Index(raw, "://")
	if i <= 0 {
		return ""
	}
	rest := raw[i+len("://"):]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return ""
	}
	return raw[:i] + "://" + rest
}
