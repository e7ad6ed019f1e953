package main

import (
	"net/http"

	handlersPkg "github.com/icondumpsters/web/internal/handlers"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/sitemap"
)

// CityPageHandler renders a city landing page. Routes are registered per
// served city, so the slug always resolves unless the table changed.
func CityPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := schema.ResolveCitySlugFromPath(r.URL.Path)
	data, meta, ok := handlersPkg.BuildCityData(slug)
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.City = data
	render(w, r, "city", http.StatusOK, page)
}

// NotFoundHandler redirects legacy city URL shapes to the canonical path
// and renders the 404 page for everything else.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if slug := schema.ResolveCitySlugFromPath(r.URL.Path); slug != "" {
		canonical := schema.CityPagePath(slug)
		if canonical != r.URL.Path {
			http.Redirect(w, r, canonical, http.StatusMovedPermanently)
			return
		}
	}
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = "Page Not Found | Icon Dumpsters"
	page.SEO.Title = page.Title
	page.SEO.Robots = "noindex"
	render(w, r, "notfound", http.StatusNotFound, page)
}

// SitemapHandler renders /sitemap.xml from static routes, city pages, and
// published posts.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := blogStore.List()
	if err != nil {
		posts = nil
	}
	out, err := sitemap.Build(schema.BaseURL(), posts)
	if err != nil {
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(out)
}

// RobotsHandler renders /robots.txt.
func RobotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(sitemap.Robots(schema.BaseURL()))
}
