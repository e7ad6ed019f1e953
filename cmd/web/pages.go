package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	handlersPkg "github.com/icondumpsters/web/internal/handlers"
)

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	data, meta := handlersPkg.BuildHomeData()
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Home = data
	render(w, r, "home", http.StatusOK, page)
}

// ServicesHandler renders the services index.
func ServicesHandler(w http.ResponseWriter, r *http.Request) {
	data, meta := handlersPkg.BuildServicesData()
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Services = data
	render(w, r, "services", http.StatusOK, page)
}

// ServiceDetailHandler renders one service page, or 404 for unknown slugs.
func ServiceDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	card, meta, ok := handlersPkg.BuildServiceData(slug)
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Services = card
	render(w, r, "service_detail", http.StatusOK, page)
}

// SizesHandler renders the dumpster sizes and pricing page.
func SizesHandler(w http.ResponseWriter, r *http.Request) {
	data, meta := handlersPkg.BuildSizesData()
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Sizes = data
	render(w, r, "sizes", http.StatusOK, page)
}

// LocationsHandler renders the service-area index.
func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	data, meta := handlersPkg.BuildLocationsData()
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Locations = data
	render(w, r, "locations", http.StatusOK, page)
}
