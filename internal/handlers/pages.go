package handlers

import (
	"time"

	"github.com/icondumpsters/web/internal/business"
	"github.com/icondumpsters/web/internal/cities"
	"github.com/icondumpsters/web/internal/format"
	"github.com/icondumpsters/web/internal/nav"
	"github.com/icondumpsters/web/internal/seo"
)

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Title     string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	Phone       string
	PhonePretty string
	Email       string
	Year        int
	CSRFToken   string

	// Optional per-page view model payloads
	Home      any
	Services  any
	Sizes     any
	Locations any
	City      any
	Blog      any
	Post      any
	Contact   any
}

// BasePage fills the layout fields every page shares. Handlers set Title,
// SEO specifics, and their page payload on top of it.
func BasePage(path string) PageData {
	locations := nav.CityLinks(cities.All(), 12)
	return PageData{
		Path:        path,
		Nav:         nav.Build(path, locations),
		Breadcrumbs: nav.Breadcrumbs(path),
		Phone:       business.Phone,
		PhonePretty: format.Phone(business.Phone),
		Email:       business.Email,
		Year:        time.Now().Year(),
		SEO: seo.Meta{
			Canonical: seo.CanonicalFor(path),
		},
	}
}
