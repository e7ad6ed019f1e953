package handlers

import (
	"github.com/icondumpsters/web/internal/business"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/seo"
)

// ServiceCard is one service as shown on the services index.
type ServiceCard struct {
	Slug        string
	Name        string
	Description string
	PriceRange  string
}

var serviceCards = []ServiceCard{
	{
		Slug:        "residential-dumpster-rental",
		Name:        "Residential Dumpster Rental",
		Description: "Driveway-safe roll-off dumpsters for cleanouts, moves, and remodels. Boards under the wheels, no driveway damage.",
		PriceRange:  "$300-$450",
	},
	{
		Slug:        "construction-dumpster-rental",
		Name:        "Construction Dumpster Rental",
		Description: "Heavy-duty containers for demolition debris, roofing tear-offs, and new builds. Swap-outs on your schedule.",
		PriceRange:  "$350-$650",
	},
	{
		Slug:        "concrete-disposal",
		Name:        "Concrete Disposal",
		Description: "Clean-load concrete, brick, and asphalt hauling at flat rates. Material goes to recycling, not landfill.",
		PriceRange:  "$400",
	},
}

// ServiceBySlug returns the service card for slug, if one exists.
func ServiceBySlug(slug string) (ServiceCard, bool) {
	for _, s := range serviceCards {
		if s.Slug == slug {
			return s, true
		}
	}
	return ServiceCard{}, false
}

// ServicesData is the view model for the services index page.
type ServicesData struct {
	Services []ServiceCard
}

// BuildServicesData constructs the services index view model.
func BuildServicesData() (ServicesData, seo.Meta) {
	entries := make([]schema.ListEntry, 0, len(serviceCards))
	for _, s := range serviceCards {
		entries = append(entries, schema.ListEntry{
			Name:        s.Name,
			Description: s.Description,
			URL:         "/services/" + s.Slug,
		})
	}

	meta := seo.Meta{
		Title:       "Dumpster Rental Services | Icon Dumpsters",
		Description: "Residential and construction dumpster rental, concrete disposal, and same-day delivery across Utah.",
		Canonical:   seo.CanonicalFor("/services"),
	}
	meta.AddSchema(schema.Emit(schema.KindItemList, schema.ItemList{
		Name:  "Dumpster Rental Services",
		Items: entries,
	}))
	return ServicesData{Services: serviceCards}, meta
}

// BuildServiceData constructs the view model for one service detail page.
// ok is false when the slug is unknown.
func BuildServiceData(slug string) (ServiceCard, seo.Meta, bool) {
	card, ok := ServiceBySlug(slug)
	if !ok {
		return ServiceCard{}, seo.Meta{}, false
	}

	c := business.Canonical()
	path := "/services/" + card.Slug
	meta := seo.Meta{
		Title:       card.Name + " | Icon Dumpsters",
		Description: card.Description,
		Canonical:   seo.CanonicalFor(path),
	}
	meta.AddSchema(schema.Emit(schema.KindService, schema.ServiceRecord{
		Name:         card.Name,
		Description:  card.Description,
		URL:          path,
		ProviderName: c.Name,
		ProviderURL:  c.URL,
		ServiceType:  "Dumpster Rental",
		AreaServed:   []string{"Utah"},
		PriceRange:   card.PriceRange,
	}))
	meta.AddSchema(schema.Emit(schema.KindBreadcrumb, []schema.BreadcrumbItem{
		{Name: "Home", Item: "/"},
		{Name: "Services", Item: "/services"},
		{Name: card.Name, Item: path},
	}))
	return card, meta, true
}
