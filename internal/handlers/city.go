package handlers

import (
	"fmt"

	"github.com/icondumpsters/web/internal/business"
	"github.com/icondumpsters/web/internal/cities"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/seo"
)

// CityData is the view model for a city landing page.
type CityData struct {
	City     schema.CityParameters
	Business schema.BusinessRecord
	Sizes    []SizeCard
	FAQs     []schema.FAQItem
	Nearby   []schema.CityParameters
}

// BuildCityData constructs the view model and structured data for the city
// page at slug. ok is false when the city is not served.
func BuildCityData(slug string) (CityData, seo.Meta, bool) {
	city, ok := cities.Lookup(slug)
	if !ok {
		return CityData{}, seo.Meta{}, false
	}

	derived := schema.DeriveCityBusiness(business.Canonical(), city)
	path := schema.CityPagePath(city.Slug)

	data := CityData{
		City:     city,
		Business: derived,
		Sizes:    SizeCards(),
		FAQs:     cityFAQs(city),
		Nearby:   nearbyCities(city, 6),
	}

	meta := seo.Meta{
		Title:       fmt.Sprintf("%s Dumpster Rental | Icon Dumpsters", city.Name),
		Description: fmt.Sprintf("Roll-off dumpster rental in %s, %s. Flat-rate 15, 20, and 30 yard dumpsters with same-day delivery. Call (801) 918-6000.", city.Name, city.State),
		Canonical:   seo.CanonicalFor(path),
	}
	meta.AddSchema(schema.Emit(schema.KindLocalBusiness, derived))
	meta.AddSchema(schema.Emit(schema.KindService, schema.DeriveCityService(business.Canonical(), city)))
	meta.AddSchema(schema.Emit(schema.KindFAQ, data.FAQs))
	meta.AddSchema(schema.Emit(schema.KindBreadcrumb, []schema.BreadcrumbItem{
		{Name: "Home", Item: "/"},
		{Name: "Locations", Item: "/locations"},
		{Name: city.Name + " Dumpster Rental", Item: path},
	}))
	return data, meta, true
}

func cityFAQs(city schema.CityParameters) []schema.FAQItem {
	return []schema.FAQItem{
		{
			Question: fmt.Sprintf("Do you deliver dumpsters in %s?", city.Name),
			Answer:   fmt.Sprintf("Yes. %s is inside our core service area and usually qualifies for same-day delivery when you order before noon.", city.Name),
		},
		{
			Question: fmt.Sprintf("How much does a dumpster cost in %s?", city.Name),
			Answer:   "The same flat rates as everywhere we serve: $300 for 15 yards, $350 for 20 yards, and $450 for 30 yards, including delivery and pickup.",
		},
		{
			Question: fmt.Sprintf("Do I need a permit for a dumpster in %s?", city.Name),
			Answer:   fmt.Sprintf("Not on your own property. If the dumpster has to sit on the street, %s requires a right-of-way permit from the city office.", city.Name),
		},
	}
}

// nearbyCities picks other served cities to cross-link from a city page.
// Without coordinates to rank by we take table neighbors, which the table
// orders roughly by county.
func nearbyCities(city schema.CityParameters, limit int) []schema.CityParameters {
	all := cities.All()
	idx := -1
	for i, c := range all {
		if c.Slug == city.Slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]schema.CityParameters, 0, limit)
	for offset := 1; len(out) < limit && (idx-offset >= 0 || idx+offset < len(all)); offset++ {
		if idx-offset >= 0 {
			out = append(out, all[idx-offset])
		}
		if len(out) < limit && idx+offset < len(all) {
			out = append(out, all[idx+offset])
		}
	}
	return out
}

// LocationsData is the view model for the locations index.
type LocationsData struct {
	Cities []schema.CityParameters
}

// BuildLocationsData constructs the locations index view model listing every
// served city.
func BuildLocationsData() (LocationsData, seo.Meta) {
	all := cities.All()
	entries := make([]schema.ListEntry, 0, len(all))
	for _, c := range all {
		entries = append(entries, schema.ListEntry{
			Name: c.Name + " Dumpster Rental",
			URL:  schema.CityPagePath(c.Slug),
		})
	}

	meta := seo.Meta{
		Title:       "Service Areas | Icon Dumpsters",
		Description: fmt.Sprintf("Icon Dumpsters delivers roll-off dumpsters to %d Utah cities along the Wasatch Front and beyond.", cities.Count()),
		Canonical:   seo.CanonicalFor("/locations"),
	}
	meta.AddSchema(schema.Emit(schema.KindItemList, schema.ItemList{
		Name:  "Cities We Serve",
		Items: entries,
	}))
	return LocationsData{Cities: all}, meta
}
