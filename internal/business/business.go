// Package business holds the compiled-in canonical description of Icon
// Dumpsters. Every page-level schema emission and every city derivation
// starts from this record.
package business

import "github.com/icondumpsters/web/internal/schema"

// Contact details shared by page templates and the canonical record.
const (
	Phone = "+1-801-918-6000"
	Email = "icondumpsters@gmail.com"
)

// Canonical returns the source-of-truth business record. Slices are freshly
// allocated on every call so callers can never alias each other's data.
func Canonical() schema.BusinessRecord {
	return schema.BusinessRecord{
		ID:          schema.BaseURL() + "/#local-business",
		Name:        schema.SiteName,
		LegalName:   "Icon Dumpsters LLC",
		Description: "Utah roll-off dumpster rental for homeowners and contractors. Flat-rate pricing, same-day delivery, and no hidden fees.",
		URL:         "/",
		Telephone:   Phone,
		Email:       Email,
		Logo:        schema.SiteLogoPath,
		Image:       "/images/yard.jpg",
		PriceRange:  "$250-$650",
		Address: schema.Address{
			Street:     "4700 S 900 E",
			Locality:   "Murray",
			Region:     "UT",
			PostalCode: "84117",
			Country:    "US",
		},
		Geo:             &schema.Geo{Latitude: 40.6669, Longitude: -111.8880},
		ServiceRadiusKm: schema.DefaultServiceRadiusKm,
		AreaServed: []schema.Area{
			{Name: "Salt Lake County, UT", Type: "AdministrativeArea"},
			{Name: "Utah County, UT", Type: "AdministrativeArea"},
			{Name: "Utah", Type: "State"},
		},
		OpeningHours:       []string{"Mo-Fr 07:00-18:00", "Sa 08:00-15:00"},
		PaymentAccepted:    []string{"Cash", "Credit Card", "Check"},
		CurrenciesAccepted: "USD",
		Credentials: []string{
			"Utah DEQ Licensed Waste Hauler",
			"Fully Insured - $2M General Liability",
		},
		Keywords: []string{
			"dumpster rental",
			"utah dumpster rental",
			"roll-off dumpsters",
			"construction waste removal",
		},
		SameAs: []string{
			"https://www.facebook.com/icondumpsters",
			"https://www.google.com/maps?cid=icondumpsters",
		},
		ContactPoints: []schema.ContactPoint{
			{
				Telephone:   Phone,
				ContactType: "customer service",
				Email:       Email,
				AreaServed:  []string{"UT"},
			},
		},
		Rating: &schema.AggregateRating{Value: 4.9, Count: 327, Best: 5, Worst: 1},
		Offers: []schema.Offer{
			{Name: "15 Yard Dumpster", Description: "Fits 4-5 pickup loads. Ideal for garage cleanouts.", Price: "300", URL: "/dumpster-sizes#15-yard"},
			{Name: "20 Yard Dumpster", Description: "Fits 6-7 pickup loads. Most popular for remodels.", Price: "350", URL: "/dumpster-sizes#20-yard"},
			{Name: "30 Yard Dumpster", Description: "Fits 9-10 pickup loads. Built for construction sites.", Price: "450", URL: "/dumpster-sizes#30-yard"},
		},
		MakesOffer: []schema.ServiceOffer{
			{
				Name:        "Residential Dumpster Rental",
				Description: "Driveway-safe roll-off dumpsters for cleanouts, moves, and remodels.",
				URL:         "/services/residential-dumpster-rental",
				AreaServed:  []string{"Utah"},
			},
			{
				Name:        "Construction Dumpster Rental",
				Description: "Heavy-duty containers for demolition debris, roofing, and new builds.",
				URL:         "/services/construction-dumpster-rental",
				AreaServed:  []string{"Utah"},
			},
			{
				Name:        "Concrete Disposal",
				Description: "Clean-load concrete, brick, and asphalt hauling at flat rates.",
				URL:         "/services/concrete-disposal",
				AreaServed:  []string{"Utah"},
			},
		},
		OfferCatalog: &schema.OfferCatalog{
			Name: "Dumpster Rental Services",
			Items: []schema.CatalogItem{
				{Name: "Same-Day Dumpster Delivery", URL: "/services/same-day-delivery"},
				{Name: "Extended Rental Periods", URL: "/services/extended-rentals"},
				{Name: "Heavy Debris Hauling", URL: "/services/heavy-debris"},
			},
		},
	}
}

// Organization returns the sitewide Organization payload derived from the
// canonical record.
func Organization() schema.Organization {
	c := Canonical()
	return schema.Organization{
		Name:        c.Name,
		LegalName:   c.LegalName,
		Description: c.Description,
		URL:         c.URL,
		Logo:        c.Logo,
		Telephone:   c.Telephone,
		Email:       c.Email,
		SameAs:      c.SameAs,
	}
}

// WebSite returns the sitewide WebSite payload.
func WebSite() schema.WebSite {
	return schema.WebSite{
		Name: schema.SiteName,
		URL:  "/",
	}
}
