package handlers

import (
	"github.com/icondumpsters/web/internal/business"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/seo"
)

// HomeData is the view model for the landing page.
type HomeData struct {
	Headline   string
	Subheading string
	Sizes      []SizeCard
	FAQs       []schema.FAQItem
}

// HomeFAQs is the landing-page FAQ content; it feeds both the rendered
// accordion and the FAQPage structured data.
var HomeFAQs = []schema.FAQItem{
	{
		Question: "How much does a dumpster rental cost in Utah?",
		Answer:   "Most rentals run $300-$450 flat rate including delivery, pickup, and disposal up to the weight limit. The exact price depends on the size you choose.",
	},
	{
		Question: "How fast can you deliver?",
		Answer:   "Order before noon and we can usually deliver the same day anywhere along the Wasatch Front.",
	},
	{
		Question: "What can I put in the dumpster?",
		Answer:   "Household junk, construction debris, yard waste, and furniture. No paint, tires, batteries, or hazardous materials.",
	},
	{
		Question: "Do I need a permit?",
		Answer:   "Not if the dumpster sits on your own driveway or property. Street placement usually requires a city permit, and we can point you to the right office.",
	},
}

// BuildHomeData constructs the landing page view model and its metadata.
func BuildHomeData() (HomeData, seo.Meta) {
	data := HomeData{
		Headline:   "Utah Dumpster Rental, Delivered Today",
		Subheading: "Flat-rate roll-off dumpsters for cleanouts, remodels, and job sites across the Wasatch Front.",
		Sizes:      SizeCards(),
		FAQs:       HomeFAQs,
	}

	meta := seo.Meta{
		Title:       "Icon Dumpsters - Utah Dumpster Rental | Same-Day Delivery",
		Description: "Rent a 15, 20, or 30 yard roll-off dumpster anywhere in Utah. Flat-rate pricing, same-day delivery, no hidden fees. Call (801) 918-6000.",
		Canonical:   seo.CanonicalFor("/"),
	}
	meta.AddSchema(schema.Emit(schema.KindOrganization, business.Organization()))
	meta.AddSchema(schema.Emit(schema.KindLocalBusiness, business.Canonical()))
	meta.AddSchema(schema.Emit(schema.KindWebSite, business.WebSite()))
	meta.AddSchema(schema.Emit(schema.KindItemList, sizeItemList(data.Sizes)))
	meta.AddSchema(schema.Emit(schema.KindFAQ, HomeFAQs))
	return data, meta
}

func sizeItemList(sizes []SizeCard) schema.ItemList {
	entries := make([]schema.ListEntry, 0, len(sizes))
	for _, s := range sizes {
		entries = append(entries, schema.ListEntry{
			Name: s.Name,
			URL:  "/dumpster-sizes#" + s.Anchor,
		})
	}
	return schema.ItemList{Name: "Dumpster Sizes", Items: entries}
}
