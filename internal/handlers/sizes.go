package handlers

import (
	"github.com/icondumpsters/web/internal/format"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/seo"
)

// SizeCard is one dumpster size as shown in the pricing grid.
type SizeCard struct {
	Anchor     string
	Name       string
	Dimensions string
	Capacity   string
	WeightCap  string
	Price      string
	BestFor    []string
}

// SizeCards returns the three rental sizes. Prices mirror the canonical
// business record's offers.
func SizeCards() []SizeCard {
	return []SizeCard{
		{
			Anchor:     "15-yard",
			Name:       "15 Yard Dumpster",
			Dimensions: "16' x 7.5' x 4.5'",
			Capacity:   "4-5 pickup truck loads",
			WeightCap:  "2 tons included",
			Price:      format.Currency(300),
			BestFor:    []string{"Garage cleanouts", "Small remodels", "Yard waste"},
		},
		{
			Anchor:     "20-yard",
			Name:       "20 Yard Dumpster",
			Dimensions: "22' x 7.5' x 4.5'",
			Capacity:   "6-7 pickup truck loads",
			WeightCap:  "3 tons included",
			Price:      format.Currency(350),
			BestFor:    []string{"Kitchen remodels", "Roofing jobs", "Estate cleanouts"},
		},
		{
			Anchor:     "30-yard",
			Name:       "30 Yard Dumpster",
			Dimensions: "22' x 7.5' x 6'",
			Capacity:   "9-10 pickup truck loads",
			WeightCap:  "4 tons included",
			Price:      format.Currency(450),
			BestFor:    []string{"New construction", "Demolition", "Commercial projects"},
		},
	}
}

// SizesData is the view model for the dumpster sizes page.
type SizesData struct {
	Sizes []SizeCard
	Steps []schema.HowToStep
}

// BuildSizesData constructs the sizes page view model. The page carries an
// ItemList of the sizes and a HowTo walking through choosing one.
func BuildSizesData() (SizesData, seo.Meta) {
	sizes := SizeCards()

	data := SizesData{
		Sizes: sizes,
		Steps: []schema.HowToStep{
			{Name: "Estimate your debris", Text: "Count pickup-truck loads: one load is roughly three cubic yards."},
			{Name: "Check the weight", Text: "Heavy material like concrete or shingles fills the weight limit before the walls."},
			{Name: "Size up when unsure", Text: "A second haul costs more than the next size up. When in doubt, go bigger."},
		},
	}

	entries := make([]schema.ListEntry, 0, len(sizes))
	for _, s := range sizes {
		entries = append(entries, schema.ListEntry{
			Name: s.Name,
			URL:  "/dumpster-sizes#" + s.Anchor,
		})
	}

	meta := seo.Meta{
		Title:       "Dumpster Sizes & Pricing | Icon Dumpsters",
		Description: "Compare 15, 20, and 30 yard roll-off dumpster dimensions, capacity, and flat-rate pricing. Find the right size for your Utah project.",
		Canonical:   seo.CanonicalFor("/dumpster-sizes"),
	}
	meta.AddSchema(schema.Emit(schema.KindItemList, schema.ItemList{
		Name:  "Dumpster Sizes",
		Items: entries,
	}))
	meta.AddSchema(schema.Emit(schema.KindHowTo, schema.HowTo{
		Name:        "How to Choose a Dumpster Size",
		Description: "Three checks that match your project to the right roll-off container.",
		Steps:       data.Steps,
	}))
	return data, meta
}
