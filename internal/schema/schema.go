// Package schema builds schema.org JSON-LD envelopes for the marketing site.
//
// Every builder follows the same rule: a field present on the payload shows
// up in the output under its schema.org name, a field left at its zero value
// is omitted entirely. Nothing in this package returns an error or panics;
// a page must render whether or not its structured data is complete.
package schema

// Kind selects which schema.org envelope Emit builds.
type Kind string

const (
	KindLocalBusiness Kind = "localBusiness"
	KindService       Kind = "service"
	KindFAQ           Kind = "faq"
	KindBreadcrumb    Kind = "breadcrumb"
	KindArticle       Kind = "article"
	KindOrganization  Kind = "organization"
	KindProduct       Kind = "product"
	KindWebSite       Kind = "website"
	KindItemList      Kind = "itemList"
	KindHowTo         Kind = "howTo"
)

// Address is a postal address. The canonical business always carries one.
type Address struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

// Geo is a WGS84 coordinate pair.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// Area is one areaServed entry. Type is a schema.org place type such as
// "City" or "State"; empty Type renders as "Place".
type Area struct {
	Name string
	Type string
}

// Offer is a priced line item, e.g. one dumpster size.
type Offer struct {
	Name          string
	Description   string
	Price         string
	PriceCurrency string
	URL           string
}

// ServiceOffer is a makesOffer entry: a named service plus where it is
// offered and, optionally, what it costs.
type ServiceOffer struct {
	Name          string
	Description   string
	URL           string
	AreaServed    []string
	Price         string
	PriceCurrency string
}

// CatalogItem is one named entry inside an OfferCatalog.
type CatalogItem struct {
	Name        string
	Description string
	URL         string
}

// OfferCatalog groups named items under a catalog heading.
type OfferCatalog struct {
	Name  string
	Items []CatalogItem
}

// AggregateRating summarizes review scores.
type AggregateRating struct {
	Value float64
	Count int
	Best  float64
	Worst float64
}

// Review is a single customer review.
type Review struct {
	Author string
	Date   string
	Body   string
	Rating float64
}

// ContactPoint is a phone/email contact channel.
type ContactPoint struct {
	Telephone   string
	ContactType string
	Email       string
	AreaServed  []string
}

// BusinessRecord is the canonical description of the organization. Name and
// Address are always present; every other field is optional and is omitted
// from the emitted JSON-LD when unset.
type BusinessRecord struct {
	ID          string
	Name        string
	LegalName   string
	Description string
	URL         string
	Telephone   string
	Email       string
	Logo        string
	Image       string
	PriceRange  string

	Address Address
	Geo     *Geo

	// ServiceRadiusKm bounds the GeoCircle service area around Geo.
	// Zero falls back to DefaultServiceRadiusKm.
	ServiceRadiusKm float64

	AreaServed         []Area
	OpeningHours       []string
	PaymentAccepted    []string
	CurrenciesAccepted string
	Credentials        []string
	Keywords           []string
	SameAs             []string
	ContactPoints      []ContactPoint

	Rating  *AggregateRating
	Reviews []Review

	Offers       []Offer
	MakesOffer   []ServiceOffer
	OfferCatalog *OfferCatalog
}

// ServiceRecord describes one named service with its provider reference.
// AreaServed is expected to be non-empty when present.
type ServiceRecord struct {
	Name         string
	Description  string
	URL          string
	ProviderName string
	ProviderURL  string
	ServiceType  string
	AreaServed   []string
	PriceRange   string
	Offers       []Offer
	Audience     string
	Brand        string
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string
	Answer   string
}

// BreadcrumbItem maps a crumb name to its page URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// Article is the payload for blog/article pages. Image and Images are
// normalized into a single image array on output.
type Article struct {
	Headline      string
	Description   string
	Image         string
	Images        []string
	AuthorName    string
	DatePublished string
	DateModified  string
	URL           string
}

// Organization is the site-wide organization payload.
type Organization struct {
	Name        string
	LegalName   string
	Description string
	URL         string
	Logo        string
	Telephone   string
	Email       string
	SameAs      []string
}

// Product describes a rentable unit (a dumpster size) as a product.
type Product struct {
	Name          string
	Description   string
	Image         string
	SKU           string
	Brand         string
	URL           string
	Price         string
	PriceCurrency string
	Rating        *AggregateRating
}

// WebSite is the payload for the sitewide WebSite envelope. SearchURL, when
// set, becomes a SearchAction whose target appends the query placeholder.
type WebSite struct {
	Name      string
	URL       string
	SearchURL string
}

// ListEntry is one ItemList element.
type ListEntry struct {
	Name        string
	Description string
	URL         string
}

// ItemList is an ordered list of site entries (e.g. all service pages).
type ItemList struct {
	Name  string
	Items []ListEntry
}

// HowToStep is one step of a HowTo.
type HowToStep struct {
	Name string
	Text string
	URL  string
}

// HowTo describes a step-by-step process such as "how to rent a dumpster".
type HowTo struct {
	Name          string
	Description   string
	Steps         []HowToStep
	TotalTime     string
	EstimatedCost string
}

// CityParameters are the inputs for deriving a city-specific business and
// service record from the canonical one. Latitude/Longitude are optional;
// absent or non-finite coordinates fall back per cityGeo.
type CityParameters struct {
	Name      string
	Slug      string
	State     string
	Phone     string
	Latitude  *float64
	Longitude *float64
}
