package schema

import (
	"strings"
	"testing"
)

func minimalBusiness() BusinessRecord {
	return BusinessRecord{
		Name: "Icon Dumpsters",
		Address: Address{
			Street:   "123 Main St",
			Locality: "Murray",
			Region:   "UT",
		},
	}
}

func TestLocalBusinessOmitsAbsentOptionalFields(t *testing.T) {
	env := Emit(KindLocalBusiness, minimalBusiness())
	if env == nil {
		t.Fatalf("expected envelope, got nil")
	}
	if env["@type"] != "LocalBusiness" {
		t.Fatalf("expected @type LocalBusiness, got %v", env["@type"])
	}
	for _, key := range []string{
		"legalName", "description", "url", "telephone", "email", "logo",
		"image", "priceRange", "geo", "serviceArea", "areaServed",
		"openingHours", "paymentAccepted", "currenciesAccepted",
		"hasCredential", "keywords", "sameAs", "contactPoint",
		"aggregateRating", "review", "offers", "hasOfferCatalog",
	} {
		if _, present := env[key]; present {
			t.Fatalf("expected key %q to be omitted, got %v", key, env[key])
		}
	}
	if _, present := env["address"]; !present {
		t.Fatalf("expected address to always be present")
	}
}

func TestLocalBusinessDefaultMakesOffer(t *testing.T) {
	env := Emit(KindLocalBusiness, minimalBusiness())
	list, ok := env["makesOffer"].([]map[string]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected exactly one default makesOffer entry, got %v", env["makesOffer"])
	}
	item, ok := list[0]["itemOffered"].(map[string]any)
	if !ok {
		t.Fatalf("expected itemOffered block, got %v", list[0])
	}
	if item["name"] != DefaultOfferName {
		t.Fatalf("expected default offer %q, got %v", DefaultOfferName, item["name"])
	}
}

func TestLocalBusinessExplicitMakesOfferWins(t *testing.T) {
	b := minimalBusiness()
	b.MakesOffer = []ServiceOffer{{Name: "Concrete Disposal"}}
	env := Emit(KindLocalBusiness, b)
	list := env["makesOffer"].([]map[string]any)
	if len(list) != 1 {
		t.Fatalf("expected one entry, got %d", len(list))
	}
	item := list[0]["itemOffered"].(map[string]any)
	if item["name"] != "Concrete Disposal" {
		t.Fatalf("expected caller offer, got %v", item["name"])
	}
}

func TestLocalBusinessPresentFieldsRender(t *testing.T) {
	b := minimalBusiness()
	b.Telephone = "+1-801-555-0100"
	b.Logo = "/images/logo.png"
	b.Geo = &Geo{Latitude: 40.1, Longitude: -111.1}
	b.Keywords = []string{"dumpster rental", "roll-off"}
	env := Emit(KindLocalBusiness, b)
	if env["telephone"] != "+1-801-555-0100" {
		t.Fatalf("expected telephone, got %v", env["telephone"])
	}
	if env["logo"] != "https://icondumpsters.com/images/logo.png" {
		t.Fatalf("expected absolutized logo, got %v", env["logo"])
	}
	geo, ok := env["geo"].(map[string]any)
	if !ok || geo["latitude"] != 40.1 || geo["longitude"] != -111.1 {
		t.Fatalf("unexpected geo: %v", env["geo"])
	}
	if env["keywords"] != "dumpster rental, roll-off" {
		t.Fatalf("unexpected keywords: %v", env["keywords"])
	}
	area, ok := env["serviceArea"].(map[string]any)
	if !ok {
		t.Fatalf("expected serviceArea when geo present, got %v", env["serviceArea"])
	}
	if area["geoRadius"] != "80 km" {
		t.Fatalf("expected default 80 km radius, got %v", area["geoRadius"])
	}
}

func TestServicePriceRangeAggregateOffer(t *testing.T) {
	env := Emit(KindService, ServiceRecord{Name: "Dumpster Rental", PriceRange: "$200-$800"})
	off, ok := env["offers"].(map[string]any)
	if !ok {
		t.Fatalf("expected offers, got %v", env["offers"])
	}
	if off["@type"] != "AggregateOffer" {
		t.Fatalf("expected AggregateOffer, got %v", off["@type"])
	}
	if off["lowPrice"] != 200.0 || off["highPrice"] != 800.0 {
		t.Fatalf("unexpected bounds: %v / %v", off["lowPrice"], off["highPrice"])
	}
	if off["priceCurrency"] != "USD" {
		t.Fatalf("expected USD, got %v", off["priceCurrency"])
	}
}

func TestServicePriceRangeSingleNumber(t *testing.T) {
	env := Emit(KindService, ServiceRecord{Name: "Junk Removal", PriceRange: "$150"})
	off := env["offers"].(map[string]any)
	if off["@type"] != "Offer" {
		t.Fatalf("expected flat Offer, got %v", off["@type"])
	}
	if off["price"] != 150.0 {
		t.Fatalf("expected price 150, got %v", off["price"])
	}
	if _, present := off["lowPrice"]; present {
		t.Fatalf("flat offer must not carry lowPrice")
	}
}

func TestServicePriceRangeMalformedSkipsOffers(t *testing.T) {
	env := Emit(KindService, ServiceRecord{Name: "Junk Removal", PriceRange: "bad-data"})
	if env == nil {
		t.Fatalf("malformed price range must not suppress the whole envelope")
	}
	if _, present := env["offers"]; present {
		t.Fatalf("expected no offers key for malformed range, got %v", env["offers"])
	}
}

func TestServiceExplicitOffersBeatPriceRange(t *testing.T) {
	env := Emit(KindService, ServiceRecord{
		Name:       "Dumpster Rental",
		PriceRange: "$200-$800",
		Offers:     []Offer{{Name: "20 Yard", Price: "350"}},
	})
	list, ok := env["offers"].([]map[string]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected explicit offer list, got %v", env["offers"])
	}
	if list[0]["name"] != "20 Yard" {
		t.Fatalf("unexpected offer: %v", list[0])
	}
}

func TestFAQEmptySuppressed(t *testing.T) {
	if env := Emit(KindFAQ, []FAQItem{}); env != nil {
		t.Fatalf("expected nil for empty FAQ, got %v", env)
	}
	if env := Emit(KindFAQ, []FAQItem(nil)); env != nil {
		t.Fatalf("expected nil for nil FAQ, got %v", env)
	}
}

func TestFAQSingleItem(t *testing.T) {
	env := Emit(KindFAQ, []FAQItem{{Question: "Q", Answer: "A"}})
	if env == nil {
		t.Fatalf("expected envelope")
	}
	entities, ok := env["mainEntity"].([]map[string]any)
	if !ok || len(entities) != 1 {
		t.Fatalf("expected exactly one mainEntity item, got %v", env["mainEntity"])
	}
	if entities[0]["name"] != "Q" {
		t.Fatalf("unexpected question: %v", entities[0])
	}
	ans := entities[0]["acceptedAnswer"].(map[string]any)
	if ans["text"] != "A" {
		t.Fatalf("unexpected answer: %v", ans)
	}
}

func TestOrganizationOmitsAbsentOptionalFields(t *testing.T) {
	env := Emit(KindOrganization, Organization{Name: "Icon Dumpsters"})
	if env["@type"] != "Organization" || env["name"] != "Icon Dumpsters" {
		t.Fatalf("unexpected envelope: %v", env)
	}
	for _, key := range []string{"legalName", "description", "url", "logo", "telephone", "email", "sameAs"} {
		if _, present := env[key]; present {
			t.Fatalf("absent field %q must not appear, got %v", key, env[key])
		}
	}
	env = Emit(KindOrganization, Organization{Name: "Icon Dumpsters", Logo: "/images/logo.png"})
	if env["logo"] != "https://icondumpsters.com/images/logo.png" {
		t.Fatalf("expected absolutized logo, got %v", env["logo"])
	}
}

func TestProductOmitsAbsentOptionalFields(t *testing.T) {
	env := Emit(KindProduct, Product{Name: "20 Yard Dumpster"})
	if env["@type"] != "Product" || env["name"] != "20 Yard Dumpster" {
		t.Fatalf("unexpected envelope: %v", env)
	}
	for _, key := range []string{"description", "image", "sku", "brand", "url", "offers", "aggregateRating"} {
		if _, present := env[key]; present {
			t.Fatalf("absent field %q must not appear, got %v", key, env[key])
		}
	}
	env = Emit(KindProduct, Product{Name: "20 Yard Dumpster", Brand: "Icon Dumpsters", Price: "350"})
	brand := env["brand"].(map[string]any)
	if brand["@type"] != "Brand" || brand["name"] != "Icon Dumpsters" {
		t.Fatalf("unexpected brand: %v", brand)
	}
	off := env["offers"].(map[string]any)
	if off["price"] != "350" || off["priceCurrency"] != "USD" {
		t.Fatalf("unexpected offer: %v", off)
	}
}

func TestBreadcrumbListPositionsAndAbsoluteItems(t *testing.T) {
	env := Emit(KindBreadcrumb, []BreadcrumbItem{
		{Name: "Home", Item: "/"},
		{Name: "Services", Item: "/services"},
	})
	if env["@type"] != "BreadcrumbList" {
		t.Fatalf("expected BreadcrumbList, got %v", env["@type"])
	}
	el, ok := env["itemListElement"].([]map[string]any)
	if !ok || len(el) != 2 {
		t.Fatalf("expected two crumbs, got %v", env["itemListElement"])
	}
	if el[0]["position"] != 1 || el[1]["position"] != 2 {
		t.Fatalf("positions must be 1-based: %v / %v", el[0]["position"], el[1]["position"])
	}
	if el[1]["item"] != "https://icondumpsters.com/services" {
		t.Fatalf("expected absolutized item, got %v", el[1]["item"])
	}
}

func TestArticleImageNormalizationAndPublisher(t *testing.T) {
	env := Emit(KindArticle, Article{
		Headline: "Dumpster Sizes Explained",
		Image:    "/images/sizes.jpg",
		Images:   []string{"https://cdn.example.com/extra.jpg"},
	})
	imgs, ok := env["image"].([]string)
	if !ok || len(imgs) != 2 {
		t.Fatalf("expected normalized image array, got %v", env["image"])
	}
	if imgs[0] != "https://icondumpsters.com/images/sizes.jpg" {
		t.Fatalf("expected absolutized first image, got %q", imgs[0])
	}
	if imgs[1] != "https://cdn.example.com/extra.jpg" {
		t.Fatalf("absolute image must pass through, got %q", imgs[1])
	}
	pub, ok := env["publisher"].(map[string]any)
	if !ok || pub["name"] != SiteName {
		t.Fatalf("expected fixed publisher block, got %v", env["publisher"])
	}
}

func TestUnknownKindAndWrongPayload(t *testing.T) {
	if env := Emit(Kind("bogus"), minimalBusiness()); env != nil {
		t.Fatalf("expected nil for unknown kind, got %v", env)
	}
	if env := Emit(KindService, minimalBusiness()); env != nil {
		t.Fatalf("expected nil for mismatched payload, got %v", env)
	}
	if env := Emit(KindLocalBusiness, (*BusinessRecord)(nil)); env != nil {
		t.Fatalf("expected nil for nil pointer payload, got %v", env)
	}
}

func TestToAbsoluteURL(t *testing.T) {
	if got := ToAbsoluteURL("https://example.com", "/images/logo.png"); got != "https://example.com/images/logo.png" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := ToAbsoluteURL("https://example.com", "https://other.com/x"); got != "https://other.com/x" {
		t.Fatalf("absolute URL must pass through, got %q", got)
	}
	if got := ToAbsoluteURL("https://example.com/", "images/logo.png"); got != "https://example.com/images/logo.png" {
		t.Fatalf("expected slash handling, got %q", got)
	}
	if got := ToAbsoluteURL("https://example.com", ""); got != "" {
		t.Fatalf("empty ref must stay empty, got %q", got)
	}
}

func TestJSONPrettyPrintsAndSwallowsNil(t *testing.T) {
	if got := JSON(nil); got != "" {
		t.Fatalf("expected empty string for nil envelope, got %q", got)
	}
	out := JSON(Emit(KindWebSite, WebSite{Name: "Icon Dumpsters", URL: "/"}))
	if !strings.Contains(out, "\n  \"@context\": \"https://schema.org\"") {
		t.Fatalf("expected 2-space indented JSON, got %q", out)
	}
}

func TestWebSiteSearchAction(t *testing.T) {
	env := Emit(KindWebSite, WebSite{Name: "Icon Dumpsters", URL: "/", SearchURL: "/search?q="})
	action, ok := env["potentialAction"].(map[string]any)
	if !ok {
		t.Fatalf("expected potentialAction, got %v", env["potentialAction"])
	}
	target, _ := action["target"].(string)
	if !strings.HasSuffix(target, "{search_term_string}") {
		t.Fatalf("expected query placeholder in target, got %q", target)
	}
}

func TestItemListPositions(t *testing.T) {
	env := Emit(KindItemList, ItemList{
		Name: "Service Areas",
		Items: []ListEntry{
			{Name: "Sandy", URL: "/dumpster-rental-sandy-ut"},
			{Name: "Orem", URL: "/dumpster-rental-orem-ut"},
		},
	})
	el := env["itemListElement"].([]map[string]any)
	if len(el) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(el))
	}
	if el[0]["position"] != 1 || el[1]["position"] != 2 {
		t.Fatalf("expected 1-based positions, got %v / %v", el[0]["position"], el[1]["position"])
	}
}

func TestHowToSteps(t *testing.T) {
	env := Emit(KindHowTo, HowTo{
		Name:          "How to Rent a Dumpster",
		EstimatedCost: "300",
		Steps: []HowToStep{
			{Name: "Pick a size", Text: "Choose 15, 20, or 30 yards."},
			{Name: "Schedule delivery"},
		},
	})
	steps, ok := env["step"].([]map[string]any)
	if !ok || len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %v", env["step"])
	}
	if _, present := steps[1]["text"]; present {
		t.Fatalf("step without text must omit the key")
	}
	cost := env["estimatedCost"].(map[string]any)
	if cost["currency"] != "USD" {
		t.Fatalf("expected USD cost, got %v", cost)
	}
}
