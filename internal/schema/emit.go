package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const schemaContext = "https://schema.org"

// Emit builds one schema.org envelope for kind from the matching payload.
// It returns nil when the kind is unknown, the payload does not match the
// kind, or the payload suppresses emission (empty FAQ list). Callers check
// for nil before rendering; nil means "no schema for this call", not an
// error.
func Emit(kind Kind, payload any) map[string]any {
	switch kind {
	case KindLocalBusiness:
		if b, ok := businessPayload(payload); ok {
			return localBusiness(b)
		}
	case KindService:
		if s, ok := payload.(ServiceRecord); ok {
			return service(s)
		}
	case KindFAQ:
		if items, ok := payload.([]FAQItem); ok {
			return faqPage(items)
		}
	case KindBreadcrumb:
		if items, ok := payload.([]BreadcrumbItem); ok {
			return breadcrumbList(items)
		}
	case KindArticle:
		if a, ok := payload.(Article); ok {
			return article(a)
		}
	case KindOrganization:
		if o, ok := payload.(Organization); ok {
			return organization(o)
		}
	case KindProduct:
		if p, ok := payload.(Product); ok {
			return product(p)
		}
	case KindWebSite:
		if w, ok := payload.(WebSite); ok {
			return webSite(w)
		}
	case KindItemList:
		if l, ok := payload.(ItemList); ok {
			return itemList(l)
		}
	case KindHowTo:
		if h, ok := payload.(HowTo); ok {
			return howTo(h)
		}
	}
	return nil
}

// JSON serializes an envelope pretty-printed (2-space indent) for embedding
// in a <script type="application/ld+json"> block. It returns an empty string
// for nil envelopes and on marshal error so a broken schema never breaks
// page rendering.
func JSON(env map[string]any) string {
	if env == nil {
		return ""
	}
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func businessPayload(payload any) (BusinessRecord, bool) {
	switch v := payload.(type) {
	case BusinessRecord:
		return v, true
	case *BusinessRecord:
		if v != nil {
			return *v, true
		}
	}
	return BusinessRecord{}, false
}

func localBusiness(b BusinessRecord) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "LocalBusiness",
		"name":     b.Name,
		"address":  postalAddress(b.Address),
	}
	if b.ID != "" {
		m["@id"] = b.ID
	}
	if b.LegalName != "" {
		m["legalName"] = b.LegalName
	}
	if b.Description != "" {
		m["description"] = b.Description
	}
	if b.URL != "" {
		m["url"] = absURL(b.URL)
	}
	if b.Telephone != "" {
		m["telephone"] = b.Telephone
	}
	if b.Email != "" {
		m["email"] = b.Email
	}
	if b.Logo != "" {
		m["logo"] = absURL(b.Logo)
	}
	if b.Image != "" {
		m["image"] = absURL(b.Image)
	}
	if b.PriceRange != "" {
		m["priceRange"] = b.PriceRange
	}
	if b.Geo != nil {
		m["geo"] = geoCoordinates(*b.Geo)
	}
	if area := serviceArea(b.Geo, b.ServiceRadiusKm); area != nil {
		m["serviceArea"] = area
	}
	if len(b.AreaServed) > 0 {
		m["areaServed"] = areas(b.AreaServed)
	}
	if len(b.OpeningHours) > 0 {
		m["openingHours"] = append([]string(nil), b.OpeningHours...)
	}
	if len(b.PaymentAccepted) > 0 {
		m["paymentAccepted"] = strings.Join(b.PaymentAccepted, ", ")
	}
	if b.CurrenciesAccepted != "" {
		m["currenciesAccepted"] = b.CurrenciesAccepted
	}
	if len(b.Credentials) > 0 {
		m["hasCredential"] = credentials(b.Credentials)
	}
	if len(b.Keywords) > 0 {
		m["keywords"] = strings.Join(b.Keywords, ", ")
	}
	if len(b.SameAs) > 0 {
		m["sameAs"] = append([]string(nil), b.SameAs...)
	}
	if len(b.ContactPoints) > 0 {
		m["contactPoint"] = contactPoints(b.ContactPoints)
	}
	if b.Rating != nil {
		m["aggregateRating"] = aggregateRating(*b.Rating)
	}
	if len(b.Reviews) > 0 {
		m["review"] = reviews(b.Reviews)
	}
	if len(b.Offers) > 0 {
		m["offers"] = offerList(b.Offers)
	}
	// makesOffer is always emitted: a LocalBusiness without explicit offers
	// still advertises the default dumpster-rental offer. This fallback is
	// specific to LocalBusiness and is not applied by any other builder.
	m["makesOffer"] = makesOffer(b.MakesOffer)
	if b.OfferCatalog != nil {
		m["hasOfferCatalog"] = offerCatalog(*b.OfferCatalog)
	}
	return m
}

func service(s ServiceRecord) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Service",
		"name":     s.Name,
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.URL != "" {
		m["url"] = absURL(s.URL)
	}
	if s.ProviderName != "" {
		p := map[string]any{
			"@type": "LocalBusiness",
			"name":  s.ProviderName,
		}
		if s.ProviderURL != "" {
			p["url"] = absURL(s.ProviderURL)
		}
		m["provider"] = p
	}
	if s.ServiceType != "" {
		m["serviceType"] = s.ServiceType
	}
	if len(s.AreaServed) > 0 {
		m["areaServed"] = placeNames(s.AreaServed)
	}
	if s.Audience != "" {
		m["audience"] = map[string]any{
			"@type":        "Audience",
			"audienceType": s.Audience,
		}
	}
	if s.Brand != "" {
		m["brand"] = map[string]any{
			"@type": "Brand",
			"name":  s.Brand,
		}
	}
	switch {
	case len(s.Offers) > 0:
		m["offers"] = offerList(s.Offers)
	case s.PriceRange != "":
		if off := priceRangeOffer(s.PriceRange); off != nil {
			m["offers"] = off
		}
	}
	return m
}

// priceRangeOffer turns "$200-$800" into an AggregateOffer and "$150" into a
// flat-price Offer. A range whose low bound is not numeric yields nil; the
// caller then skips the offers key entirely.
func priceRangeOffer(pr string) map[string]any {
	cleaned := strings.ReplaceAll(pr, "$", "")
	parts := strings.SplitN(cleaned, "-", 2)
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil
	}
	if len(parts) == 2 {
		if high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			return map[string]any{
				"@type":         "AggregateOffer",
				"priceCurrency": DefaultCurrency,
				"lowPrice":      low,
				"highPrice":     high,
			}
		}
	}
	return map[string]any{
		"@type":         "Offer",
		"priceCurrency": DefaultCurrency,
		"price":         low,
	}
}

// faqPage suppresses emission for an empty list: an empty FAQPage is invalid
// per Google's rich-result rules and would duplicate the visible FAQ block.
func faqPage(items []FAQItem) map[string]any {
	if len(items) == 0 {
		return nil
	}
	entities := make([]map[string]any, 0, len(items))
	for _, it := range items {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

func breadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     absURL(it.Item),
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

func article(a Article) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Article",
		"headline": a.Headline,
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	if a.URL != "" {
		m["url"] = absURL(a.URL)
	}
	if imgs := articleImages(a); len(imgs) > 0 {
		m["image"] = imgs
	}
	if a.AuthorName != "" {
		m["author"] = map[string]any{
			"@type": "Person",
			"name":  a.AuthorName,
		}
	}
	if a.DatePublished != "" {
		m["datePublished"] = a.DatePublished
	}
	if a.DateModified != "" {
		m["dateModified"] = a.DateModified
	}
	m["publisher"] = publisherBlock()
	return m
}

// articleImages normalizes the single-image and image-list fields into one
// absolute URL array.
func articleImages(a Article) []string {
	out := make([]string, 0, len(a.Images)+1)
	if a.Image != "" {
		out = append(out, absURL(a.Image))
	}
	for _, img := range a.Images {
		if img != "" {
			out = append(out, absURL(img))
		}
	}
	return out
}

// publisherBlock is the fixed Organization publisher attached to every
// article.
func publisherBlock() map[string]any {
	return map[string]any{
		"@type": "Organization",
		"name":  SiteName,
		"logo": map[string]any{
			"@type": "ImageObject",
			"url":   absURL(SiteLogoPath),
		},
	}
}

func organization(o Organization) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     o.Name,
	}
	if o.LegalName != "" {
		m["legalName"] = o.LegalName
	}
	if o.Description != "" {
		m["description"] = o.Description
	}
	if o.URL != "" {
		m["url"] = absURL(o.URL)
	}
	if o.Logo != "" {
		m["logo"] = absURL(o.Logo)
	}
	if o.Telephone != "" {
		m["telephone"] = o.Telephone
	}
	if o.Email != "" {
		m["email"] = o.Email
	}
	if len(o.SameAs) > 0 {
		m["sameAs"] = append([]string(nil), o.SameAs...)
	}
	return m
}

func product(p Product) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Product",
		"name":     p.Name,
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Image != "" {
		m["image"] = absURL(p.Image)
	}
	if p.SKU != "" {
		m["sku"] = p.SKU
	}
	if p.Brand != "" {
		m["brand"] = map[string]any{
			"@type": "Brand",
			"name":  p.Brand,
		}
	}
	if p.URL != "" {
		m["url"] = absURL(p.URL)
	}
	if p.Price != "" {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": currencyOr(p.PriceCurrency),
		}
	}
	if p.Rating != nil {
		m["aggregateRating"] = aggregateRating(*p.Rating)
	}
	return m
}

func webSite(w WebSite) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     w.Name,
	}
	if w.URL != "" {
		m["url"] = absURL(w.URL)
	}
	if w.SearchURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      absURL(w.SearchURL) + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

func itemList(l ItemList) map[string]any {
	el := make([]map[string]any, 0, len(l.Items))
	for i, it := range l.Items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Description != "" {
			entry["description"] = it.Description
		}
		if it.URL != "" {
			entry["url"] = absURL(it.URL)
		}
		el = append(el, entry)
	}
	m := map[string]any{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"itemListElement": el,
	}
	if l.Name != "" {
		m["name"] = l.Name
	}
	return m
}

func howTo(h HowTo) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "HowTo",
		"name":     h.Name,
	}
	if h.Description != "" {
		m["description"] = h.Description
	}
	if h.TotalTime != "" {
		m["totalTime"] = h.TotalTime
	}
	if h.EstimatedCost != "" {
		m["estimatedCost"] = map[string]any{
			"@type":    "MonetaryAmount",
			"currency": DefaultCurrency,
			"value":    h.EstimatedCost,
		}
	}
	if len(h.Steps) > 0 {
		steps := make([]map[string]any, 0, len(h.Steps))
		for _, st := range h.Steps {
			step := map[string]any{
				"@type": "HowToStep",
				"name":  st.Name,
			}
			if st.Text != "" {
				step["text"] = st.Text
			}
			if st.URL != "" {
				step["url"] = absURL(st.URL)
			}
			steps = append(steps, step)
		}
		m["step"] = steps
	}
	return m
}

// sub-builders

func postalAddress(a Address) map[string]any {
	m := map[string]any{"@type": "PostalAddress"}
	if a.Street != "" {
		m["streetAddress"] = a.Street
	}
	if a.Locality != "" {
		m["addressLocality"] = a.Locality
	}
	if a.Region != "" {
		m["addressRegion"] = a.Region
	}
	if a.PostalCode != "" {
		m["postalCode"] = a.PostalCode
	}
	if a.Country != "" {
		m["addressCountry"] = a.Country
	}
	return m
}

func geoCoordinates(g Geo) map[string]any {
	return map[string]any{
		"@type":     "GeoCoordinates",
		"latitude":  g.Latitude,
		"longitude": g.Longitude,
	}
}

func serviceArea(g *Geo, radiusKm float64) map[string]any {
	if g == nil {
		return nil
	}
	if radiusKm <= 0 {
		radiusKm = DefaultServiceRadiusKm
	}
	return map[string]any{
		"@type":       "GeoCircle",
		"geoMidpoint": geoCoordinates(*g),
		"geoRadius":   fmt.Sprintf("%.0f km", radiusKm),
	}
}

func areas(list []Area) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, a := range list {
		t := a.Type
		if t == "" {
			t = "Place"
		}
		out = append(out, map[string]any{
			"@type": t,
			"name":  a.Name,
		})
	}
	return out
}

func placeNames(names []string) []map[string]any {
	out := make([]map[string]any, 0, len(names))
	for _, n := range names {
		out = append(out, map[string]any{
			"@type": "Place",
			"name":  n,
		})
	}
	return out
}

func credentials(list []string) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, c := range list {
		out = append(out, map[string]any{
			"@type": "EducationalOccupationalCredential",
			"name":  c,
		})
	}
	return out
}

func contactPoints(list []ContactPoint) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, cp := range list {
		m := map[string]any{"@type": "ContactPoint"}
		if cp.Telephone != "" {
			m["telephone"] = cp.Telephone
		}
		if cp.ContactType != "" {
			m["contactType"] = cp.ContactType
		}
		if cp.Email != "" {
			m["email"] = cp.Email
		}
		if len(cp.AreaServed) > 0 {
			m["areaServed"] = append([]string(nil), cp.AreaServed...)
		}
		out = append(out, m)
	}
	return out
}

func aggregateRating(r AggregateRating) map[string]any {
	m := map[string]any{
		"@type":       "AggregateRating",
		"ratingValue": r.Value,
		"reviewCount": r.Count,
	}
	if r.Best > 0 {
		m["bestRating"] = r.Best
	}
	if r.Worst > 0 {
		m["worstRating"] = r.Worst
	}
	return m
}

func reviews(list []Review) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, rv := range list {
		m := map[string]any{"@type": "Review"}
		if rv.Author != "" {
			m["author"] = map[string]any{
				"@type": "Person",
				"name":  rv.Author,
			}
		}
		if rv.Date != "" {
			m["datePublished"] = rv.Date
		}
		if rv.Body != "" {
			m["reviewBody"] = rv.Body
		}
		if rv.Rating > 0 {
			m["reviewRating"] = map[string]any{
				"@type":       "Rating",
				"ratingValue": rv.Rating,
			}
		}
		out = append(out, m)
	}
	return out
}

func offerList(list []Offer) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, o := range list {
		m := map[string]any{"@type": "Offer"}
		if o.Name != "" {
			m["name"] = o.Name
		}
		if o.Description != "" {
			m["description"] = o.Description
		}
		if o.Price != "" {
			m["price"] = o.Price
			m["priceCurrency"] = currencyOr(o.PriceCurrency)
		}
		if o.URL != "" {
			m["url"] = absURL(o.URL)
		}
		out = append(out, m)
	}
	return out
}

// makesOffer always yields at least one entry; see localBusiness.
func makesOffer(list []ServiceOffer) []map[string]any {
	if len(list) == 0 {
		list = []ServiceOffer{{
			Name:        DefaultOfferName,
			Description: "Roll-off dumpster rental with same-day delivery.",
		}}
	}
	out := make([]map[string]any, 0, len(list))
	for _, so := range list {
		out = append(out, serviceOffer(so))
	}
	return out
}

func serviceOffer(so ServiceOffer) map[string]any {
	item := map[string]any{
		"@type": "Service",
		"name":  so.Name,
	}
	if so.Description != "" {
		item["description"] = so.Description
	}
	if so.URL != "" {
		item["url"] = absURL(so.URL)
	}
	if len(so.AreaServed) > 0 {
		item["areaServed"] = placeNames(so.AreaServed)
	}
	m := map[string]any{
		"@type":       "Offer",
		"itemOffered": item,
	}
	if so.Price != "" {
		m["price"] = so.Price
		m["priceCurrency"] = currencyOr(so.PriceCurrency)
	}
	return m
}

func offerCatalog(c OfferCatalog) map[string]any {
	items := make([]map[string]any, 0, len(c.Items))
	for _, it := range c.Items {
		entry := map[string]any{
			"@type": "Service",
			"name":  it.Name,
		}
		if it.Description != "" {
			entry["description"] = it.Description
		}
		if it.URL != "" {
			entry["url"] = absURL(it.URL)
		}
		items = append(items, map[string]any{
			"@type":       "Offer",
			"itemOffered": entry,
		})
	}
	m := map[string]any{
		"@type":           "OfferCatalog",
		"itemListElement": items,
	}
	if c.Name != "" {
		m["name"] = c.Name
	}
	return m
}

func currencyOr(c string) string {
	if c == "" {
		return DefaultCurrency
	}
	return c
}
