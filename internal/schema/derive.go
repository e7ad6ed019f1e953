package schema

import (
	"fmt"
	"math"
	"strings"
)

// DeriveCityBusiness specializes the canonical business record for one city
// landing page. Identity and location fields are overridden around the city
// slug, city keyword phrases are merged in, and a city-scoped offer is
// prepended to the canonical offer list. Everything else passes through
// unchanged. The function is pure: the same inputs always produce
// structurally identical output and the canonical record is never mutated.
func DeriveCityBusiness(canonical BusinessRecord, city CityParameters) BusinessRecord {
	out := canonical
	path := CityPagePath(city.Slug)

	out.ID = absURL(path) + "#local-business"
	out.Name = fmt.Sprintf("%s - %s, %s", canonical.Name, city.Name, city.State)
	out.URL = path
	// Telephone is a fallback chain, not a replacement: cities without a
	// local line keep the canonical number.
	if city.Phone != "" {
		out.Telephone = city.Phone
	}
	out.Geo = cityGeo(city, canonical.Geo)
	out.AreaServed = []Area{
		{Name: city.Name + ", " + city.State, Type: "City"},
		{Name: city.State, Type: "State"},
	}
	// City pages claim a narrower local radius than the canonical business.
	out.ServiceRadiusKm = CityServiceRadiusKm
	out.Keywords = mergeKeywords(canonical.Keywords, cityKeywords(city.Name))

	cityOffer := ServiceOffer{
		Name:        city.Name + " Dumpster Rental",
		Description: fmt.Sprintf("Roll-off dumpster rental delivered anywhere in %s, %s.", city.Name, city.State),
		URL:         path,
		AreaServed:  []string{city.Name + ", " + city.State},
	}
	out.MakesOffer = append([]ServiceOffer{cityOffer}, canonical.MakesOffer...)
	return out
}

// DeriveCityService builds the Service record that accompanies a derived
// city business on the same page.
func DeriveCityService(canonical BusinessRecord, city CityParameters) ServiceRecord {
	path := CityPagePath(city.Slug)
	return ServiceRecord{
		Name:         fmt.Sprintf("Dumpster Rental in %s, %s", city.Name, city.State),
		Description:  fmt.Sprintf("Residential and construction roll-off dumpster rental in %s, %s with flat-rate pricing and same-day delivery.", city.Name, city.State),
		URL:          path,
		ProviderName: fmt.Sprintf("%s - %s, %s", canonical.Name, city.Name, city.State),
		ProviderURL:  path,
		ServiceType:  "Dumpster Rental",
		AreaServed:   []string{city.Name + ", " + city.State},
		PriceRange:   canonical.PriceRange,
	}
}

// cityGeo picks the city coordinate when finite, then the canonical one,
// then the hard default. All three levels are load-bearing: most city table
// entries carry no coordinates of their own.
func cityGeo(city CityParameters, canonical *Geo) *Geo {
	if city.Latitude != nil && city.Longitude != nil &&
		finite(*city.Latitude) && finite(*city.Longitude) {
		return &Geo{Latitude: *city.Latitude, Longitude: *city.Longitude}
	}
	if canonical != nil {
		g := *canonical
		return &g
	}
	g := DefaultGeo
	return &g
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func cityKeywords(cityName string) []string {
	lower := strings.ToLower(cityName)
	return []string{
		lower + " dumpster rental",
		lower + " roll-off dumpsters",
		lower + " waste removal",
	}
}

// mergeKeywords unions the two lists, deduplicating while keeping first-seen
// order.
func mergeKeywords(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, kw := range append(append([]string(nil), base...), extra...) {
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
