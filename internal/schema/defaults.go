package schema

// Named fallback constants. The derivation and emission fallback chains lean
// on these; keeping them in one place keeps the chains auditable.
const (
	// DefaultBaseURL is the production origin used when no base URL has
	// been configured and no request headers are available.
	DefaultBaseURL = "https://icondumpsters.com"

	// SiteName is the display name used in fixed blocks such as the
	// article publisher.
	SiteName = "Icon Dumpsters"

	// SiteLogoPath is the site logo, relative to the base origin.
	SiteLogoPath = "/images/logo.png"

	// DefaultCurrency is applied to offers parsed out of price-range
	// strings and to offers that carry a price without a currency.
	DefaultCurrency = "USD"

	// DefaultOfferName is the makesOffer fallback injected when a
	// LocalBusiness payload carries no offers of its own.
	DefaultOfferName = "Dumpster Rental Near Me"

	// DefaultServiceRadiusKm is the canonical business's service radius.
	DefaultServiceRadiusKm = 80

	// CityServiceRadiusKm is the narrower radius claimed by city pages.
	CityServiceRadiusKm = 50
)

// DefaultGeo is the last-resort coordinate (the Murray, UT yard) used when
// neither a city nor the canonical record supplies one.
var DefaultGeo = Geo{Latitude: 40.6669, Longitude: -111.8880}
