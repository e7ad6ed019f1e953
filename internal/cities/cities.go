// Package cities is the compiled-in table of city landing pages. One entry
// per city page; the slug doubles as the route segment in
// /dumpster-rental-{slug}-ut.
package cities

import "github.com/icondumpsters/web/internal/schema"

func f(v float64) *float64 { return &v }

// table is ordered; route registration and the sitemap both iterate it in
// this order. Coordinates are listed for the larger cities only — entries
// without them fall back to the canonical geo during derivation.
var table = []schema.CityParameters{
	{Name: "Salt Lake City", Slug: "salt-lake-city", State: "UT", Phone: "+1-801-918-6001", Latitude: f(40.7608), Longitude: f(-111.8910)},
	{Name: "West Valley City", Slug: "west-valley-city", State: "UT", Latitude: f(40.6916), Longitude: f(-112.0011)},
	{Name: "Provo", Slug: "provo", State: "UT", Phone: "+1-801-918-6002", Latitude: f(40.2338), Longitude: f(-111.6585)},
	{Name: "West Jordan", Slug: "west-jordan", State: "UT", Latitude: f(40.6097), Longitude: f(-111.9391)},
	{Name: "Orem", Slug: "orem", State: "UT", Latitude: f(40.2969), Longitude: f(-111.6946)},
	{Name: "Sandy", Slug: "sandy", State: "UT", Latitude: f(40.5649), Longitude: f(-111.8389)},
	{Name: "Ogden", Slug: "ogden", State: "UT", Phone: "+1-801-918-6003", Latitude: f(41.2230), Longitude: f(-111.9738)},
	{Name: "St George", Slug: "st-george", State: "UT", Latitude: f(37.0965), Longitude: f(-113.5684)},
	{Name: "Layton", Slug: "layton", State: "UT", Latitude: f(41.0602), Longitude: f(-111.9711)},
	{Name: "South Jordan", Slug: "south-jordan", State: "UT", Latitude: f(40.5622), Longitude: f(-111.9297)},
	{Name: "Lehi", Slug: "lehi", State: "UT", Latitude: f(40.3916), Longitude: f(-111.8508)},
	{Name: "Millcreek", Slug: "millcreek", State: "UT", Latitude: f(40.6869), Longitude: f(-111.8755)},
	{Name: "Taylorsville", Slug: "taylorsville", State: "UT", Latitude: f(40.6677), Longitude: f(-111.9388)},
	{Name: "Logan", Slug: "logan", State: "UT", Latitude: f(41.7370), Longitude: f(-111.8338)},
	{Name: "Murray", Slug: "murray", State: "UT", Latitude: f(40.6669), Longitude: f(-111.8880)},
	{Name: "Draper", Slug: "draper", State: "UT", Latitude: f(40.5247), Longitude: f(-111.8638)},
	{Name: "Bountiful", Slug: "bountiful", State: "UT", Latitude: f(40.8894), Longitude: f(-111.8808)},
	{Name: "Riverton", Slug: "riverton", State: "UT", Latitude: f(40.5219), Longitude: f(-111.9391)},
	{Name: "Herriman", Slug: "herriman", State: "UT", Latitude: f(40.5141), Longitude: f(-112.0329)},
	{Name: "Spanish Fork", Slug: "spanish-fork", State: "UT", Latitude: f(40.1150), Longitude: f(-111.6549)},
	{Name: "Roy", Slug: "roy", State: "UT", Latitude: f(41.1616), Longitude: f(-112.0263)},
	{Name: "Pleasant Grove", Slug: "pleasant-grove", State: "UT", Latitude: f(40.3641), Longitude: f(-111.7385)},
	{Name: "Kearns", Slug: "kearns", State: "UT", Latitude: f(40.6599), Longitude: f(-112.0095)},
	{Name: "Tooele", Slug: "tooele", State: "UT", Latitude: f(40.5308), Longitude: f(-112.2983)},
	{Name: "Cottonwood Heights", Slug: "cottonwood-heights", State: "UT", Latitude: f(40.6197), Longitude: f(-111.8102)},
	{Name: "Springville", Slug: "springville", State: "UT", Latitude: f(40.1652), Longitude: f(-111.6107)},
	{Name: "Cedar City", Slug: "cedar-city", State: "UT", Latitude: f(37.6775), Longitude: f(-113.0619)},
	{Name: "Midvale", Slug: "midvale", State: "UT", Latitude: f(40.6111), Longitude: f(-111.8999)},
	{Name: "Kaysville", Slug: "kaysville", State: "UT", Latitude: f(41.0352), Longitude: f(-111.9386)},
	{Name: "Holladay", Slug: "holladay", State: "UT", Latitude: f(40.6689), Longitude: f(-111.8247)},
	{Name: "American Fork", Slug: "american-fork", State: "UT", Latitude: f(40.3769), Longitude: f(-111.7958)},
	{Name: "Syracuse", Slug: "syracuse", State: "UT", Latitude: f(41.0894), Longitude: f(-112.0647)},
	{Name: "Clearfield", Slug: "clearfield", State: "UT", Latitude: f(41.1108), Longitude: f(-112.0261)},
	{Name: "Magna", Slug: "magna", State: "UT", Latitude: f(40.7091), Longitude: f(-112.1016)},
	{Name: "South Salt Lake", Slug: "south-salt-lake", State: "UT", Latitude: f(40.7188), Longitude: f(-111.8882)},
	{Name: "Farmington", Slug: "farmington", State: "UT", Latitude: f(40.9805), Longitude: f(-111.8874)},
	{Name: "Clinton", Slug: "clinton", State: "UT", Latitude: f(41.1394), Longitude: f(-112.0505)},
	{Name: "North Salt Lake", Slug: "north-salt-lake", State: "UT", Latitude: f(40.8486), Longitude: f(-111.9069)},
	{Name: "Payson", Slug: "payson", State: "UT", Latitude: f(40.0444), Longitude: f(-111.7321)},
	{Name: "North Ogden", Slug: "north-ogden", State: "UT", Latitude: f(41.3071), Longitude: f(-111.9602)},
	{Name: "Brigham City", Slug: "brigham-city", State: "UT", Latitude: f(41.5102), Longitude: f(-112.0155)},
	{Name: "Highland", Slug: "highland", State: "UT", Latitude: f(40.4254), Longitude: f(-111.7946)},
	{Name: "Saratoga Springs", Slug: "saratoga-springs", State: "UT", Latitude: f(40.3496), Longitude: f(-111.9047)},
	{Name: "Centerville", Slug: "centerville", State: "UT", Latitude: f(40.9180), Longitude: f(-111.8722)},
	{Name: "Hurricane", Slug: "hurricane", State: "UT", Latitude: f(37.1753), Longitude: f(-113.2899)},
	{Name: "Heber City", Slug: "heber-city", State: "UT", Latitude: f(40.5070), Longitude: f(-111.4133)},
	{Name: "West Haven", Slug: "west-haven", State: "UT", Latitude: f(41.2033), Longitude: f(-112.0538)},
	{Name: "Bluffdale", Slug: "bluffdale", State: "UT", Latitude: f(40.4847), Longitude: f(-111.9389)},
	{Name: "Santaquin", Slug: "santaquin", State: "UT", Latitude: f(39.9756), Longitude: f(-111.7852)},
	{Name: "Eagle Mountain", Slug: "eagle-mountain", State: "UT", Latitude: f(40.3141), Longitude: f(-112.0069)},
	{Name: "Vernal", Slug: "vernal", State: "UT"},
	{Name: "Alpine", Slug: "alpine", State: "UT"},
	{Name: "Smithfield", Slug: "smithfield", State: "UT"},
	{Name: "Tremonton", Slug: "tremonton", State: "UT"},
	{Name: "South Ogden", Slug: "south-ogden", State: "UT"},
	{Name: "Lindon", Slug: "lindon", State: "UT"},
	{Name: "Mapleton", Slug: "mapleton", State: "UT"},
	{Name: "North Logan", Slug: "north-logan", State: "UT"},
	{Name: "Cedar Hills", Slug: "cedar-hills", State: "UT"},
	{Name: "Price", Slug: "price", State: "UT"},
	{Name: "Grantsville", Slug: "grantsville", State: "UT"},
	{Name: "Pleasant View", Slug: "pleasant-view", State: "UT"},
	{Name: "Moab", Slug: "moab", State: "UT"},
	{Name: "Providence", Slug: "providence", State: "UT"},
	{Name: "Hyrum", Slug: "hyrum", State: "UT"},
	{Name: "Richfield", Slug: "richfield", State: "UT"},
	{Name: "Vineyard", Slug: "vineyard", State: "UT"},
	{Name: "Ephraim", Slug: "ephraim", State: "UT"},
	{Name: "Roosevelt", Slug: "roosevelt", State: "UT"},
	{Name: "Washington Terrace", Slug: "washington-terrace", State: "UT"},
	{Name: "Farr West", Slug: "farr-west", State: "UT"},
	{Name: "Nephi", Slug: "nephi", State: "UT"},
	{Name: "Woods Cross", Slug: "woods-cross", State: "UT"},
	{Name: "Ivins", Slug: "ivins", State: "UT"},
	{Name: "Santa Clara", Slug: "santa-clara", State: "UT"},
	{Name: "Nibley", Slug: "nibley", State: "UT"},
	{Name: "Harrisville", Slug: "harrisville", State: "UT"},
	{Name: "West Point", Slug: "west-point", State: "UT"},
	{Name: "Stansbury Park", Slug: "stansbury-park", State: "UT"},
	{Name: "Salem", Slug: "salem", State: "UT"},
	{Name: "Plain City", Slug: "plain-city", State: "UT"},
	{Name: "Hooper", Slug: "hooper", State: "UT"},
	{Name: "Park City", Slug: "park-city", State: "UT", Latitude: f(40.6461), Longitude: f(-111.4980)},
	{Name: "Sunset", Slug: "sunset", State: "UT"},
	{Name: "Delta", Slug: "delta", State: "UT"},
	{Name: "Fillmore", Slug: "fillmore", State: "UT"},
	{Name: "Morgan", Slug: "morgan", State: "UT"},
	{Name: "Coalville", Slug: "coalville", State: "UT"},
	{Name: "Kamas", Slug: "kamas", State: "UT"},
	{Name: "Midway", Slug: "midway", State: "UT"},
	{Name: "Duchesne", Slug: "duchesne", State: "UT"},
	{Name: "Manti", Slug: "manti", State: "UT"},
	{Name: "Mount Pleasant", Slug: "mount-pleasant", State: "UT"},
	{Name: "Gunnison", Slug: "gunnison", State: "UT"},
	{Name: "Beaver", Slug: "beaver", State: "UT"},
	{Name: "Panguitch", Slug: "panguitch", State: "UT"},
	{Name: "Kanab", Slug: "kanab", State: "UT"},
	{Name: "Blanding", Slug: "blanding", State: "UT"},
	{Name: "Monticello", Slug: "monticello", State: "UT"},
	{Name: "Castle Dale", Slug: "castle-dale", State: "UT"},
	{Name: "Huntington", Slug: "huntington", State: "UT"},
	{Name: "Wellington", Slug: "wellington", State: "UT"},
	{Name: "Helper", Slug: "helper", State: "UT"},
}

var bySlug = func() map[string]schema.CityParameters {
	m := make(map[string]schema.CityParameters, len(table))
	for _, ct := range table {
		m[ct.Slug] = ct
	}
	return m
}()

// Lookup returns the parameters for slug.
func Lookup(slug string) (schema.CityParameters, bool) {
	ct, ok := bySlug[slug]
	return ct, ok
}

// All returns a copy of the full table in registration order.
func All() []schema.CityParameters {
	return append([]schema.CityParameters(nil), table...)
}

// Slugs returns every city slug in registration order.
func Slugs() []string {
	out := make([]string, 0, len(table))
	for _, ct := range table {
		out = append(out, ct.Slug)
	}
	return out
}

// Count reports how many city pages the table defines.
func Count() int { return len(table) }
