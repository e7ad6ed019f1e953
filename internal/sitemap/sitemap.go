// Package sitemap renders the XML sitemap from the static route list, the
// city pages, and published blog posts.
package sitemap

import (
	"encoding/xml"
	"time"

	"github.com/icondumpsters/web/internal/blog"
	"github.com/icondumpsters/web/internal/cities"
	"github.com/icondumpsters/web/internal/schema"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticPaths are the always-present pages, in sitemap order.
var StaticPaths = []string{
	"/",
	"/services",
	"/services/residential-dumpster-rental",
	"/services/construction-dumpster-rental",
	"/services/concrete-disposal",
	"/dumpster-sizes",
	"/locations",
	"/blog",
	"/contact",
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Build renders the sitemap XML for the given base URL. posts may be nil.
func Build(base string, posts []blog.Post) ([]byte, error) {
	set := urlSet{Xmlns: xmlns}

	for _, p := range StaticPaths {
		entry := urlEntry{
			Loc:        schema.ToAbsoluteURL(base, p),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		}
		if p == "/" {
			entry.Priority = "1.0"
		}
		set.URLs = append(set.URLs, entry)
	}

	for _, slug := range cities.Slugs() {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        schema.ToAbsoluteURL(base, schema.CityPagePath(slug)),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	for _, p := range posts {
		entry := urlEntry{
			Loc:        schema.ToAbsoluteURL(base, "/blog/"+p.Slug),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		}
		if last := latest(p.PublishAt, p.UpdatedAt); !last.IsZero() {
			entry.LastMod = last.Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, entry)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(base string) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + schema.ToAbsoluteURL(base, "/sitemap.xml") + "\n")
}
