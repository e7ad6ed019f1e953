// Package seo carries the per-page head metadata consumed by the base
// template. Structured data (JSON-LD) is built by internal/schema; the
// serialized blocks land here so templates only deal with strings.
package seo

import "github.com/icondumpsters/web/internal/schema"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the head metadata for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter

	// JSONLD holds ready-to-embed structured data blocks, one per
	// <script type="application/ld+json"> tag.
	JSONLD []string
}

// AddSchema serializes and appends an envelope; nil envelopes are dropped
// silently so callers can chain Emit results without checking each one.
func (m *Meta) AddSchema(env map[string]any) {
	if s := schema.JSON(env); s != "" {
		m.JSONLD = append(m.JSONLD, s)
	}
}

// CanonicalFor builds the absolute canonical URL for a path.
func CanonicalFor(path string) string {
	return schema.ToAbsoluteURL(schema.BaseURL(), path)
}
