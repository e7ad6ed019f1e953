// Package nav defines the site navigation and derives breadcrumbs from
// request paths.
package nav

import (
	"path"
	"strings"

	"github.com/icondumpsters/web/internal/schema"
)

// Item represents a navigation entry. Children render as a dropdown.
type Item struct {
	Path     string
	Label    string
	Children []Item
}

// RenderedItem is the view model templates iterate over.
type RenderedItem struct {
	Href     string
	Label    string
	Active   bool
	Children []RenderedItem
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition. The Locations dropdown is
// populated at render time from the city table; see Build.
var Main = []Item{
	{Path: "/services", Label: "Services"},
	{Path: "/dumpster-sizes", Label: "Dumpster Sizes"},
	{Path: "/locations", Label: "Locations"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/contact", Label: "Get a Quote"},
}

// Build renders navigation items with active state given the current path.
// locations supplies the dropdown children for the Locations entry, usually
// the most-served cities rather than the full table.
func Build(currentPath string, locations []Item) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		r := RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		}
		children := it.Children
		if it.Path == "/locations" && len(locations) > 0 {
			children = locations
		}
		for _, ch := range children {
			r.Children = append(r.Children, RenderedItem{
				Href:   ch.Path,
				Label:  ch.Label,
				Active: isActive(ch.Path, currentPath),
			})
			if r.Children[len(r.Children)-1].Active {
				r.Active = true
			}
		}
		items = append(items, r)
	}
	return items
}

// CityLinks converts city table entries to dropdown items, capped at limit
// (0 means no cap).
func CityLinks(params []schema.CityParameters, limit int) []Item {
	if limit > 0 && len(params) > limit {
		params = params[:limit]
	}
	out := make([]Item, 0, len(params))
	for _, ct := range params {
		out = append(out, Item{
			Path:  schema.CityPagePath(ct.Slug),
			Label: ct.Name,
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. City landing
// pages get a two-level trail (Home > City); other paths expand segment by
// segment with prettified labels.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	if city := schema.ResolveCityFromPath(currentPath); city != "" {
		crumbs = append(crumbs, Crumb{
			Href:   currentPath,
			Label:  city + " Dumpster Rental",
			Active: true,
		})
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		label := labelFor(href)
		if label == "" {
			label = titleFromSegment(seg)
		}
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label,
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

func labelFor(href string) string {
	for _, it := range Main {
		if it.Path == href {
			return it.Label
		}
	}
	return ""
}

func titleFromSegment(seg string) string {
	return schema.CityDisplayName(seg)
}
