package handlers

import (
	"github.com/icondumpsters/web/internal/blog"
	"github.com/icondumpsters/web/internal/format"
	"github.com/icondumpsters/web/internal/schema"
	"github.com/icondumpsters/web/internal/seo"
)

// BlogIndexData is the view model for the blog index.
type BlogIndexData struct {
	Posts []PostCard
}

// PostCard is one post teaser on the index.
type PostCard struct {
	Slug      string
	Title     string
	Summary   string
	Category  string
	HeroImage string
	Published string
}

// BuildBlogIndexData constructs the blog index view model from published
// posts.
func BuildBlogIndexData(posts []blog.Post) (BlogIndexData, seo.Meta) {
	cards := make([]PostCard, 0, len(posts))
	entries := make([]schema.ListEntry, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, PostCard{
			Slug:      p.Slug,
			Title:     p.Title,
			Summary:   p.Summary,
			Category:  p.Category,
			HeroImage: p.HeroImage,
			Published: format.Date(p.PublishAt),
		})
		entries = append(entries, schema.ListEntry{
			Name:        p.Title,
			Description: p.Summary,
			URL:         "/blog/" + p.Slug,
		})
	}

	meta := seo.Meta{
		Title:       "Dumpster Rental Guides & Tips | Icon Dumpsters Blog",
		Description: "Sizing guides, permit walkthroughs, and disposal tips from the Icon Dumpsters crew.",
		Canonical:   seo.CanonicalFor("/blog"),
	}
	meta.AddSchema(schema.Emit(schema.KindItemList, schema.ItemList{
		Name:  "Icon Dumpsters Blog",
		Items: entries,
	}))
	return BlogIndexData{Posts: cards}, meta
}

// BlogPostData is the view model for a single post page.
type BlogPostData struct {
	Post      blog.Post
	Published string
}

// BuildBlogPostData constructs the view model and Article structured data
// for one post.
func BuildBlogPostData(p blog.Post) (BlogPostData, seo.Meta) {
	path := "/blog/" + p.Slug

	title := p.Title + " | Icon Dumpsters"
	desc := p.Summary
	if p.SEO.MetaTitle != "" {
		title = p.SEO.MetaTitle
	}
	if p.SEO.MetaDescription != "" {
		desc = p.SEO.MetaDescription
	}

	meta := seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   seo.CanonicalFor(path),
	}

	article := schema.Article{
		Headline:    p.Title,
		Description: p.Summary,
		Image:       p.HeroImage,
		AuthorName:  p.Author,
		URL:         path,
	}
	if !p.PublishAt.IsZero() {
		article.DatePublished = p.PublishAt.Format("2006-01-02")
	}
	if !p.UpdatedAt.IsZero() {
		article.DateModified = p.UpdatedAt.Format("2006-01-02")
	}
	meta.AddSchema(schema.Emit(schema.KindArticle, article))
	meta.AddSchema(schema.Emit(schema.KindBreadcrumb, []schema.BreadcrumbItem{
		{Name: "Home", Item: "/"},
		{Name: "Blog", Item: "/blog"},
		{Name: p.Title, Item: path},
	}))

	return BlogPostData{Post: p, Published: format.Date(p.PublishAt)}, meta
}
