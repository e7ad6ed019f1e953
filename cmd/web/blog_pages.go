package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/icondumpsters/web/internal/blog"
	handlersPkg "github.com/icondumpsters/web/internal/handlers"
)

// BlogIndexHandler renders the blog index, newest first.
func BlogIndexHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := blogStore.List()
	if err != nil {
		logger.Error("list posts", zap.Error(err))
		posts = nil
	}
	data, meta := handlersPkg.BuildBlogIndexData(posts)
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Blog = data
	render(w, r, "blog", http.StatusOK, page)
}

// BlogPostHandler renders one post, or 404 for unknown slugs.
func BlogPostHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := blogStore.Get(slug)
	if err != nil {
		if !errors.Is(err, blog.ErrNotFound) {
			logger.Error("load post", zap.String("slug", slug), zap.Error(err))
		}
		NotFoundHandler(w, r)
		return
	}
	data, meta := handlersPkg.BuildBlogPostData(post)
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Post = data
	render(w, r, "blog_post", http.StatusOK, page)
}
