package blog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writePost(t *testing.T, dir, slug, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}
}

const samplePost = `---
title: Choosing a Dumpster Size
summary: 15, 20, or 30 yards?
author: Mike Later
category: guides
tags: [sizes, pricing]
publish_at: 2025-03-10
seo:
  meta_description: Pick the right roll-off size.
---
## Rule of thumb

A **20 yard** container covers most remodels.

<script>alert("nope")</script>
`

func TestGetRendersAndSanitizes(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "choosing-a-dumpster-size", samplePost)
	s := NewStore(dir)

	post, err := s.Get("choosing-a-dumpster-size")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Title != "Choosing a Dumpster Size" {
		t.Fatalf("unexpected title: %q", post.Title)
	}
	if post.SEO.MetaDescription != "Pick the right roll-off size." {
		t.Fatalf("unexpected seo: %+v", post.SEO)
	}
	if !post.PublishAt.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected publish date: %v", post.PublishAt)
	}
	html := string(post.HTML)
	if !strings.Contains(html, "<strong>20 yard</strong>") {
		t.Fatalf("expected rendered markdown, got %s", html)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("expected script tags stripped, got %s", html)
	}
}

func TestGetUnknownSlug(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get("../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("traversal slugs must miss, got %v", err)
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "older", "---\ntitle: Older\npublish_at: 2025-01-01\n---\nbody\n")
	writePost(t, dir, "newer", "---\ntitle: Newer\npublish_at: 2025-06-01\n---\nbody\n")
	s := NewStore(dir)

	posts, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Fatalf("unexpected order: %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestListSkipsBrokenPosts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good", "---\ntitle: Good\n---\nbody\n")
	writePost(t, dir, "untitled", "---\nsummary: no title here\n---\nbody\n")
	s := NewStore(dir)

	posts, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Fatalf("expected only the valid post, got %+v", posts)
	}
}

func TestCacheServesUntilExpiry(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "cached", "---\ntitle: First\n---\nbody\n")
	s := NewStore(dir)
	s.SetCacheDuration(time.Hour)

	if _, err := s.Get("cached"); err != nil {
		t.Fatalf("get: %v", err)
	}
	writePost(t, dir, "cached", "---\ntitle: Second\n---\nbody\n")
	post, err := s.Get("cached")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Title != "First" {
		t.Fatalf("expected cached copy, got %q", post.Title)
	}
}

func TestNoFrontMatterIsInvalid(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bare", "just a body with no title\n")
	s := NewStore(dir)
	if _, err := s.Get("bare"); err == nil {
		t.Fatalf("expected error for post without a title")
	}
}
