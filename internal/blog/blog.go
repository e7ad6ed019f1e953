// Package blog serves the site's articles from local markdown files with
// YAML front matter. Rendered HTML is sanitized and cached in memory for a
// short TTL; posts only change on deploy, but the cache keeps dev-mode
// editing pleasant.
package blog

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no post exists for a slug.
var ErrNotFound = errors.New("blog: not found")

const defaultPostsDir = "content/posts"

// Post is one rendered article.
type Post struct {
	Slug      string
	Title     string
	Summary   string
	Author    string
	Category  string
	Tags      []string
	HeroImage string
	PublishAt time.Time
	UpdatedAt time.Time
	HTML      template.HTML
	SEO       PostSEO
}

// PostSEO holds optional per-post metadata overrides.
type PostSEO struct {
	MetaTitle       string
	MetaDescription string
	OGImage         string
}

type frontMatter struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Author    string   `yaml:"author"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	HeroImage string   `yaml:"hero_image"`
	PublishAt string   `yaml:"publish_at"`
	UpdatedAt string   `yaml:"updated_at"`
	SEO       struct {
		MetaTitle       string `yaml:"meta_title"`
		MetaDescription string `yaml:"meta_description"`
		OGImage         string `yaml:"og_image"`
	} `yaml:"seo"`
}

type cacheEntry struct {
	post    Post
	expires time.Time
}

// Store reads and renders posts from a directory.
type Store struct {
	dir    string
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]cacheEntry
	ttl   time.Duration
}

// NewStore constructs a Store rooted at dir ("" uses content/posts).
func NewStore(dir string) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultPostsDir
	}
	return &Store{
		dir:    dir,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		cache:  map[string]cacheEntry{},
		ttl:    5 * time.Minute,
	}
}

// SetCacheDuration overrides the cache TTL (primarily for tests).
func (s *Store) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.mu.Lock()
	s.ttl = d
	s.cache = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Get returns the rendered post for slug.
func (s *Store) Get(slug string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	s.mu.RLock()
	entry, ok := s.cache[slug]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.post, nil
	}

	post, err := s.load(slug)
	if err != nil {
		return Post{}, err
	}
	s.mu.Lock()
	s.cache[slug] = cacheEntry{post: post, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return post, nil
}

// List returns all posts, newest first.
func (s *Store) List() ([]Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("blog: read dir: %w", err)
	}
	posts := make([]Post, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		post, err := s.Get(strings.TrimSuffix(e.Name(), ".md"))
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishAt.After(posts[j].PublishAt)
	})
	return posts, nil
}

func (s *Store) load(slug string) (Post, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("blog: read %s: %w", slug, err)
	}

	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return Post{}, fmt.Errorf("blog: parse %s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return Post{}, fmt.Errorf("blog: render %s: %w", slug, err)
	}
	clean := s.policy.SanitizeBytes(buf.Bytes())

	post := Post{
		Slug:      slug,
		Title:     fm.Title,
		Summary:   fm.Summary,
		Author:    fm.Author,
		Category:  fm.Category,
		Tags:      fm.Tags,
		HeroImage: fm.HeroImage,
		PublishAt: parseDate(fm.PublishAt),
		UpdatedAt: parseDate(fm.UpdatedAt),
		HTML:      template.HTML(clean),
		SEO: PostSEO{
			MetaTitle:       fm.SEO.MetaTitle,
			MetaDescription: fm.SEO.MetaDescription,
			OGImage:         fm.SEO.OGImage,
		},
	}
	if post.Title == "" {
		return Post{}, fmt.Errorf("blog: %s has no title", slug)
	}
	return post, nil
}

const fmDelimiter = "---"

func splitFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, fmDelimiter+"\n") {
		// No front matter; the whole file is the body.
		return fm, []byte(text), nil
	}
	rest := text[len(fmDelimiter)+1:]
	idx := strings.Index(rest, "\n"+fmDelimiter)
	if idx < 0 {
		return fm, nil, errors.New("unterminated front matter")
	}
	head := rest[:idx]
	body := rest[idx+len(fmDelimiter)+1:]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return fm, nil, err
	}
	return fm, []byte(body), nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range slug {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return ""
	}
	return slug
}
