package services

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"folio/app/catalog"
	"folio/app/models"
)

// BlogService handles blog listing, lookup and Markdown rendering
type BlogService struct {
	catalog  *catalog.Catalog
	markdown goldmark.Markdown

	mu       sync.RWMutex
	rendered map[string]template.HTML
}

// NewBlogService creates a new BlogService
func NewBlogService(c *catalog.Catalog) *BlogService {
	return &BlogService{
		catalog: c,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		rendered: make(map[string]template.HTML),
	}
}

// List returns every post in collection order
func (s *BlogService) List() []models.BlogPost {
	return s.catalog.Posts()
}

// Get returns the post with the given slug
func (s *BlogService) Get(slug string) (models.BlogPost, bool) {
	return s.catalog.PostBySlug(slug)
}

// Recent returns the posts shown on the home page
func (s *BlogService) Recent() []models.BlogPost {
	return s.catalog.RecentPosts(catalog.DefaultSelectionSize)
}

// Render converts the post's Markdown content to HTML. Content never changes
// after start-up, so output is cached by slug.
func (s *BlogService) Render(post models.BlogPost) (template.HTML, error) {
	s.mu.RLock()
	html, ok := s.rendered[post.Slug]
	s.mu.RUnlock()
	if ok {
		return html, nil
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(post.Content), &buf); err != nil {
		return "", fmt.Errorf("render post %q: %w", post.Slug, err)
	}
	// goldmark escapes raw HTML unless WithUnsafe is set.
	html = template.HTML(buf.String())

	s.mu.Lock()
	s.rendered[post.Slug] = html
	s.mu.Unlock()
	return html, nil
}
