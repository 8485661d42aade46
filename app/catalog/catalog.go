// Package catalog holds the read-only content store: the ordered project and
// blog post collections, lookups by key, the project filter and the featured
// and recent selections.
package catalog

import (
	"context"
	"fmt"

	"folio/app/models"
	"folio/app/repositories"
)

// DefaultSelectionSize is the number of featured projects and recent posts
// shown on the home page.
const DefaultSelectionSize = 3

// ErrDuplicateKey is returned when two records share an ID or slug.
var ErrDuplicateKey = repositories.ErrDuplicateKey

// Catalog is an immutable snapshot of all site content.
type Catalog struct {
	projects []models.Project
	posts    []models.BlogPost
}

// New validates the records and builds a catalog. The inputs are copied.
func New(projects []models.Project, posts []models.BlogPost) (*Catalog, error) {
	c := &Catalog{
		projects: make([]models.Project, 0, len(projects)),
		posts:    make([]models.BlogPost, 0, len(posts)),
	}

	ids := make(map[string]struct{}, len(projects))
	for i := range projects {
		p := projects[i].Clone()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		if _, ok := ids[p.ID]; ok {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateKey)
		}
		ids[p.ID] = struct{}{}
		c.projects = append(c.projects, p)
	}

	slugs := make(map[string]struct{}, len(posts))
	for i := range posts {
		b := posts[i].Clone()
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("post %d: %w", i, err)
		}
		if _, ok := slugs[b.Slug]; ok {
			return nil, fmt.Errorf("post %q: %w", b.Slug, ErrDuplicateKey)
		}
		slugs[b.Slug] = struct{}{}
		c.posts = append(c.posts, b)
	}

	return c, nil
}

// Load reads both collections from the repositories and builds a catalog.
func Load(ctx context.Context, projectRepo repositories.ProjectRepository, postRepo repositories.BlogPostRepository) (*Catalog, error) {
	projects, err := projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	posts, err := postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return New(projects, posts)
}

// Projects returns all projects in collection order.
func (c *Catalog) Projects() []models.Project {
	return cloneProjects(c.projects)
}

// Posts returns all blog posts in collection order.
func (c *Catalog) Posts() []models.BlogPost {
	out := make([]models.BlogPost, len(c.posts))
	for i := range c.posts {
		out[i] = c.posts[i].Clone()
	}
	return out
}

// ProjectByID returns the first project whose ID equals id exactly.
func (c *Catalog) ProjectByID(id string) (models.Project, bool) {
	return FindProjectByID(c.projects, id)
}

// PostBySlug returns the first post whose slug equals slug exactly.
func (c *Catalog) PostBySlug(slug string) (models.BlogPost, bool) {
	return FindPostBySlug(c.posts, slug)
}

// FilterProjects applies q to the project collection.
func (c *Catalog) FilterProjects(q ProjectQuery) []models.Project {
	return FilterProjects(c.projects, q)
}

// Tags returns the distinct project tags in ascending order.
func (c *Catalog) Tags() []string {
	return Tags(c.projects)
}

// FeaturedProjects returns at most n featured projects in collection order.
func (c *Catalog) FeaturedProjects(n int) []models.Project {
	if n < 0 {
		n = 0
	}
	out := make([]models.Project, 0, n)
	for i := range c.projects {
		if len(out) >= n {
			break
		}
		if c.projects[i].Featured {
			out = append(out, c.projects[i].Clone())
		}
	}
	return out
}

// RecentPosts returns the first n posts. Collection order is recency order.
func (c *Catalog) RecentPosts(n int) []models.BlogPost {
	if n < 0 {
		n = 0
	}
	n = min(n, len(c.posts))
	out := make([]models.BlogPost, n)
	for i := range n {
		out[i] = c.posts[i].Clone()
	}
	return out
}

// FindProjectByID scans projects for the first exact ID match.
func FindProjectByID(projects []models.Project, id string) (models.Project, bool) {
	for i := range projects {
		if projects[i].ID == id {
			return projects[i].Clone(), true
		}
	}
	return models.Project{}, false
}

// FindPostBySlug scans posts for the first exact slug match.
func FindPostBySlug(posts []models.BlogPost, slug string) (models.BlogPost, bool) {
	for i := range posts {
		if posts[i].Slug == slug {
			return posts[i].Clone(), true
		}
	}
	return models.BlogPost{}, false
}

func cloneProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i := range projects {
		out[i] = projects[i].Clone()
	}
	return out
}
