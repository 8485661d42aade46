package repositories

import (
	"context"

	"folio/app/models"
)

// ProjectRepository defines read access to the seeded projects
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// BlogPostRepository defines read access to the seeded blog posts
type BlogPostRepository interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}
