package services

import (
	"time"

	"folio/app/catalog"
	"folio/app/models"
	"folio/app/search"
)

// ProjectService handles project listing, lookup and search
type ProjectService struct {
	catalog     *catalog.Catalog
	searchDelay time.Duration
}

// NewProjectService creates a new ProjectService
func NewProjectService(c *catalog.Catalog, searchDelay time.Duration) *ProjectService {
	return &ProjectService{
		catalog:     c,
		searchDelay: searchDelay,
	}
}

// List returns the projects matching q in collection order
func (s *ProjectService) List(q catalog.ProjectQuery) []models.Project {
	return s.catalog.FilterProjects(q)
}

// Get returns the project with the given ID
func (s *ProjectService) Get(id string) (models.Project, bool) {
	return s.catalog.ProjectByID(id)
}

// Tags returns the tag choices for the filter
func (s *ProjectService) Tags() []string {
	return s.catalog.Tags()
}

// Featured returns the projects highlighted on the home page
func (s *ProjectService) Featured() []models.Project {
	return s.catalog.FeaturedProjects(catalog.DefaultSelectionSize)
}

// NewSearchSession starts a deferred search over the projects
func (s *ProjectService) NewSearchSession() *search.Session {
	return search.NewSession(s.catalog, s.searchDelay)
}
