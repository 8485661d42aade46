package search

import (
	"context"
	"time"

	"folio/app/catalog"
	"folio/app/models"
)

// DefaultDelay is the pause between the last input change and the filtered
// result being applied.
const DefaultDelay = 300 * time.Millisecond

// Filterer filters the project collection.
type Filterer interface {
	FilterProjects(q catalog.ProjectQuery) []models.Project
}

// Result is a settled project search.
type Result struct {
	Query    catalog.ProjectQuery
	Projects []models.Project
}

// Filtered reports whether any filter was active, so an empty result can be
// told apart from an empty collection.
func (r Result) Filtered() bool {
	return !r.Query.IsZero()
}

// Session is one client's live project search.
type Session struct {
	d *Debouncer[catalog.ProjectQuery, Result]
}

// NewSession starts a search session over f. A non-positive delay uses
// DefaultDelay.
func NewSession(f Filterer, delay time.Duration) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Session{
		d: NewDebouncer(delay, func(_ context.Context, q catalog.ProjectQuery) Result {
			return Result{Query: q, Projects: f.FilterProjects(q)}
		}),
	}
}

// Update replaces the current query.
func (s *Session) Update(q catalog.ProjectQuery) {
	s.d.Submit(q)
}

// Results delivers settled results for the latest query.
func (s *Session) Results() <-chan Result {
	return s.d.Results()
}

// State reports whether a search is pending.
func (s *Session) State() State {
	return s.d.State()
}

// Latest returns the last settled result.
func (s *Session) Latest() (Result, bool) {
	return s.d.Latest()
}

// Close ends the session.
func (s *Session) Close() {
	s.d.Close()
}
