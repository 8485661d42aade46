package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio/app/models"
)

// ProjectQuery is a free-text query plus an optional tag. Empty fields are
// inactive.
type ProjectQuery struct {
	Text string `json:"q"`
	Tag  string `json:"tag"`
}

// IsZero reports whether neither filter is active.
func (q ProjectQuery) IsZero() bool {
	return q.Text == "" && q.Tag == ""
}

// FilterProjects keeps projects whose title or description contains q.Text
// and which carry q.Tag, both compared case-insensitively. The result keeps
// collection order and is never nil.
func FilterProjects(projects []models.Project, q ProjectQuery) []models.Project {
	// Casers are stateful, so each call gets its own.
	lower := cases.Lower(language.Und)
	text := lower.String(q.Text)
	tag := lower.String(q.Tag)

	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		if text != "" &&
			!strings.Contains(lower.String(p.Title), text) &&
			!strings.Contains(lower.String(p.Description), text) {
			continue
		}
		if tag != "" && !slices.ContainsFunc(p.Tags, func(t string) bool {
			return lower.String(t) == tag
		}) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Tags returns every distinct tag across projects, deduplicated
// case-sensitively and sorted ascending. "React" and "react" both appear even
// though the filter treats them as the same tag.
func Tags(projects []models.Project) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range projects {
		for _, t := range projects[i].Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
