package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/app/models"
)

func TestFilterProjects(t *testing.T) {
	projects := testProjects()

	tests := []struct {
		name  string
		query ProjectQuery
		want  []string
	}{
		{name: "no filter", query: ProjectQuery{}, want: []string{"portfolio-site", "task-api", "chat-app", "weather", "shop"}},
		{name: "title match", query: ProjectQuery{Text: "portfolio"}, want: []string{"portfolio-site"}},
		{name: "description match", query: ProjectQuery{Text: "react"}, want: []string{"task-api"}},
		{name: "upper case text", query: ProjectQuery{Text: "REACT"}, want: []string{"task-api"}},
		{name: "tag match ignores case", query: ProjectQuery{Tag: "React"}, want: []string{"chat-app", "weather"}},
		{name: "lower case tag", query: ProjectQuery{Tag: "react"}, want: []string{"chat-app", "weather"}},
		{name: "tag is exact not substring", query: ProjectQuery{Tag: "Rea"}, want: []string{}},
		{name: "text and tag", query: ProjectQuery{Text: "chat", Tag: "REACT"}, want: []string{"chat-app"}},
		{name: "no match", query: ProjectQuery{Text: "kubernetes"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, projectIDs(got))
		})
	}
}

func TestFilterProjectsSingleProject(t *testing.T) {
	projects := []models.Project{
		{ID: "portfolio", Title: "Portfolio Site", Description: "My site", Tags: []string{"Next.js", "TypeScript"}},
	}

	got := FilterProjects(projects, ProjectQuery{Text: "portfolio"})
	assert.Equal(t, projects, got)

	got = FilterProjects(projects, ProjectQuery{Tag: "React"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterProjectsProperties(t *testing.T) {
	projects := testProjects()
	queries := []ProjectQuery{
		{}, {Text: "a"}, {Text: "API"}, {Tag: "go"}, {Text: "s", Tag: "Go"}, {Text: "zzz"},
	}

	for _, q := range queries {
		first := FilterProjects(projects, q)

		// idempotent
		assert.Equal(t, first, FilterProjects(projects, q), "%+v", q)

		// order-preserving subsequence
		assert.True(t, isSubsequence(projectIDs(first), projectIDs(projects)), "%+v", q)

		// conjunction
		if q.Text != "" && q.Tag != "" {
			byText := FilterProjects(projects, ProjectQuery{Text: q.Text})
			byTag := FilterProjects(projects, ProjectQuery{Tag: q.Tag})
			assert.Equal(t, intersect(projectIDs(byText), projectIDs(byTag)), projectIDs(first), "%+v", q)
		}
	}

	assert.Equal(t, projects, FilterProjects(projects, ProjectQuery{}))
}

func TestFilterProjectsDoesNotMutateSource(t *testing.T) {
	projects := testProjects()
	before := testProjects()

	got := FilterProjects(projects, ProjectQuery{Tag: "go"})
	require.NotEmpty(t, got)
	got[0].Tags[0] = "changed"

	assert.Equal(t, before, projects)
}

func TestProjectQueryIsZero(t *testing.T) {
	assert.True(t, ProjectQuery{}.IsZero())
	assert.False(t, ProjectQuery{Text: "x"}.IsZero())
	assert.False(t, ProjectQuery{Tag: "x"}.IsZero())
}

func TestTags(t *testing.T) {
	got := Tags(testProjects())

	// "React" and "react" are distinct entries: dedup is case-sensitive.
	assert.Equal(t, []string{"Charts", "Go", "Next.js", "PostgreSQL", "React", "TypeScript", "WebSocket", "react"}, got)
	assert.Empty(t, Tags(nil))
	assert.NotNil(t, Tags(nil))
}

func isSubsequence(sub, full []string) bool {
	j := 0
	for _, s := range full {
		if j < len(sub) && sub[j] == s {
			j++
		}
	}
	return j == len(sub)
}

func intersect(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	out := []string{}
	for _, s := range a {
		if in[s] {
			out = append(out, s)
		}
	}
	return out
}
