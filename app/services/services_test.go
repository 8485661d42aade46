package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/app/catalog"
	"folio/app/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: "one", Title: "Portfolio Site", Description: "Personal site", Tags: []string{"Next.js", "TypeScript"}, Featured: true},
		{ID: "two", Title: "Task API", Description: "REST service", Tags: []string{"Go"}, Featured: true},
		{ID: "three", Title: "Chat", Description: "Realtime", Tags: []string{"React"}, Featured: true},
		{ID: "four", Title: "Shop", Description: "Storefront", Tags: []string{"Go", "react"}, Featured: true},
	}
	posts := []models.BlogPost{
		{Slug: "a", Title: "A", Description: "d", Content: "# Heading\n\nSome *text* <script>alert(1)</script>", Date: date, ReadingTime: 1, Tags: []string{"Go"}, Author: "Jane"},
		{Slug: "b", Title: "B", Description: "d", Content: "| a | b |\n|---|---|\n| 1 | 2 |", Date: date, ReadingTime: 2, Tags: []string{"Go"}, Author: "Jane"},
		{Slug: "c", Title: "C", Description: "d", Content: "c", Date: date, ReadingTime: 3, Tags: []string{"Go"}, Author: "Jane"},
		{Slug: "d", Title: "D", Description: "d", Content: "d", Date: date, ReadingTime: 4, Tags: []string{"Go"}, Author: "Jane"},
	}
	c, err := catalog.New(projects, posts)
	require.NoError(t, err)
	return c
}

func TestProjectService(t *testing.T) {
	svc := NewProjectService(testCatalog(t), 10*time.Millisecond)

	t.Run("list all", func(t *testing.T) {
		assert.Len(t, svc.List(catalog.ProjectQuery{}), 4)
	})

	t.Run("list filtered", func(t *testing.T) {
		got := svc.List(catalog.ProjectQuery{Tag: "REACT"})
		require.Len(t, got, 2)
		assert.Equal(t, "three", got[0].ID)
		assert.Equal(t, "four", got[1].ID)
	})

	t.Run("get", func(t *testing.T) {
		p, ok := svc.Get("two")
		assert.True(t, ok)
		assert.Equal(t, "Task API", p.Title)

		_, ok = svc.Get("missing")
		assert.False(t, ok)
	})

	t.Run("featured capped at three", func(t *testing.T) {
		assert.Len(t, svc.Featured(), 3)
	})

	t.Run("tags", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "Next.js", "React", "TypeScript", "react"}, svc.Tags())
	})

	t.Run("search session", func(t *testing.T) {
		session := svc.NewSearchSession()
		defer session.Close()

		session.Update(catalog.ProjectQuery{Text: "portfolio"})
		select {
		case res := <-session.Results():
			require.Len(t, res.Projects, 1)
			assert.Equal(t, "one", res.Projects[0].ID)
		case <-time.After(2 * time.Second):
			t.Fatal("search did not settle")
		}
	})
}

func TestBlogService(t *testing.T) {
	svc := NewBlogService(testCatalog(t))

	t.Run("list", func(t *testing.T) {
		assert.Len(t, svc.List(), 4)
	})

	t.Run("recent takes the first three", func(t *testing.T) {
		recent := svc.Recent()
		require.Len(t, recent, 3)
		assert.Equal(t, "a", recent[0].Slug)
		assert.Equal(t, "c", recent[2].Slug)
	})

	t.Run("get missing", func(t *testing.T) {
		_, ok := svc.Get("does-not-exist")
		assert.False(t, ok)
	})

	t.Run("render markdown", func(t *testing.T) {
		post, ok := svc.Get("a")
		require.True(t, ok)

		html, err := svc.Render(post)
		require.NoError(t, err)
		assert.Contains(t, string(html), `<h1 id="heading">Heading</h1>`)
		assert.Contains(t, string(html), "<em>text</em>")
		assert.NotContains(t, string(html), "<script>")
	})

	t.Run("render tables", func(t *testing.T) {
		post, _ := svc.Get("b")
		html, err := svc.Render(post)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(html), "<table>"))
	})

	t.Run("render is cached", func(t *testing.T) {
		post, _ := svc.Get("c")
		first, err := svc.Render(post)
		require.NoError(t, err)

		post.Content = "changed"
		second, err := svc.Render(post)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
