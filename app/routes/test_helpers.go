package routes

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"folio/app/catalog"
	"folio/app/content"
	"folio/app/controllers"
	"folio/app/repositories"
	"folio/app/services"
	"folio/app/views"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	db, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestRouter seeds the embedded content into an in-memory store and
// wires the full router on top of it.
func setupTestRouter(t *testing.T) (*mux.Router, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t)

	data, err := content.Load(content.Embedded())
	require.NoError(t, err)
	require.NoError(t, repositories.Seed(ctx, db, data.Projects, data.Posts))

	c, err := catalog.Load(ctx, repositories.NewBadgerProjectRepository(db), repositories.NewBadgerBlogPostRepository(db))
	require.NoError(t, err)

	rd, err := controllers.NewRenderer(views.Templates(), controllers.DefaultSite())
	require.NoError(t, err)

	var logs bytes.Buffer
	router := SetupRoutes(Dependencies{
		Projects: services.NewProjectService(c, 0),
		Blog:     services.NewBlogService(c),
		Renderer: rd,
		Static:   views.Static(),
		Logger:   slog.New(slog.NewJSONHandler(&logs, nil)),
	})
	return router, &logs
}
