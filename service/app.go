// Package service assembles folio from configuration: it fills the content
// store, builds the catalog and services, and runs the HTTP server.
package service

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"folio/app/catalog"
	"folio/app/config"
	"folio/app/content"
	"folio/app/controllers"
	"folio/app/repositories"
	"folio/app/routes"
	"folio/app/services"
	"folio/app/views"

	"github.com/dgraph-io/badger/v4"
)

// App holds the wired application.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *badger.DB

	closeOnce sync.Once
	closeErr  error

	Catalog  *catalog.Catalog
	Projects *services.ProjectService
	Blog     *services.BlogService
}

// NewApp opens the store, fills it from the configured snapshot or content
// source, and loads the catalog from it.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repositories.Open(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, logger: logger, db: db}
	if err := a.fill(ctx); err != nil {
		db.Close()
		return nil, err
	}

	c, err := catalog.Load(ctx, repositories.NewBadgerProjectRepository(db), repositories.NewBadgerBlogPostRepository(db))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.Catalog = c
	a.Projects = services.NewProjectService(c, cfg.Search.Delay)
	a.Blog = services.NewBlogService(c)

	logger.Info("catalog loaded",
		slog.Int("projects", len(c.Projects())),
		slog.Int("posts", len(c.Posts())),
		slog.String("store", storeName(cfg.Store.Path)),
	)
	return a, nil
}

func (a *App) fill(ctx context.Context) error {
	if a.cfg.Store.Snapshot != "" {
		if err := restoreSnapshot(a.db, a.cfg.Store.Snapshot); err != nil {
			return err
		}
		a.logger.Info("store restored", slog.String("snapshot", a.cfg.Store.Snapshot))
		return nil
	}

	data, err := content.Load(contentFS(a.cfg.Content.Dir))
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if err := repositories.Seed(ctx, a.db, data.Projects, data.Posts); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	a.logger.Debug("store seeded", slog.String("content", contentName(a.cfg.Content.Dir)))
	return nil
}

// Handler builds the HTTP router.
func (a *App) Handler() (http.Handler, error) {
	site := controllers.DefaultSite()
	site.Title = a.cfg.Site.Title
	site.Author = a.cfg.Site.Author

	rd, err := controllers.NewRenderer(views.Templates(), site)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return routes.SetupRoutes(routes.Dependencies{
		Projects: a.Projects,
		Blog:     a.Blog,
		Renderer: rd,
		Static:   views.Static(),
		Logger:   a.logger,
	}), nil
}

// Close releases the store. It is safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() { a.closeErr = a.db.Close() })
	return a.closeErr
}

func contentFS(dir string) fs.FS {
	if dir == "" {
		return content.Embedded()
	}
	return os.DirFS(dir)
}

func contentName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

func storeName(path string) string {
	if path == "" {
		return "memory"
	}
	return path
}
