package routes

import (
	"io/fs"
	"log/slog"
	"net/http"

	"folio/app/controllers"
	"folio/app/middleware"
	"folio/app/services"

	"github.com/gorilla/mux"
)

// Dependencies are the collaborators the router wires into controllers.
type Dependencies struct {
	Projects *services.ProjectService
	Blog     *services.BlogService
	Renderer *controllers.Renderer
	Static   fs.FS
	Logger   *slog.Logger
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	router := mux.NewRouter()
	router.StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	home := controllers.NewHomeController(deps.Projects, deps.Blog, deps.Renderer)
	projects := controllers.NewProjectController(deps.Projects, deps.Renderer)
	blog := controllers.NewBlogController(deps.Blog, deps.Renderer)

	// mux skips middleware for unmatched routes, so the fallback is wrapped by hand.
	notFound := http.Handler(http.HandlerFunc(deps.Renderer.NotFound))
	notFound = middleware.Recoverer(logger)(notFound)
	notFound = middleware.Logger(logger)(notFound)
	router.NotFoundHandler = middleware.RequestID(notFound)

	if deps.Static != nil {
		router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServerFS(deps.Static))).Methods("GET", "HEAD")
	}

	// Web routes
	router.HandleFunc("/", home.Index).Methods("GET", "HEAD")
	router.HandleFunc("/projects", projects.Index).Methods("GET", "HEAD")
	router.HandleFunc("/projects/{id}", projects.Show).Methods("GET", "HEAD")
	router.HandleFunc("/blog", blog.Index).Methods("GET", "HEAD")
	router.HandleFunc("/blog/{slug}", blog.Show).Methods("GET", "HEAD")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/health", home.Health).Methods("GET")
	api.HandleFunc("/projects", projects.Index).Methods("GET")
	api.HandleFunc("/projects/{id}", projects.Show).Methods("GET")
	api.HandleFunc("/tags", projects.Tags).Methods("GET")
	api.HandleFunc("/posts", blog.Index).Methods("GET")
	api.HandleFunc("/posts/{slug}", blog.Show).Methods("GET")

	return router
}
