package controllers

import (
	"net/http"

	"folio/app/models"
	"folio/app/services"
)

// HomeController serves the landing page and the health check.
type HomeController struct {
	projects *services.ProjectService
	blog     *services.BlogService
	*Renderer
}

// NewHomeController creates a new HomeController
func NewHomeController(projects *services.ProjectService, blog *services.BlogService, rd *Renderer) *HomeController {
	return &HomeController{projects: projects, blog: blog, Renderer: rd}
}

type homeData struct {
	Featured []models.Project  `json:"featured"`
	Recent   []models.BlogPost `json:"recent"`
}

// Index renders the hero, featured projects and recent posts.
func (hc *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		Featured: hc.projects.Featured(),
		Recent:   hc.blog.Recent(),
	}
	if wantsJSON(r) {
		hc.sendJSON(w, r, http.StatusOK, data)
		return
	}
	hc.render(w, r, http.StatusOK, PageHome, data)
}

// Health reports liveness.
func (hc *HomeController) Health(w http.ResponseWriter, r *http.Request) {
	hc.sendJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
