package controllers

import (
	"net/http"

	"folio/app/catalog"
	"folio/app/models"
	"folio/app/services"

	"github.com/gorilla/mux"
)

// ProjectController handles HTTP requests for projects
type ProjectController struct {
	projects *services.ProjectService
	*Renderer
}

// NewProjectController creates a new ProjectController
func NewProjectController(projects *services.ProjectService, rd *Renderer) *ProjectController {
	return &ProjectController{projects: projects, Renderer: rd}
}

type projectIndexData struct {
	Query    catalog.ProjectQuery `json:"query"`
	Filtered bool                 `json:"filtered"`
	Count    int                  `json:"count"`
	Projects []models.Project     `json:"projects"`
	Tags     []string             `json:"-"`
}

func queryFrom(r *http.Request) catalog.ProjectQuery {
	v := r.URL.Query()
	return catalog.ProjectQuery{Text: v.Get("q"), Tag: v.Get("tag")}
}

// Index lists projects, narrowed by the q and tag query parameters.
func (pc *ProjectController) Index(w http.ResponseWriter, r *http.Request) {
	q := queryFrom(r)
	projects := pc.projects.List(q)
	data := projectIndexData{
		Query:    q,
		Filtered: !q.IsZero(),
		Count:    len(projects),
		Projects: projects,
		Tags:     pc.projects.Tags(),
	}
	if wantsJSON(r) {
		pc.sendJSON(w, r, http.StatusOK, data)
		return
	}
	pc.render(w, r, http.StatusOK, PageProjectsIndex, data)
}

// Show displays a single project.
func (pc *ProjectController) Show(w http.ResponseWriter, r *http.Request) {
	project, ok := pc.projects.Get(mux.Vars(r)["id"])
	if !ok {
		pc.notFound(w, r, "Project not found", "/projects", "Back to Projects")
		return
	}
	if wantsJSON(r) {
		pc.sendJSON(w, r, http.StatusOK, project)
		return
	}
	pc.render(w, r, http.StatusOK, PageProjectsShow, project)
}

// Tags lists the distinct project tags.
func (pc *ProjectController) Tags(w http.ResponseWriter, r *http.Request) {
	pc.sendJSON(w, r, http.StatusOK, map[string][]string{"tags": pc.projects.Tags()})
}
