package controllers

import (
	"html/template"
	"net/http"

	"folio/app/models"
	"folio/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blog posts
type BlogController struct {
	blog *services.BlogService
	*Renderer
}

// NewBlogController creates a new BlogController
func NewBlogController(blog *services.BlogService, rd *Renderer) *BlogController {
	return &BlogController{blog: blog, Renderer: rd}
}

type blogIndexData struct {
	Posts []models.BlogPost `json:"posts"`
}

type blogShowData struct {
	Post models.BlogPost
	HTML template.HTML
}

// Index lists every post in collection order.
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	data := blogIndexData{Posts: bc.blog.List()}
	if wantsJSON(r) {
		bc.sendJSON(w, r, http.StatusOK, data)
		return
	}
	bc.render(w, r, http.StatusOK, PageBlogIndex, data)
}

// Show displays a single post with its rendered Markdown body.
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := bc.blog.Get(mux.Vars(r)["slug"])
	if !ok {
		bc.notFound(w, r, "Post not found", "/blog", "Back to Blog")
		return
	}
	if wantsJSON(r) {
		bc.sendJSON(w, r, http.StatusOK, post)
		return
	}
	html, err := bc.blog.Render(post)
	if err != nil {
		bc.sendError(w, r, "Failed to render post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	bc.render(w, r, http.StatusOK, PageBlogShow, blogShowData{Post: post, HTML: html})
}
