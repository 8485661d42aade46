package controllers

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Link is a navigation or footer entry.
type Link struct {
	Name   string
	Href   string
	Active bool
}

// Site holds the chrome shared by every page.
type Site struct {
	Title       string
	Tagline     string
	Description string
	Blurb       string
	Author      string
	Social      []Link
}

// DefaultSite returns the stock portfolio chrome.
func DefaultSite() Site {
	return Site{
		Title:       "Portfolio",
		Tagline:     "Building reliable and modern digital solutions",
		Description: "I am an aspiring full-stack developer who enjoys building clean and functional web applications while continuously learning backend systems, data processing, and modern development technologies.",
		Blurb:       "Building the future of web with modern technologies and best practices.",
		Author:      "Your Name",
		Social: []Link{
			{Name: "GitHub", Href: "https://github.com/utiur"},
			{Name: "LinkedIn", Href: "https://linkedin.com/in/ZudaYudistira"},
			{Name: "Twitter", Href: "https://twitter.com/yourusername"},
			{Name: "Email", Href: "mailto:your.zudayudistiraa@gmail.com"},
		},
	}
}

var navLinks = []Link{
	{Name: "Home", Href: "/"},
	{Name: "Projects", Href: "/projects"},
	{Name: "Blog", Href: "/blog"},
}

// Footer is the page footer.
type Footer struct {
	QuickLinks []Link
	Social     []Link
	Year       int
}

// Page is the value every template is executed with.
type Page struct {
	Site   Site
	Nav    []Link
	Footer Footer
	Data   any
}

// NavFor returns the navigation links with the entry matching path marked active.
func NavFor(path string) []Link {
	links := make([]Link, len(navLinks))
	for i, l := range navLinks {
		l.Active = isActive(l.Href, path)
		links[i] = l
	}
	return links
}

func isActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// Page template names.
const (
	PageHome          = "home"
	PageProjectsIndex = "projects/index"
	PageProjectsShow  = "projects/show"
	PageBlogIndex     = "blog/index"
	PageBlogShow      = "blog/show"
	PageNotFound      = "not_found"
)

var pageFiles = map[string]string{
	PageHome:          "home/index.html",
	PageProjectsIndex: "projects/index.html",
	PageProjectsShow:  "projects/show.html",
	PageBlogIndex:     "blog/index.html",
	PageBlogShow:      "blog/show.html",
	PageNotFound:      "errors/not_found.html",
}

var funcs = template.FuncMap{
	"take": func(n int, s []string) []string {
		if n < len(s) {
			return s[:n]
		}
		return s
	},
	"join":      strings.Join,
	"isoDate":   func(t time.Time) string { return t.Format("2006-01-02") },
	"shortDate": func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"longDate":  func(t time.Time) string { return t.Format("January 2, 2006") },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
	"tagURL": tagURL,
}

func tagURL(text, tag string) string {
	v := url.Values{}
	if text != "" {
		v.Set("q", text)
	}
	if tag != "" {
		v.Set("tag", tag)
	}
	if len(v) == 0 {
		return "/projects"
	}
	return "/projects?" + v.Encode()
}

// LoadTemplates parses every page together with the layout and shared partials.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, "layout.html", "shared/*.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

// Renderer writes HTML pages and JSON documents.
type Renderer struct {
	site      Site
	templates map[string]*template.Template
	now       func() time.Time
}

// NewRenderer parses the templates in fsys.
func NewRenderer(fsys fs.FS, site Site) (*Renderer, error) {
	templates, err := LoadTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{site: site, templates: templates, now: time.Now}, nil
}

// wantsJSON reports whether the request asked for JSON.
func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

// render executes a page template into a buffer so that failures never
// leave a half-written response.
func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	tmpl, ok := rd.templates[name]
	if !ok {
		rd.sendError(w, r, "Template error: unknown page "+name, http.StatusInternalServerError)
		return
	}
	page := Page{
		Site: rd.site,
		Nav:  NavFor(r.URL.Path),
		Footer: Footer{
			QuickLinks: navLinks,
			Social:     rd.site.Social,
			Year:       rd.now().Year(),
		},
		Data: data,
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		rd.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeBody(w, r, status, "text/html; charset=utf-8", buf.Bytes())
}

func (rd *Renderer) sendJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		rd.sendError(w, r, "Encoding error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeBody(w, r, status, "application/json", append(body, '\n'))
}

func (rd *Renderer) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}

// notFound renders the not-found page, or a JSON error for API callers.
func (rd *Renderer) notFound(w http.ResponseWriter, r *http.Request, message, backHref, backLabel string) {
	if wantsJSON(r) {
		rd.sendError(w, r, message, http.StatusNotFound)
		return
	}
	rd.render(w, r, http.StatusNotFound, PageNotFound, notFoundData{
		Message:   message,
		BackHref:  backHref,
		BackLabel: backLabel,
	})
}

// NotFound handles requests that matched no route.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		rd.sendError(w, r, "Not found", http.StatusNotFound)
		return
	}
	rd.notFound(w, r, "Page not found", "/", "Back to Home")
}

type notFoundData struct {
	Message   string
	BackHref  string
	BackLabel string
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// writeBody writes a complete response. Successful GET and HEAD responses
// carry an ETag and honour If-None-Match.
func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if status == http.StatusOK && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		etag := ETag(body)
		w.Header().Set("ETag", etag)
		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(body)
	}
}
