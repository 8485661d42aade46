// Package views embeds the HTML templates and static assets.
package views

import (
	"embed"
	"io/fs"
)

//go:embed layout.html shared home projects blog errors
var templates embed.FS

//go:embed static
var static embed.FS

// Templates returns the template tree rooted at the views directory.
func Templates() fs.FS {
	return templates
}

// Static returns the static asset tree, rooted so that "site.css" resolves.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("views: static assets missing: " + err.Error())
	}
	return sub
}
