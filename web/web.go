// Package web embeds the host page used by the dev server.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed index.html.tmpl static
var files embed.FS

// Page is the data the host page template needs.
type Page struct {
	ContainerID string
	Endpoint    string
	// Region is pre-rendered markup for the widget region so the page shows
	// the loading state before the WASM module starts.
	Region template.HTML
}

// IndexTemplate parses the host page template.
func IndexTemplate() (*template.Template, error) {
	return template.ParseFS(files, "index.html.tmpl")
}

// Static returns the stylesheet and loader script directory.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
