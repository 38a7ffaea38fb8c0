// Package web renders the server-side pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var assets embed.FS

const (
	layoutFile  = "templates/layout.html"
	partialGlob = "templates/partials/*.html"
	pageGlob    = "templates/pages/*.html"

	// PageNotFound is used whenever a handler asks for an unknown template.
	PageNotFound = "not_found"
)

// Renderer implements gin's render.HTMLRender with one template set per page,
// each built from the shared layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcMap()).ParseFS(assets, layoutFile, partialGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(assets, pageGlob)
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.Must(base.Clone()).ParseFS(assets, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	if _, ok := r.pages[PageNotFound]; !ok {
		return nil, fmt.Errorf("page %q is missing", PageNotFound)
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	if !r.Has(name) {
		name = PageNotFound
	}
	return render.HTML{Template: r.pages[name], Name: "layout", Data: data}
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Static serves the stylesheet and other bundled assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
