// Package web renders the rivalry page and serves its embedded assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/Masterminds/sprig/v3"

	"github.com/preston-bernstein/rivalry-service/internal/excuses"
)

//go:embed tpl/*.tmpl tpl/pages/*.tmpl
var tplFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	PageLoading = "loading"
	PageError   = "error"
	PageReady   = "ready"
)

var pageNames = []string{PageLoading, PageError, PageReady}

// Renderer executes the page templates. Templates are parsed once at construction.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page against the shared layout.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"shareText": excuses.ShareText,
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t := template.New("root").Funcs(sprig.FuncMap()).Funcs(funcs)
		if _, err := t.ParseFS(tplFS, "tpl/base.tmpl"); err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(tplFS, path.Join("tpl/pages", name+".tmpl")); err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, name, data)
}

// Assets returns the embedded css/js file system rooted at its top directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
