package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

const (
	PAGE_HOME   = "home"
	PAGE_TABLE  = "table"
	PAGE_TABLE2 = "table2"

	layoutFile = "layout.html"
	errorFile  = "error.html"
)

var ErrPageNotFound = errors.New("page not found")

var knownPages = map[string]bool{
	PAGE_HOME:   true,
	PAGE_TABLE:  true,
	PAGE_TABLE2: true,
}

// ErrorData is passed to the error page.
type ErrorData struct {
	Code    int
	Message string
	Detail  string
}

// Pages resolves page identifiers to rendered templ components.
// Without a template directory the embedded templates are parsed once.
// With a template directory and reload enabled they are parsed from disk on every call.
type Pages struct {
	templateFS fs.FS
	reload     bool
	templates  map[string]*template.Template
}

// NewPages parses all page templates. An empty templateDir uses the embedded templates.
func NewPages(templateDir string, reload bool) (*Pages, error) {
	var templateFS fs.FS
	if templateDir != "" {
		templateFS = os.DirFS(templateDir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, err
		}
		templateFS = sub
		reload = false
	}

	pages := &Pages{
		templateFS: templateFS,
		reload:     reload,
		templates:  map[string]*template.Template{},
	}

	// Parse eagerly so broken templates fail at startup even with reload enabled.
	for name := range knownPages {
		t, err := pages.parse(name + ".html")
		if err != nil {
			return nil, err
		}
		pages.templates[name] = t
	}
	t, err := pages.parse(errorFile)
	if err != nil {
		return nil, err
	}
	pages.templates[errorFile] = t

	return pages, nil
}

func (p *Pages) parse(file string) (*template.Template, error) {
	t, err := template.ParseFS(p.templateFS, layoutFile, file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
	}
	return t, nil
}

func (p *Pages) lookup(key string, file string) (*template.Template, error) {
	if p.reload {
		return p.parse(file)
	}
	return p.templates[key], nil
}

// Page returns the static page with the given identifier.
func (p *Pages) Page(name string) (templ.Component, error) {
	if !knownPages[name] {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
	}

	t, err := p.lookup(name, name+".html")
	if err != nil {
		return nil, err
	}
	return templ.FromGoHTML(t, nil), nil
}

// ErrorPage returns the error page for a failed request.
func (p *Pages) ErrorPage(data ErrorData) (templ.Component, error) {
	t, err := p.lookup(errorFile, errorFile)
	if err != nil {
		return nil, err
	}
	return templ.FromGoHTML(t, data), nil
}

// StaticFS returns the embedded static assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic("failed to create embedded static filesystem: " + err.Error())
	}
	return sub
}
