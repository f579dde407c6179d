package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageNames = []string{"home", "about", "services", "service", "portfolio", "contact"}

// Templates holds one parsed set per page, each sharing the layout and partials.
type Templates struct {
	pages    map[string]*template.Template
	renderer *Renderer
}

// ParseTemplates parses the embedded layout, partials and pages.
func ParseTemplates(r *Renderer) (*Templates, error) {
	funcs := template.FuncMap{
		"markdown": r.Markdown,
		"inline":   r.Inline,
		"lines":    r.Lines,
	}

	root, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/base.tmpl", "templates/partials.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	t := &Templates{pages: make(map[string]*template.Template, len(pageNames)), renderer: r}
	for _, name := range pageNames {
		clone, err := root.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		page, err := clone.ParseFS(templateFS, "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		t.pages[name] = page
	}
	return t, nil
}

// Execute renders the named page through the base layout.
func (t *Templates) Execute(w io.Writer, name string, data *Page) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "base", data)
}
