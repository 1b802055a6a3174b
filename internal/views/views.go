// Package views renders the catalog's HTML pages. Templates are embedded in
// the binary; each page is parsed together with the shared layout and form
// partial so pages can be rendered by name.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/validator"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page names understood by Render.
const (
	PageIndex  = "index"
	PageNew    = "new"
	PageEdit   = "edit"
	PageShow   = "show"
	PageDelete = "delete"
	PageError  = "error"
)

var pages = []string{PageIndex, PageNew, PageEdit, PageShow, PageDelete, PageError}

// PageData is the data context handed to every template.
type PageData struct {
	Title      string                // Document and heading title
	Books      []*data.Book          // index
	Book       *data.Book            // show, edit, delete
	Form       data.BookInput        // new, edit: values shown in the inputs
	Violations []validator.Violation // new, edit: rejected fields
	Status     int                   // error
	Message    string                // error
}

// FieldError returns the message for field, or "".
func (d PageData) FieldError(field string) string {
	return validator.FieldErrors(d.Violations)[field]
}

// Templates holds one parsed template set per page.
type Templates struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout.
func New() (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		ts, err := template.New(page).ParseFS(templateFS,
			"templates/base.tmpl",
			"templates/form.tmpl",
			"templates/"+page+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		t.pages[page] = ts
	}
	return t, nil
}

// Render executes page into a buffer first so a template error never leaves a
// half-written response, then writes status and the body.
func (t *Templates) Render(w http.ResponseWriter, status int, page string, pd PageData) error {
	ts, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("the template %s does not exist", page)
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", pd); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
