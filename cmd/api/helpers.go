// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/views"
)

// maxFormBytes caps the size of a submitted book form.
const maxFormBytes = 1_048_576

// idRX accepts only the canonical spelling of a positive id: digits, no sign,
// no leading zero.
var idRX = regexp.MustCompile(`^[1-9][0-9]*$`)

// readRawIDParam returns the ":id" URL parameter as given.
func (app *applicationDependencies) readRawIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// readIDParam extracts and validates the ":id" URL parameter added by httprouter.
// Returns an error if the value is missing, not in canonical form, or out of range.
func (app *applicationDependencies) readIDParam(r *http.Request) (int64, error) {
	raw := app.readRawIDParam(r)
	if !idRX.MatchString(raw) {
		return 0, errors.New("invalid id parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// readBookForm parses a url-encoded book form. Missing fields read as "".
func (app *applicationDependencies) readBookForm(w http.ResponseWriter, r *http.Request) (data.BookInput, error) {
	// Cap the request body to 1 MB to prevent large-payload attacks.
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if err := r.ParseForm(); err != nil {
		return data.BookInput{}, err
	}

	return data.BookInput{
		Title:  r.PostForm.Get("title"),
		Author: r.PostForm.Get("author"),
		Genre:  r.PostForm.Get("genre"),
		Year:   r.PostForm.Get("year"),
	}, nil
}

// render writes page through the view collaborator. A rendering failure is
// treated as a server error.
func (app *applicationDependencies) render(w http.ResponseWriter, r *http.Request, status int, page string, pd views.PageData) {
	if err := app.views.Render(w, status, page, pd); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func bookURL(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}
