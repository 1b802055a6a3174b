// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger, the record store, and the page renderer.
package main

import (
	"net/http"

	"github.com/aoideee/library-catalog/internal/data"
	"github.com/aoideee/library-catalog/internal/views"
)

const catalogTitle = "SQL Library!"

// homeHandler handles GET /. The catalog lives under /books.
func (app *applicationDependencies) homeHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/books", http.StatusFound)
}

// listBooksHandler handles GET /books.
// It fetches every book and renders the index page.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.models.Books.List(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, views.PageIndex, views.PageData{
		Title: catalogTitle,
		Books: books,
	})
}

// newBookHandler handles GET /books/new with an empty form.
func (app *applicationDependencies) newBookHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, views.PageNew, views.PageData{
		Title: "New Book",
	})
}

// createBookHandler handles POST /books.
// On success it redirects to the list. A rejected form is shown again with
// the submitted values and one message per failing field.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	input, err := app.readBookForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res := app.models.Books.Create(r.Context(), input)
	switch res.Kind {
	case data.KindOK:
		app.logger.Info("book created", "book_id", res.Book.ID)
		http.Redirect(w, r, "/books", http.StatusFound)
	case data.KindValidationFailure:
		app.render(w, r, http.StatusOK, views.PageNew, views.PageData{
			Title:      "New Book",
			Form:       input,
			Violations: res.Violations,
		})
	default:
		app.storeFailureResponse(w, r, res)
	}
}

// bookPageHandler handles GET /books/:id, where the segment may also be the
// literal "new".
func (app *applicationDependencies) bookPageHandler(w http.ResponseWriter, r *http.Request) {
	if app.readRawIDParam(r) == "new" {
		app.newBookHandler(w, r)
		return
	}
	app.showBookHandler(w, r)
}

// showBookHandler renders a single book. A missing book is forwarded to the
// error page as "Book Not Found".
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	book, ok := app.fetchBook(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, views.PageShow, views.PageData{
		Title: book.Title,
		Book:  book,
	})
}

// editBookHandler handles GET /books/:id/edit with the form pre-filled from
// the stored record.
func (app *applicationDependencies) editBookHandler(w http.ResponseWriter, r *http.Request) {
	book, ok := app.fetchBook(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, views.PageEdit, views.PageData{
		Title: "Edit Book",
		Book:  book,
		Form:  book.Input(),
	})
}

// updateBookHandler handles POST /books/:id.
// Every field is replaced from the form. On success it redirects to the
// book's page; a rejected form is shown again and the record is unchanged.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r)
		return
	}

	input, err := app.readBookForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res := app.models.Books.Update(r.Context(), id, input)
	switch res.Kind {
	case data.KindOK:
		app.logger.Info("book updated", "book_id", id)
		http.Redirect(w, r, bookURL(id), http.StatusFound)
	case data.KindValidationFailure:
		app.render(w, r, http.StatusOK, views.PageEdit, views.PageData{
			Title:      "Edit Book",
			Book:       res.Book,
			Form:       input,
			Violations: res.Violations,
		})
	default:
		app.storeFailureResponse(w, r, res)
	}
}

// confirmDeleteBookHandler handles GET /books/:id/delete.
func (app *applicationDependencies) confirmDeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	book, ok := app.fetchBook(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, views.PageDelete, views.PageData{
		Title: "Delete Book",
		Book:  book,
	})
}

// deleteBookHandler handles POST /books/:id/delete and redirects to the list.
// Deleting a book that does not exist is reported as "Book Not Found".
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r)
		return
	}

	res := app.models.Books.Delete(r.Context(), id)
	if res.Kind != data.KindOK {
		app.storeFailureResponse(w, r, res)
		return
	}

	app.logger.Info("book deleted", "book_id", id)
	http.Redirect(w, r, "/books", http.StatusFound)
}

// fetchBook loads the book named by the :id parameter. When it returns false
// a response has already been written.
func (app *applicationDependencies) fetchBook(w http.ResponseWriter, r *http.Request) (*data.Book, bool) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.bookNotFoundResponse(w, r)
		return nil, false
	}

	res := app.models.Books.Get(r.Context(), id)
	if res.Kind != data.KindOK {
		app.storeFailureResponse(w, r, res)
		return nil, false
	}
	return res.Book, true
}
