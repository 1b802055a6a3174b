// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	requestID → logRequest → recoverPanic → rateLimit → router
//
// Current endpoints:
//
//	GET    /                   – redirect to /books
//	GET    /books              – list all books
//	GET    /books/new          – new book form
//	POST   /books              – create a book
//	GET    /books/:id          – show one book
//	POST   /books/:id          – update a book
//	GET    /books/:id/edit     – edit form
//	GET    /books/:id/delete   – delete confirmation
//	POST   /books/:id/delete   – delete a book
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to render error pages.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)

	// /books/new shares its position with :id, which httprouter cannot
	// register separately; bookPageHandler dispatches it.
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.bookPageHandler)
	router.HandlerFunc(http.MethodPost, "/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id/edit", app.editBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id/delete", app.confirmDeleteBookHandler)
	router.HandlerFunc(http.MethodPost, "/books/:id/delete", app.deleteBookHandler)

	// recoverPanic sits inside logRequest so a recovered panic is still
	// logged with its 500 status.
	return app.requestID(app.logRequest(app.recoverPanic(app.rateLimit(router))))
}
