package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Register the postgres SQL dialect.
	"github.com/jmoiron/sqlx"
)

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"
	colID           = "id"
	colTitle        = "title"
	colAuthor       = "author"
	colGenre        = "genre"
	colYear         = "year"
)

// BookModel stores books in PostgreSQL. Statements are built with goqu in
// prepared mode ($N placeholders) and executed through sqlx so rows scan
// straight into Book via its db tags.
type BookModel struct {
	DB      *sqlx.DB     // Shared database connection pool
	logger  *slog.Logger // Optional; receives built SQL at debug level
	dialect goqu.DialectWrapper
}

// NewBookModel returns a BookModel on db. logger may be nil.
func NewBookModel(db *sqlx.DB, logger *slog.Logger) BookModel {
	return BookModel{
		DB:      db,
		logger:  logger,
		dialect: goqu.Dialect(dialectPostgres),
	}
}

// List returns every book ordered by id, which is insertion order.
func (m BookModel) List(ctx context.Context) ([]*Book, error) {
	query, args, err := m.dialect.
		From(tableBooks).
		Select(colID, colTitle, colAuthor, colGenre, colYear).
		Order(goqu.I(colID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	m.logQuery("list", query)

	books := []*Book{}
	if err := m.DB.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Get retrieves a single book by its primary key.
func (m BookModel) Get(ctx context.Context, id int64) Result {
	book, err := m.get(ctx, id)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NotFound()
	case err != nil:
		return Failed(err)
	}
	return OK(book)
}

// Create validates in and, if it passes, inserts a new row. The
// database-assigned id is written back into the returned book.
func (m BookModel) Create(ctx context.Context, in BookInput) Result {
	if violations := validate(in); violations != nil {
		return Invalid(nil, violations)
	}

	var book Book
	in.apply(&book)

	query, args, err := m.dialect.
		Insert(tableBooks).
		Cols(colTitle, colAuthor, colGenre, colYear).
		Vals(goqu.Vals{book.Title, book.Author, book.Genre, book.Year}).
		Returning(colID).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Failed(fmt.Errorf("build insert query: %w", err))
	}
	m.logQuery("create", query)

	if err := m.DB.QueryRowxContext(ctx, query, args...).Scan(&book.ID); err != nil {
		return Failed(fmt.Errorf("insert book: %w", err))
	}
	return OK(&book)
}

// Update replaces every mutable field of the book with the given id.
// A missing id is reported before validation runs; a failed validation
// leaves the row untouched and returns it alongside the violations.
func (m BookModel) Update(ctx context.Context, id int64, in BookInput) Result {
	current, err := m.get(ctx, id)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NotFound()
	case err != nil:
		return Failed(err)
	}

	if violations := validate(in); violations != nil {
		return Invalid(current, violations)
	}

	updated := Book{ID: current.ID}
	in.apply(&updated)

	query, args, err := m.dialect.
		Update(tableBooks).
		Set(goqu.Record{
			colTitle:  updated.Title,
			colAuthor: updated.Author,
			colGenre:  updated.Genre,
			colYear:   updated.Year,
		}).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Failed(fmt.Errorf("build update query: %w", err))
	}
	m.logQuery("update", query)

	result, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return Failed(fmt.Errorf("update book %d: %w", id, err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return Failed(fmt.Errorf("update book %d: %w", id, err))
	}
	// Deleted by someone else between the lookup and the write.
	if rowsAffected == 0 {
		return NotFound()
	}
	return OK(&updated)
}

// Delete removes the book with the given id.
func (m BookModel) Delete(ctx context.Context, id int64) Result {
	// Guard against obviously bad IDs before touching the database.
	if id < 1 {
		return NotFound()
	}

	query, args, err := m.dialect.
		Delete(tableBooks).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Failed(fmt.Errorf("build delete query: %w", err))
	}
	m.logQuery("delete", query)

	result, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return Failed(fmt.Errorf("delete book %d: %w", id, err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return Failed(fmt.Errorf("delete book %d: %w", id, err))
	}
	if rowsAffected == 0 {
		return NotFound()
	}
	return OK(nil)
}

// get loads one row, mapping sql.ErrNoRows to ErrRecordNotFound.
func (m BookModel) get(ctx context.Context, id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query, args, err := m.dialect.
		From(tableBooks).
		Select(colID, colTitle, colAuthor, colGenre, colYear).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	m.logQuery("get", query)

	var book Book
	if err := m.DB.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

func (m BookModel) logQuery(operation, query string) {
	if m.logger != nil {
		m.logger.Debug("executing sql", "operation", operation, "query", query)
	}
}
