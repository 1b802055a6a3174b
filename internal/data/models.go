// internal/data/models.go
package data

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// BookStore is the record store the HTTP layer talks to. It exclusively owns
// the book collection; callers only ever change records through it.
type BookStore interface {
	List(ctx context.Context) ([]*Book, error)
	Get(ctx context.Context, id int64) Result
	Create(ctx context.Context, in BookInput) Result
	Update(ctx context.Context, id int64, in BookInput) Result
	Delete(ctx context.Context, id int64) Result
}

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler has access to storage without importing sql directly.
type Models struct {
	Books BookStore // Book records, backed by PostgreSQL or memory
}

// NewModels constructs a Models value wired up to the given database pool.
// Call this once during application startup and store the result in
// applicationDependencies.
func NewModels(db *sqlx.DB, logger *slog.Logger) Models {
	return Models{
		Books: NewBookModel(db, logger),
	}
}

// NewMemoryModels constructs a Models value that keeps everything in process
// memory. Data is lost when the process exits.
func NewMemoryModels() Models {
	return Models{
		Books: NewMemoryStore(),
	}
}

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")
