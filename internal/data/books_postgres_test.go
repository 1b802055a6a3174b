package data

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoideee/library-catalog/internal/validator"
)

var bookColumns = []string{"id", "title", "author", "genre", "year"}

func newMockModel(t *testing.T) (BookModel, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBookModel(sqlx.NewDb(db, "sqlmock"), logger), mock
}

func TestBookModel_List(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" ORDER BY "id" ASC`).
		WillReturnRows(sqlmock.NewRows(bookColumns).
			AddRow(1, "Dune", "Herbert", nil, nil).
			AddRow(2, "Emma", "Austen", "Romance", 1815))

	books, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, &Book{ID: 1, Title: "Dune", Author: "Herbert"}, books[0])
	assert.Equal(t, "Romance", books[1].GenreText())
	assert.Equal(t, "1815", books[1].YearText())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_ListError(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books"`).
		WillReturnError(errors.New("connection refused"))

	_, err := m.List(context.Background())
	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_Get(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(1, "Dune", "Herbert", "SF", 1965))

	res := m.Get(context.Background(), 1)
	require.Equal(t, KindOK, res.Kind)
	assert.Equal(t, "Dune", res.Book.Title)
	assert.Equal(t, "SF", res.Book.GenreText())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_GetNotFound(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookColumns))

	assert.Equal(t, KindNotFound, m.Get(context.Background(), 9).Kind)
	// Non-positive ids never reach the database.
	assert.Equal(t, KindNotFound, m.Get(context.Background(), 0).Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_GetUnexpectedFailure(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books"`).
		WillReturnError(errors.New("connection reset"))

	res := m.Get(context.Background(), 1)
	require.Equal(t, KindUnexpectedFailure, res.Kind)
	assert.ErrorContains(t, res.Err, "connection reset")
}

func TestBookModel_Create(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`INSERT INTO "books" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	res := m.Create(context.Background(), BookInput{Title: " Dune ", Author: "Herbert"})
	require.Equal(t, KindOK, res.Kind)
	assert.Equal(t, &Book{ID: 7, Title: "Dune", Author: "Herbert"}, res.Book)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_CreateInvalidSkipsDatabase(t *testing.T) {
	m, mock := newMockModel(t)

	res := m.Create(context.Background(), BookInput{Title: "Dune"})

	require.Equal(t, KindValidationFailure, res.Kind)
	assert.Equal(t, []validator.Violation{{Field: "author", Message: "Author is required"}}, res.Violations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_CreateYearOutOfRangeSkipsDatabase(t *testing.T) {
	m, mock := newMockModel(t)

	res := m.Create(context.Background(), BookInput{Title: "Dune", Author: "Herbert", Year: "3000000000"})

	require.Equal(t, KindValidationFailure, res.Kind)
	assert.Equal(t, []validator.Violation{{Field: "year", Message: "Year is out of range"}}, res.Violations)
	// No INSERT was expected, so any write would have failed the mock.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_Update(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(1, "Dune", "Herbert", nil, nil))
	mock.ExpectExec(`UPDATE "books" SET (.+) WHERE .*"id" = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := m.Update(context.Background(), 1, BookInput{Title: "Dune Messiah", Author: "Herbert", Year: "1969"})
	require.Equal(t, KindOK, res.Kind)
	assert.Equal(t, int64(1), res.Book.ID)
	assert.Equal(t, "Dune Messiah", res.Book.Title)
	assert.Equal(t, "1969", res.Book.YearText())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_UpdateInvalidLeavesRowAlone(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(1, "Dune", "Herbert", nil, nil))

	res := m.Update(context.Background(), 1, BookInput{Title: "", Author: "Herbert"})

	require.Equal(t, KindValidationFailure, res.Kind)
	assert.Equal(t, &Book{ID: 1, Title: "Dune", Author: "Herbert"}, res.Book)
	assert.Equal(t, []validator.Violation{{Field: "title", Message: "Title is required"}}, res.Violations)
	// No UPDATE was expected, so any write would have failed the mock.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_UpdateNotFound(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(bookColumns))

	res := m.Update(context.Background(), 4, BookInput{})
	assert.Equal(t, KindNotFound, res.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_UpdateRowVanished(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectQuery(`SELECT (.+) FROM "books"`).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(1, "Dune", "Herbert", nil, nil))
	mock.ExpectExec(`UPDATE "books"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	res := m.Update(context.Background(), 1, BookInput{Title: "Dune", Author: "Herbert"})
	assert.Equal(t, KindNotFound, res.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_Delete(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectExec(`DELETE FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "books" WHERE .*"id" = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Equal(t, KindOK, m.Delete(context.Background(), 3).Kind)
	assert.Equal(t, KindNotFound, m.Delete(context.Background(), 3).Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookModel_DeleteUnexpectedFailure(t *testing.T) {
	m, mock := newMockModel(t)

	mock.ExpectExec(`DELETE FROM "books"`).
		WillReturnError(errors.New("disk full"))

	res := m.Delete(context.Background(), 3)
	require.Equal(t, KindUnexpectedFailure, res.Kind)
	assert.ErrorContains(t, res.Err, "disk full")
}
