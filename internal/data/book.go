// Package data provides the data models and storage logic for the library
// catalog.
package data

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aoideee/library-catalog/internal/validator"
)

// Book represents a single book record.
// It maps directly to a row in the "books" table.
type Book struct {
	ID     int64   `db:"id"`     // Unique identifier assigned by the store
	Title  string  `db:"title"`  // Title of the book, never blank
	Author string  `db:"author"` // Author of the book, never blank
	Genre  *string `db:"genre"`  // Optional genre, nil when unknown
	Year   *int32  `db:"year"`   // Optional publication year, nil when unknown
}

// GenreText returns the genre, or "" when it is unset.
func (b *Book) GenreText() string {
	if b.Genre == nil {
		return ""
	}
	return *b.Genre
}

// YearText returns the year formatted in base 10, or "" when it is unset.
func (b *Book) YearText() string {
	if b.Year == nil {
		return ""
	}
	return strconv.FormatInt(int64(*b.Year), 10)
}

// Input returns the stored values in form shape, for pre-filling the edit form.
func (b *Book) Input() BookInput {
	return BookInput{
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.GenreText(),
		Year:   b.YearText(),
	}
}

// BookInput holds the fields exactly as a client submitted them.
// Keeping them as text lets a rejected form be shown back unchanged,
// including a year that is not a number.
type BookInput struct {
	Title  string
	Author string
	Genre  string
	Year   string
}

// ValidateBook runs every field check against in. All failing fields are
// reported, in form order.
func ValidateBook(v *validator.Validator, in BookInput) {
	v.Check(validator.NotBlank(in.Title), "title", "Title is required")
	v.Check(validator.NotBlank(in.Author), "author", "Author is required")
	if validator.NotBlank(in.Year) {
		v.Check(validator.IsInt(in.Year), "year", "Year must be a whole number")
		v.Check(validator.IsInt32(in.Year), "year", "Year is out of range")
	}
}

// validate is the shared entry point the stores use before any write.
func validate(in BookInput) []validator.Violation {
	v := validator.New()
	ValidateBook(v, in)
	if v.Valid() {
		return nil
	}
	return v.Violations
}

// apply overwrites every mutable field of b from in. in must already have
// passed ValidateBook.
func (in BookInput) apply(b *Book) {
	b.Title = clean(in.Title)
	b.Author = clean(in.Author)
	b.Genre = nil
	if genre := clean(in.Genre); genre != "" {
		b.Genre = &genre
	}
	b.Year = nil
	if parsed, err := strconv.ParseInt(strings.TrimSpace(in.Year), 10, 32); err == nil {
		year := int32(parsed)
		b.Year = &year
	}
}

// clean trims s and folds it to NFC so visually identical titles are stored
// identically.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
