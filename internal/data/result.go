package data

import "github.com/aoideee/library-catalog/internal/validator"

// Kind tags the outcome of a store operation.
type Kind int

const (
	KindOK Kind = iota
	KindValidationFailure
	KindNotFound
	KindUnexpectedFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindValidationFailure:
		return "validation failure"
	case KindNotFound:
		return "not found"
	case KindUnexpectedFailure:
		return "unexpected failure"
	default:
		return "unknown"
	}
}

// Result is what a store write or lookup produced. Callers switch on Kind;
// the other fields are populated as follows:
//
//	KindOK                 Book is the stored record (nil after Delete)
//	KindValidationFailure  Violations is non-empty; Book is the untouched
//	                       stored record on Update, nil on Create
//	KindNotFound           nothing
//	KindUnexpectedFailure  Err is the cause
type Result struct {
	Kind       Kind
	Book       *Book
	Violations []validator.Violation
	Err        error
}

// OK wraps a successful outcome.
func OK(b *Book) Result {
	return Result{Kind: KindOK, Book: b}
}

// Invalid wraps a rejected write. current may be nil.
func Invalid(current *Book, violations []validator.Violation) Result {
	return Result{Kind: KindValidationFailure, Book: current, Violations: violations}
}

// NotFound reports that no record has the requested id.
func NotFound() Result {
	return Result{Kind: KindNotFound}
}

// Failed wraps an error the store could not handle.
func Failed(err error) Result {
	return Result{Kind: KindUnexpectedFailure, Err: err}
}
