package platewise

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when an operation is attempted before
	// Initialize has completed.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrClosed is returned when an operation is attempted after Close.
	ErrClosed = errors.New("store closed")

	// ErrCollectionNotFound is returned when a collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrDocumentNotFound is returned when a document ID does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidCollectionName is returned when a collection name is empty
	// or whitespace.
	ErrInvalidCollectionName = errors.New("invalid collection name")

	// ErrInvalidQuery is returned when a search query is malformed.
	ErrInvalidQuery = errors.New("invalid query")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
