package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an update or lookup targets an id with no row.
	ErrNotFound = errors.New("product not found")
	// ErrNoProducts is returned by exports when the store is empty.
	ErrNoProducts = errors.New("no products to export")
	// ErrTotalOverflow is returned when the quantity sum does not fit in an int64.
	ErrTotalOverflow = errors.New("total quantity is too large")
)

// ValidationError describes the first invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
