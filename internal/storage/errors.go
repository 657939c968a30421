package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update or delete matches no row, usually
// because the row was removed after the option list was fetched.
var ErrNotFound = errors.New("record not found")

// ErrAlreadySeeded is returned by Seed when the database already holds departments.
var ErrAlreadySeeded = errors.New("database already contains data")

// StorageError reports a failed storage operation: a connectivity problem or a
// constraint violation raised by the database.
type StorageError struct {
	// Op names the operation, e.g. "add role".
	Op string
	// Err is the underlying driver error.
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is, or wraps, a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
