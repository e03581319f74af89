package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique field collides with an existing record.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidReference is returned when a retailer refers to a soda that does not exist.
	ErrInvalidReference = errors.New("invalid soda reference")

	// ErrInvalidInput is returned when a field fails validation beyond what request binding checks.
	ErrInvalidInput = errors.New("invalid input")
)

// ConflictError reports which unique field of which record collided.
// It matches ErrDuplicate with errors.Is.
type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrDuplicate
}
