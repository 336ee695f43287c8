package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matched the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrUniqueConstraint is returned when a write collides with a unique column.
	ErrUniqueConstraint = errors.New("unique constraint violated")
	// ErrEmptyUpdate is returned when a partial update carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrUnknownDepartment is returned when department_id references no department.
	ErrUnknownDepartment = errors.New("department does not exist")
)

// StoreError wraps an underlying query or connection failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
