package domain

import "errors"

var (
	// ErrNotFound indicates a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates an operation would violate a structural
	// invariant, e.g. deleting a project's last status while tasks still
	// reference it.
	ErrConstraint = errors.New("constraint violation")

	// ErrValidation indicates bad input caught before any store call.
	ErrValidation = errors.New("validation failed")
)
