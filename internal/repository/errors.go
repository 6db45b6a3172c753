// Package repository holds the errors every storage backend reports.
// Domain services translate them into their own sentinel errors.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row doesn't exist for the user.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique constraint fails.
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrForeignKeyViolation is returned when a referenced user or todo is missing.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
