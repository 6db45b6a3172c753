package todo

import "errors"

var (
	// ErrTodoNotFound indicates the todo doesn't exist for the user.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrInvalidInput indicates invalid todo input.
	ErrInvalidInput = errors.New("invalid todo input")
	// ErrMutationInFlight indicates another mutation of the same todo is running.
	ErrMutationInFlight = errors.New("todo mutation already in flight")
)
