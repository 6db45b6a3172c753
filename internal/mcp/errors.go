package mcp

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/views"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. It returns nil for errors
// the client cannot act on.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, todo.ErrInvalidInput), errors.Is(err, views.ErrInvalidQuery):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Fix the arguments and retry"}
	case errors.Is(err, todo.ErrTodoNotFound):
		return &APIError{Code: "TODO_NOT_FOUND", Message: "todo not found", RecoveryHint: "Call list_todos for valid IDs"}
	case errors.Is(err, todo.ErrMutationInFlight):
		return &APIError{Code: "MUTATION_IN_FLIGHT", Message: "todo is being changed by another request", RecoveryHint: "Wait for it to finish"}
	default:
		return nil
	}
}

// toolError converts a service error into the error a tool reports.
// Unmapped errors are logged and hidden behind a generic message.
func toolError(logger *slog.Logger, tool string, err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	logger.Error("tool failed", "tool", tool, "error", err)
	return &APIError{Code: "OPERATION_FAILED", Message: "operation failed"}
}
