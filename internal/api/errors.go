package api

import (
	"errors"
	"fmt"
)

// FallbackMessage is shown when the backend gave no structured error
const FallbackMessage = "An unexpected error occurred"

// ErrUnauthorized is returned after a 401; the session has already been
// cleared and the OnUnauthorized callback fired by the time callers see it.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a structured rejection from the backend
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Message extracts the user-facing text for an error: the server-supplied
// message when there is one, the generic fallback for transport failures.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}
