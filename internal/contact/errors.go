package contact

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedBody is returned when a request body cannot be parsed
	// under its declared (or fallback) content type.
	ErrMalformedBody = errors.New("contact: malformed request body")

	// ErrNotFound is returned when no submission exists for an email.
	ErrNotFound = errors.New("contact: submission not found")
)

// ValidationError reports every required field that was missing or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
