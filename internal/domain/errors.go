package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
)

// excerptLimit bounds the raw-text excerpt attached to parse failures.
const excerptLimit = 200

// MalformedOutputError reports model output that could not be recovered
// into the requested structure. Excerpt is a bounded slice of the raw
// text for diagnostics.
type MalformedOutputError struct {
	Excerpt string
	Err     error
}

// NewMalformedOutputError builds a MalformedOutputError from the full raw
// model output, truncating the excerpt.
func NewMalformedOutputError(raw string, err error) *MalformedOutputError {
	excerpt := raw
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	return &MalformedOutputError{Excerpt: excerpt, Err: err}
}

func (e *MalformedOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed structured output: %v (excerpt: %q)", e.Err, e.Excerpt)
	}
	return fmt.Sprintf("malformed structured output (excerpt: %q)", e.Excerpt)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// MindMapValidationError reports a mind map whose node graph does not
// resolve: a missing root, a dangling child reference, or a cycle.
type MindMapValidationError struct {
	Reason string
	NodeID string
	Child  string
}

func (e *MindMapValidationError) Error() string {
	msg := "mind map validation failed: " + e.Reason
	if e.NodeID != "" {
		msg += fmt.Sprintf(" (node %q", e.NodeID)
		if e.Child != "" {
			msg += fmt.Sprintf(", child %q", e.Child)
		}
		msg += ")"
	}
	return msg
}
