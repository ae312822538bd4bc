package planner

import (
	"fmt"
	"strings"
)

// ParseError reports a persisted or imported blob that is not valid JSON.
// It is always recoverable: the store falls back to a default document,
// and an import is aborted leaving the prior document untouched.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("cannot parse document: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports well-formed JSON that is missing one of the required
// top-level collections (sections, guests, budgetItems).
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("document is missing required collections: %s", strings.Join(e.Missing, ", "))
}

// NotFoundError reports a mutation that targets an id absent from the
// document. Most operations treat a missing target as a silent no-op
// instead; only operations that create a child record (like adding a task
// to a section) surface this error.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

// ValidationError reports invalid user input (blank required field,
// non-positive required amount). The document is never touched when a
// validation error is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
