package search

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when the query pattern is empty.
	ErrEmptyQuery = errors.New("search: empty query")
	// ErrInvalidPattern is matched by every *PatternError.
	ErrInvalidPattern = errors.New("search: invalid pattern")
	// ErrNotFound is returned when a bounded scan reaches the edge of the text.
	ErrNotFound = errors.New("search: not found")
	// ErrNoMatch is returned when a selection does not satisfy the query.
	ErrNoMatch = errors.New("search: selection does not match query")
)

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("search: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}
