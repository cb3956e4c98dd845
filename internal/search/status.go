package search

import (
	"errors"
	"fmt"
)

// FoundStatus describes a successful Find for the status line.
func FoundStatus(r FindResult, forward bool) string {
	if !r.Wrapped {
		return fmt.Sprintf("found match (%d/%d)", r.Count.Current, r.Count.Total)
	}
	if forward {
		return fmt.Sprintf("wrapped to start (%d/%d)", r.Count.Current, r.Count.Total)
	}
	return fmt.Sprintf("wrapped to end (%d/%d)", r.Count.Current, r.Count.Total)
}

// ReplacedStatus describes the outcome of a replace-all.
func ReplacedStatus(n int) string {
	if n == 1 {
		return "replaced 1 occurrence"
	}
	return fmt.Sprintf("replaced %d occurrences", n)
}

// ErrorStatus turns a search error into status text.
func ErrorStatus(err error) string {
	var perr *PatternError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return "enter text to find"
	case errors.As(err, &perr):
		return "invalid regular expression: " + perr.Err.Error()
	case errors.Is(err, ErrNotFound):
		return "no matches"
	case errors.Is(err, ErrNoMatch):
		return "selection does not match query"
	default:
		return "search failed: " + err.Error()
	}
}
