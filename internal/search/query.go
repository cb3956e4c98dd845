// Package search implements find, count and replace over editor text.
//
// All offsets and lengths are rune offsets into the text. Every function is a
// pure function of its arguments; callers own the buffer and the selection.
package search

import "time"

// Query describes what to look for and how.
type Query struct {
	Pattern       string
	CaseSensitive bool
	// WholeWord rejects matches touching a letter or digit on either side.
	// It applies in both literal and regex mode.
	WholeWord bool
	Regex     bool
	// Timeout bounds a single regex scan. Zero means no limit.
	Timeout time.Duration
}

// Match is a located occurrence.
type Match struct {
	Start  int
	Length int
}

// End returns the offset just past the match.
func (m Match) End() int {
	return m.Start + m.Length
}

// MatchCount is the number of matches in a text and the 1-based ordinal of
// the last match starting at or before a reference offset (0 if none).
type MatchCount struct {
	Total   int
	Current int
}
