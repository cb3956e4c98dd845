package search

import "errors"

// FindResult is a located match together with its position among all
// matches of the query.
type FindResult struct {
	Match
	// Wrapped is set when the match was found only after restarting the scan
	// from the opposite end of the text.
	Wrapped bool
	Count   MatchCount
}

// Find moves from the current selection to the next (or previous) match,
// wrapping around the text once.
//
// A forward search starts just past the selection and a backward search just
// before it. Starting offsets outside the text are folded to the opposite end,
// which counts as wrapping. An empty selection sitting on an empty regex match
// moves on to the following match so repeated calls make progress.
func Find(text string, q Query, selStart, selLength int, forward bool) (FindResult, error) {
	if q.Pattern == "" {
		return FindResult{}, ErrEmptyQuery
	}
	n := len([]rune(text))
	from := selStart - 1
	if forward {
		from = selStart + selLength
	}
	m, wrapped, err := locateWrapped(text, q, from, n, forward)
	if err == nil && selLength == 0 && m.Length == 0 && m.Start == selStart {
		// An empty match at the caret would be found again on every call.
		if next, w, err := stepEmpty(text, q, selStart, n, forward); err == nil {
			m, wrapped = next, wrapped || w
		}
	}
	if err != nil {
		return FindResult{}, err
	}
	return FindResult{
		Match:   m,
		Wrapped: wrapped,
		Count:   Count(text, q, m.Start),
	}, nil
}

// locateWrapped runs Locate from from, folding offsets outside the text to
// the opposite end and retrying from there once when nothing is found.
func locateWrapped(text string, q Query, from, n int, forward bool) (Match, bool, error) {
	wrapped := false
	if from < 0 {
		from = n - 1
		wrapped = !forward
	}
	if from >= n {
		from = 0
		wrapped = forward
	}
	m, err := Locate(text, q, from, forward)
	if errors.Is(err, ErrNotFound) && !wrapped {
		wrapped = true
		from = 0
		if !forward {
			from = n - 1
		}
		m, err = Locate(text, q, from, forward)
	}
	return m, wrapped, err
}

// stepEmpty finds the match after (or before) the empty match at caret.
func stepEmpty(text string, q Query, caret, n int, forward bool) (Match, bool, error) {
	if forward {
		return locateWrapped(text, q, caret+1, n, true)
	}
	m, err := locateBefore(text, q, caret)
	if errors.Is(err, ErrNotFound) {
		m, err = Locate(text, q, n-1, false)
		return m, true, err
	}
	return m, false, err
}

// ReplaceNext replaces the selection and then finds the following match from
// the end of the inserted text.
//
// When the replacement succeeds but no further match exists, the Replacement
// is returned together with ErrNotFound.
func ReplaceNext(text string, selStart, selLength int, q Query, replacement string) (Replacement, FindResult, error) {
	rep, err := ReplaceOne(text, selStart, selLength, q, replacement)
	if err != nil {
		return Replacement{}, FindResult{}, err
	}
	next, err := Find(rep.Text, q, rep.Selection.Start, rep.Selection.Length, true)
	if err != nil {
		return rep, FindResult{}, err
	}
	return rep, next, nil
}
