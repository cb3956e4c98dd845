package search

import "github.com/dlclark/regexp2"

// Locate finds the next occurrence of q in text starting at from.
//
// Forward search returns the first match starting at or after from. Backward
// search returns the last match lying entirely inside text[:from+1]. Locate
// never wraps: when the scan reaches the edge of the text it returns
// ErrNotFound and the caller decides whether to retry from the other end.
func Locate(text string, q Query, from int, forward bool) (Match, error) {
	if q.Pattern == "" {
		return Match{}, ErrEmptyQuery
	}
	runes := []rune(text)
	if q.Regex {
		return locateRegex(runes, q, from, forward)
	}
	i := literalIndex(runes, q, from, forward)
	if i < 0 {
		return Match{}, ErrNotFound
	}
	return Match{Start: i, Length: len([]rune(q.Pattern))}, nil
}

// literalIndex returns the start of the located literal match, or -1.
func literalIndex(text []rune, q Query, from int, forward bool) int {
	if from < 0 || from > len(text) || (!forward && from == len(text)) {
		return -1
	}
	lit := newLiteral(q)
	n := len(lit.pat)
	cur := from
	for {
		var i int
		if forward {
			i = lit.index(text, cur)
		} else {
			i = lit.lastIndex(text, cur+1)
		}
		if i < 0 {
			return -1
		}
		if !q.WholeWord || isWholeWord(text, i, i+n) {
			return i
		}
		if forward {
			cur = i + 1
		} else {
			cur = i - 1
		}
		if cur < 0 || cur >= len(text) {
			return -1
		}
	}
}

func locateRegex(text []rune, q Query, from int, forward bool) (Match, error) {
	re, err := compile(q)
	if err != nil {
		return Match{}, err
	}
	if forward {
		if from < 0 || from > len(text) {
			return Match{}, ErrNotFound
		}
		m, err := re.FindRunesMatchStartingAt(text, from)
		if err != nil {
			return Match{}, err
		}
		if m == nil {
			return Match{}, ErrNotFound
		}
		return Match{Start: m.Index, Length: m.Length}, nil
	}

	if from < 0 || from >= len(text) {
		return Match{}, ErrNotFound
	}
	return lastRegex(text, re, q, from+1, false)
}

// locateBefore returns the last regex match in text[:end] that starts before
// end.
func locateBefore(text string, q Query, end int) (Match, error) {
	runes := []rune(text)
	if end <= 0 || end > len(runes) {
		return Match{}, ErrNotFound
	}
	re, err := compile(q)
	if err != nil {
		return Match{}, err
	}
	return lastRegex(runes, re, q, end, true)
}

// lastRegex returns the last match of re inside text[:end]. With before set,
// matches starting at end are skipped.
func lastRegex(text []rune, re *regexp2.Regexp, q Query, end int, before bool) (Match, error) {
	matches, err := regexMatches(re, text[:end])
	if err != nil {
		return Match{}, err
	}
	// Matches in the truncated prefix cannot see what follows it.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if before && m.Start >= end {
			continue
		}
		if !q.WholeWord || isWholeWord(text, m.Start, m.End()) {
			return m, nil
		}
	}
	return Match{}, ErrNotFound
}
