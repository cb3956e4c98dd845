package search

import "unicode"

// literal matches a fixed rune sequence, optionally case-folded.
type literal struct {
	pat  []rune
	fold bool
}

func newLiteral(q Query) literal {
	return literal{pat: []rune(q.Pattern), fold: !q.CaseSensitive}
}

// at reports whether the pattern occurs at text[i:].
func (l literal) at(text []rune, i int) bool {
	if i < 0 || i+len(l.pat) > len(text) {
		return false
	}
	for j, r := range l.pat {
		if !equalRune(text[i+j], r, l.fold) {
			return false
		}
	}
	return true
}

// index returns the first occurrence starting at or after from, or -1.
func (l literal) index(text []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(l.pat) <= len(text); i++ {
		if l.at(text, i) {
			return i
		}
	}
	return -1
}

// lastIndex returns the last occurrence lying entirely inside text[:limit], or -1.
func (l literal) lastIndex(text []rune, limit int) int {
	if limit > len(text) {
		limit = len(text)
	}
	for i := limit - len(l.pat); i >= 0; i-- {
		if l.at(text, i) {
			return i
		}
	}
	return -1
}

// equal reports whether s is exactly the pattern.
func (l literal) equal(s []rune) bool {
	return len(s) == len(l.pat) && l.at(s, 0)
}

func equalRune(a, b rune, fold bool) bool {
	if a == b {
		return true
	}
	if !fold {
		return false
	}
	return unicode.ToUpper(a) == unicode.ToUpper(b) || unicode.ToLower(a) == unicode.ToLower(b)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isWholeWord reports whether text[start:end] has no letter or digit
// immediately before or after it.
func isWholeWord(text []rune, start, end int) bool {
	if start > 0 && isWordRune(text[start-1]) {
		return false
	}
	if end < len(text) && isWordRune(text[end]) {
		return false
	}
	return true
}
