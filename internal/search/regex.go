package search

import (
	"github.com/dlclark/regexp2"
)

// wordGuard wraps a pattern so that it only matches between non-word runes.
// The class mirrors isWordRune: letters and decimal digits.
const (
	wordGuardPrefix = `(?<![\p{L}\p{Nd}])(?:`
	wordGuardSuffix = `)(?![\p{L}\p{Nd}])`
)

func compile(q Query) (*regexp2.Regexp, error) {
	opts := regexp2.None
	if !q.CaseSensitive {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(q.Pattern, opts)
	if err != nil {
		return nil, &PatternError{Pattern: q.Pattern, Err: err}
	}
	if q.WholeWord {
		// The raw pattern is compiled first so an unbalanced group cannot be
		// closed by the guard.
		re, err = regexp2.Compile(wordGuardPrefix+q.Pattern+wordGuardSuffix, opts)
		if err != nil {
			return nil, &PatternError{Pattern: q.Pattern, Err: err}
		}
	}
	if q.Timeout > 0 {
		re.MatchTimeout = q.Timeout
	}
	return re, nil
}

// regexMatches returns every match of re in text, left to right.
func regexMatches(re *regexp2.Regexp, text []rune) ([]Match, error) {
	var out []Match
	m, err := re.FindRunesMatch(text)
	for m != nil && err == nil {
		out = append(out, Match{Start: m.Index, Length: m.Length})
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
