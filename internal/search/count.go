package search

// Count returns the number of matches of q in text and the ordinal of the
// last match starting at or before ref.
//
// Literal candidates are tried at every offset, so overlapping occurrences
// are counted; regex matches are the engine's non-overlapping sequence.
// An empty pattern, an empty text or a pattern that fails to compile or
// times out yields a zero count.
func Count(text string, q Query, ref int) MatchCount {
	if q.Pattern == "" || text == "" {
		return MatchCount{}
	}
	starts, err := matchStarts([]rune(text), q)
	if err != nil {
		return MatchCount{}
	}
	var c MatchCount
	for _, start := range starts {
		c.Total++
		if start <= ref {
			c.Current = c.Total
		}
	}
	return c
}

func matchStarts(text []rune, q Query) ([]int, error) {
	if q.Regex {
		re, err := compile(q)
		if err != nil {
			return nil, err
		}
		matches, err := regexMatches(re, text)
		if err != nil {
			return nil, err
		}
		starts := make([]int, len(matches))
		for i, m := range matches {
			starts[i] = m.Start
		}
		return starts, nil
	}

	lit := newLiteral(q)
	var starts []int
	for i := lit.index(text, 0); i >= 0; i = lit.index(text, i+1) {
		if q.WholeWord && !isWholeWord(text, i, i+len(lit.pat)) {
			continue
		}
		starts = append(starts, i)
	}
	return starts, nil
}
