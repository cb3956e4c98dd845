package search

// Replacement is the outcome of replacing a selection.
type Replacement struct {
	Text string
	// Selection spans the inserted text.
	Selection Match
}

// ReplaceOne replaces the selection text[start:start+length] when it still
// satisfies q.
//
// In regex mode the selection must contain a match and the inserted text is
// the substitution applied to the selection alone, so $1 and ${name} refer to
// groups matched inside it. In literal mode with WholeWord the selection must
// equal the pattern; without WholeWord it must contain it, and the whole
// selection is replaced. ErrNoMatch is returned, and nothing changes, when the
// selection is empty, out of range or does not satisfy q.
func ReplaceOne(text string, start, length int, q Query, replacement string) (Replacement, error) {
	if q.Pattern == "" {
		return Replacement{}, ErrEmptyQuery
	}
	runes := []rune(text)
	if length <= 0 || start < 0 || start+length > len(runes) {
		return Replacement{}, ErrNoMatch
	}
	selected := runes[start : start+length]

	inserted := replacement
	if q.Regex {
		re, err := compile(q)
		if err != nil {
			return Replacement{}, err
		}
		ok, err := re.MatchRunes(selected)
		if err != nil {
			return Replacement{}, err
		}
		if !ok {
			return Replacement{}, ErrNoMatch
		}
		inserted, err = re.Replace(string(selected), replacement, -1, -1)
		if err != nil {
			return Replacement{}, err
		}
	} else {
		lit := newLiteral(q)
		if q.WholeWord {
			if !lit.equal(selected) {
				return Replacement{}, ErrNoMatch
			}
		} else if lit.index(selected, 0) < 0 {
			return Replacement{}, ErrNoMatch
		}
	}

	insertedRunes := []rune(inserted)
	out := make([]rune, 0, len(runes)-length+len(insertedRunes))
	out = append(out, runes[:start]...)
	out = append(out, insertedRunes...)
	out = append(out, runes[start+length:]...)
	return Replacement{
		Text:      string(out),
		Selection: Match{Start: start, Length: len(insertedRunes)},
	}, nil
}

// ReplaceAll replaces every match of q in text and reports how many were
// replaced.
//
// Regex mode performs a single global substitution. Literal mode scans left
// to right without overlap and resumes after each inserted replacement; with
// WholeWord, rejected occurrences are skipped one rune at a time. On error the
// original text is returned unchanged.
func ReplaceAll(text string, q Query, replacement string) (string, int, error) {
	if q.Pattern == "" {
		return text, 0, ErrEmptyQuery
	}
	if q.Regex {
		return replaceAllRegex(text, q, replacement)
	}

	runes := []rune(text)
	lit := newLiteral(q)
	repl := []rune(replacement)
	n := len(lit.pat)

	out := make([]rune, 0, len(runes))
	count := 0
	i := 0
	for {
		j := lit.index(runes, i)
		if j < 0 {
			break
		}
		out = append(out, runes[i:j]...)
		if q.WholeWord && !boundaryAfterSplice(out, runes, j+n) {
			out = append(out, runes[j])
			i = j + 1
			continue
		}
		out = append(out, repl...)
		count++
		i = j + n
	}
	out = append(out, runes[i:]...)
	return string(out), count, nil
}

// boundaryAfterSplice applies the whole-word rule to an occurrence that ends
// at rest[end], where out holds the already rewritten text before it.
func boundaryAfterSplice(out, rest []rune, end int) bool {
	if len(out) > 0 && isWordRune(out[len(out)-1]) {
		return false
	}
	if end < len(rest) && isWordRune(rest[end]) {
		return false
	}
	return true
}

func replaceAllRegex(text string, q Query, replacement string) (string, int, error) {
	re, err := compile(q)
	if err != nil {
		return text, 0, err
	}
	matches, err := regexMatches(re, []rune(text))
	if err != nil {
		return text, 0, err
	}
	if len(matches) == 0 {
		return text, 0, nil
	}
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text, 0, err
	}
	return out, len(matches), nil
}
