// Package diff compares two texts line by line and characters within a
// modified line.
//
// Lines are aligned by position, not by a longest-common-subsequence
// alignment: line i on the left is compared with line i on the right.
package diff

import "strings"

// Kind classifies a differing line.
type Kind int

const (
	// Added means the left line is empty or missing.
	Added Kind = iota
	// Removed means the right line is empty or missing.
	Removed
	// Modified means both sides have different non-empty content.
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return "unknown"
}

// Line is one differing line. Number is 1-based.
type Line struct {
	Number int
	Left   string
	Right  string
	Kind   Kind
}

// Normalize maps "\r\n" and "\r" to "\n".
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitLines normalizes line endings and splits text into lines. An empty
// text is a single empty line and a trailing break yields a final empty line.
func SplitLines(text string) []string {
	return strings.Split(Normalize(text), "\n")
}

// LineCount returns the number of logical lines in text.
func LineCount(text string) int {
	return len(SplitLines(text))
}

// Lines returns the differing lines between left and right in line order.
// Equal lines are omitted but still advance the line number.
func Lines(left, right string) []Line {
	l := SplitLines(left)
	r := SplitLines(right)
	n := max(len(l), len(r))

	var out []Line
	for i := 0; i < n; i++ {
		var a, b string
		if i < len(l) {
			a = l[i]
		}
		if i < len(r) {
			b = r[i]
		}
		if a == b {
			continue
		}
		out = append(out, Line{Number: i + 1, Left: a, Right: b, Kind: classify(a, b)})
	}
	return out
}

func classify(left, right string) Kind {
	switch {
	case left == "":
		return Added
	case right == "":
		return Removed
	default:
		return Modified
	}
}

// Stats summarizes a comparison.
type Stats struct {
	Added    int
	Removed  int
	Modified int
}

// Total returns the number of differing lines.
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Modified
}

// Summary counts lines by kind.
func Summary(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		}
	}
	return s
}
