package diff

import "sort"

// CharSet is a set of rune indices within one line.
type CharSet map[int]struct{}

// Has reports whether i is in the set.
func (s CharSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Sorted returns the indices in ascending order.
func (s CharSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Chars returns the rune indices of line that differ from the rune at the
// same index in other.
//
// The comparison is position-aligned: an inserted or deleted rune shifts
// every later index, so the rest of the line is reported as different.
// Only indices inside line are returned.
func Chars(line, other string) CharSet {
	a := []rune(line)
	b := []rune(other)
	set := make(CharSet)
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			set[i] = struct{}{}
		}
	}
	return set
}
