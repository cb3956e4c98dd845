package search

import (
	"errors"
	"strings"
	"testing"
)

func TestFind(t *testing.T) {
	const text = "one two one two"
	q := Query{Pattern: "two"}
	tests := []struct {
		name        string
		start, n    int
		forward     bool
		want        Match
		wantWrapped bool
		wantCurrent int
	}{
		{"from start", 0, 0, true, Match{4, 3}, false, 1},
		{"after selection", 4, 3, true, Match{12, 3}, false, 2},
		{"folds past end", 12, 3, true, Match{4, 3}, true, 1},
		{"wraps forward", 13, 0, true, Match{4, 3}, true, 1},
		{"backward", 12, 3, false, Match{4, 3}, false, 1},
		{"wraps backward", 4, 3, false, Match{12, 3}, true, 2},
		{"folds before start", 0, 0, false, Match{12, 3}, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(text, q, tt.start, tt.n, tt.forward)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if got.Match != tt.want {
				t.Fatalf("match = %+v, want %+v", got.Match, tt.want)
			}
			if got.Wrapped != tt.wantWrapped {
				t.Fatalf("wrapped = %v, want %v", got.Wrapped, tt.wantWrapped)
			}
			if got.Count.Total != 2 || got.Count.Current != tt.wantCurrent {
				t.Fatalf("count = %+v, want {2 %d}", got.Count, tt.wantCurrent)
			}
		})
	}
}

func TestFindRetriesInRegexMode(t *testing.T) {
	got, err := Find("x1 y2", Query{Pattern: `\d`, Regex: true}, 4, 1, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Match != (Match{1, 1}) || !got.Wrapped {
		t.Fatalf("Find = %+v, want wrapped {1 1}", got)
	}

	got, err = Find("x1 y2 z", Query{Pattern: `[a-z]\d`, Regex: true}, 3, 2, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Match != (Match{0, 2}) || !got.Wrapped {
		t.Fatalf("Find = %+v, want wrapped {0 2}", got)
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := Find("abc", Query{Pattern: "z"}, 0, 0, true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	_, err = Find("", Query{Pattern: "z"}, 0, 0, false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty text err = %v, want ErrNotFound", err)
	}
	_, err = Find("abc", Query{}, 0, 0, true)
	if !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("empty query err = %v, want ErrEmptyQuery", err)
	}
}

func TestReplaceNext(t *testing.T) {
	rep, next, err := ReplaceNext("a b a b", 0, 1, Query{Pattern: "a"}, "c")
	if err != nil {
		t.Fatalf("ReplaceNext: %v", err)
	}
	if rep.Text != "c b a b" {
		t.Fatalf("text = %q, want %q", rep.Text, "c b a b")
	}
	if next.Match != (Match{4, 1}) {
		t.Fatalf("next = %+v, want {4 1}", next.Match)
	}

	rep, _, err = ReplaceNext("a b", 0, 1, Query{Pattern: "a"}, "c")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("last replace err = %v, want ErrNotFound", err)
	}
	if rep.Text != "c b" {
		t.Fatalf("last replace text = %q, want %q", rep.Text, "c b")
	}

	_, _, err = ReplaceNext("a b", 2, 1, Query{Pattern: "a"}, "c")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("mismatched selection err = %v, want ErrNoMatch", err)
	}
}

func TestStatus(t *testing.T) {
	r := FindResult{Count: MatchCount{Total: 5, Current: 2}}
	if got := FoundStatus(r, true); got != "found match (2/5)" {
		t.Fatalf("FoundStatus = %q", got)
	}
	r.Wrapped = true
	if got := FoundStatus(r, true); got != "wrapped to start (2/5)" {
		t.Fatalf("FoundStatus wrapped forward = %q", got)
	}
	if got := FoundStatus(r, false); got != "wrapped to end (2/5)" {
		t.Fatalf("FoundStatus wrapped backward = %q", got)
	}
	if got := ReplacedStatus(1); got != "replaced 1 occurrence" {
		t.Fatalf("ReplacedStatus(1) = %q", got)
	}
	if got := ReplacedStatus(3); got != "replaced 3 occurrences" {
		t.Fatalf("ReplacedStatus(3) = %q", got)
	}

	_, err := Locate("x", Query{Pattern: "(", Regex: true}, 0, true)
	if got := ErrorStatus(err); !strings.HasPrefix(got, "invalid regular expression: ") {
		t.Fatalf("ErrorStatus(pattern) = %q", got)
	}
	for err, want := range map[error]string{
		ErrEmptyQuery: "enter text to find",
		ErrNotFound:   "no matches",
		ErrNoMatch:    "selection does not match query",
		nil:           "",
	} {
		if got := ErrorStatus(err); got != want {
			t.Fatalf("ErrorStatus(%v) = %q, want %q", err, got, want)
		}
	}
}
