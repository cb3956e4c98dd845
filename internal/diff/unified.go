package diff

import (
	"bytes"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

const noNewline = "\\ No newline at end of file\n"

// side holds the real lines of one text. A trailing line break does not
// start another line.
type side struct {
	lines []string
	eol   bool
}

func newSide(text string) side {
	text = Normalize(text)
	if text == "" {
		return side{eol: true}
	}
	lines := strings.Split(text, "\n")
	eol := lines[len(lines)-1] == ""
	if eol {
		lines = lines[:len(lines)-1]
	}
	return side{lines: lines, eol: eol}
}

// terminated reports whether line i ends with a line break.
func (s side) terminated(i int) bool {
	return i < len(s.lines)-1 || s.eol
}

func sameLine(a, b side, i int) bool {
	inA, inB := i < len(a.lines), i < len(b.lines)
	if inA != inB {
		return false
	}
	if !inA {
		return true
	}
	return a.lines[i] == b.lines[i] && a.terminated(i) == b.terminated(i)
}

// Unified renders the position-aligned comparison of left and right as a
// unified patch that turns left into right. Consecutive differing lines
// share one hunk and no context lines are written. A line counts as
// differing when its content, its presence or its final line break differs,
// so a line that only one side holds is kept even when it is empty. An empty
// result is returned when the texts are the same.
func Unified(leftName, left, rightName, right string) ([]byte, error) {
	a, b := newSide(left), newSide(right)
	n := max(len(a.lines), len(b.lines))

	fd := &godiff.FileDiff{
		OrigName: leftName,
		NewName:  rightName,
	}
	for i := 0; i < n; {
		if sameLine(a, b, i) {
			i++
			continue
		}
		j := i
		for j < n && !sameLine(a, b, j) {
			j++
		}
		fd.Hunks = append(fd.Hunks, hunk(a, b, i, j))
		i = j
	}
	if len(fd.Hunks) == 0 {
		return nil, nil
	}
	return godiff.PrintFileDiff(fd)
}

func hunk(a, b side, from, to int) *godiff.Hunk {
	var body bytes.Buffer
	h := &godiff.Hunk{}
	h.OrigStartLine, h.OrigLines = writeLines(&body, '-', a, from, to)
	h.NewStartLine, h.NewLines = writeLines(&body, '+', b, from, to)
	h.Body = body.Bytes()
	return h
}

// writeLines writes the lines of s in [from, to) and returns their 1-based
// range. A side without lines there gets a zero-length range naming its last
// line.
func writeLines(w *bytes.Buffer, prefix byte, s side, from, to int) (start, count int32) {
	end := min(to, len(s.lines))
	if end <= from {
		return int32(len(s.lines)), 0
	}
	for i := from; i < end; i++ {
		w.WriteByte(prefix)
		w.WriteString(s.lines[i])
		w.WriteByte('\n')
		if !s.terminated(i) {
			w.WriteString(noNewline)
		}
	}
	return int32(from + 1), int32(end - from)
}
