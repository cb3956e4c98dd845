// Package view draws an interactive side-by-side comparison of two texts.
package view

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qtext/internal/config"
	"github.com/kobzarvs/qtext/internal/diff"
)

const separator = '│'

// Compare is a scrollable two-pane view over the position-aligned
// differences between a left and a right text.
type Compare struct {
	leftName   string
	rightName  string
	left       []string
	right      []string
	leftCount  int
	rightCount int
	lines      []diff.Line
	byRow      map[int]diff.Line

	rows       int
	scroll     int
	viewHeight int
	tabWidth   int

	styleMain    tcell.Style
	styleHeader  tcell.Style
	styleAdded   tcell.Style
	styleRemoved tcell.Style
	styleChanged tcell.Style
}

func NewCompare(leftName, left, rightName, right string, cfg config.Compare) *Compare {
	l := diff.SplitLines(left)
	r := diff.SplitLines(right)
	lines := diff.Lines(left, right)
	byRow := make(map[int]diff.Line, len(lines))
	for _, line := range lines {
		byRow[line.Number-1] = line
	}
	rows := len(l)
	if len(r) > rows {
		rows = len(r)
	}
	tabWidth := cfg.TabWidth
	if tabWidth < 1 {
		tabWidth = 1
	}

	fg := parseColor(cfg.Foreground, tcell.ColorWhite)
	bg := parseColor(cfg.Background, tcell.ColorBlack)
	main := tcell.StyleDefault.Foreground(fg).Background(bg)
	return &Compare{
		leftName:     leftName,
		rightName:    rightName,
		left:         l,
		right:        r,
		leftCount:    diff.LineCount(left),
		rightCount:   diff.LineCount(right),
		lines:        lines,
		byRow:        byRow,
		rows:         rows,
		viewHeight:   1,
		tabWidth:     tabWidth,
		styleMain:    main,
		styleHeader:  tcell.StyleDefault.Foreground(parseColor(cfg.HeaderForeground, fg)).Background(parseColor(cfg.HeaderBackground, bg)),
		styleAdded:   main.Background(parseColor(cfg.Added, tcell.ColorGreen)),
		styleRemoved: main.Background(parseColor(cfg.Removed, tcell.ColorRed)),
		styleChanged: tcell.StyleDefault.Foreground(parseColor(cfg.ChangedForeground, tcell.ColorWhite)).Background(parseColor(cfg.Modified, tcell.ColorYellow)),
	}
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	c := tcell.GetColor(strings.TrimSpace(name))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// Differences returns the number of differing lines.
func (c *Compare) Differences() int {
	return len(c.lines)
}

// Scroll returns the index of the first visible row.
func (c *Compare) Scroll() int {
	return c.scroll
}

// Header is the summary drawn on the first screen row. The second row holds
// the pane titles and differences start on the third.
func (c *Compare) Header() string {
	return fmt.Sprintf("Differences: %d | Lines: left %d | right %d", len(c.lines), c.leftCount, c.rightCount)
}

func (c *Compare) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	c.viewHeight = h - 2
	if c.viewHeight < 1 {
		c.viewHeight = 1
	}
	c.clampScroll()

	s.SetStyle(c.styleMain)
	s.Clear()
	drawText(s, 0, 0, w, c.Header(), c.styleHeader)

	leftW := (w - 1) / 2
	rightX := leftW + 1
	rightW := w - rightX
	if h > 1 {
		drawText(s, 0, 1, leftW, c.leftName, c.styleHeader)
		s.SetContent(leftW, 1, separator, nil, c.styleHeader)
		drawText(s, rightX, 1, w, c.rightName, c.styleHeader)
	}
	for y := 2; y < h; y++ {
		row := c.scroll + y - 2
		if row >= c.rows {
			break
		}
		line, changed := c.byRow[row]
		c.drawPane(s, 0, y, leftW, lineAt(c.left, row), line, changed, true)
		s.SetContent(leftW, y, separator, nil, c.styleMain)
		c.drawPane(s, rightX, y, rightW, lineAt(c.right, row), line, changed, false)
	}
	s.HideCursor()
	s.Show()
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func (c *Compare) drawPane(s tcell.Screen, x0, y, width int, text string, line diff.Line, changed, isLeft bool) {
	if width <= 0 {
		return
	}
	fill := c.styleMain
	var chars diff.CharSet
	if changed {
		switch line.Kind {
		case diff.Added:
			fill = c.styleAdded
		case diff.Removed:
			fill = c.styleRemoved
		case diff.Modified:
			if isLeft {
				chars = diff.Chars(line.Left, line.Right)
			} else {
				chars = diff.Chars(line.Right, line.Left)
			}
		}
	}

	x := x0
	col := 0
	end := x0 + width
	for idx, r := range []rune(text) {
		if x >= end {
			break
		}
		style := fill
		if chars.Has(idx) {
			style = c.styleChanged
		}
		if r == '\t' {
			spaces := c.tabWidth - (col % c.tabWidth)
			for i := 0; i < spaces && x < end; i++ {
				s.SetContent(x, y, ' ', nil, style)
				x++
				col++
			}
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x++
		col++
	}
	for x < end {
		s.SetContent(x, y, ' ', nil, fill)
		x++
	}
}

func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for x < w {
		s.SetContent(x, y, ' ', nil, style)
		x++
	}
}

// HandleKey applies a key press and reports whether the view should close.
func (c *Compare) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		c.scroll--
	case tcell.KeyDown:
		c.scroll++
	case tcell.KeyPgUp:
		c.scroll -= c.viewHeight
	case tcell.KeyPgDn:
		c.scroll += c.viewHeight
	case tcell.KeyHome:
		c.scroll = 0
	case tcell.KeyEnd:
		c.scroll = c.maxScroll()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'j':
			c.scroll++
		case 'k':
			c.scroll--
		case 'n':
			c.NextDifference()
		case 'N':
			c.PrevDifference()
		}
	}
	c.clampScroll()
	return false
}

// NextDifference scrolls so the first differing line below the top row
// becomes the top row. It reports whether one was found.
func (c *Compare) NextDifference() bool {
	for _, line := range c.lines {
		if row := line.Number - 1; row > c.scroll {
			c.scroll = row
			c.clampScroll()
			return true
		}
	}
	return false
}

// PrevDifference is the reverse of NextDifference.
func (c *Compare) PrevDifference() bool {
	for i := len(c.lines) - 1; i >= 0; i-- {
		if row := c.lines[i].Number - 1; row < c.scroll {
			c.scroll = row
			return true
		}
	}
	return false
}

func (c *Compare) maxScroll() int {
	if m := c.rows - c.viewHeight; m > 0 {
		return m
	}
	return 0
}

func (c *Compare) clampScroll() {
	if c.scroll > c.maxScroll() {
		c.scroll = c.maxScroll()
	}
	if c.scroll < 0 {
		c.scroll = 0
	}
}
