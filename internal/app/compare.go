package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qtext/internal/diff"
	"github.com/kobzarvs/qtext/internal/gitinfo"
	"github.com/kobzarvs/qtext/internal/logger"
	"github.com/kobzarvs/qtext/internal/textio"
	"github.com/kobzarvs/qtext/internal/view"
)

func (a *App) compare(args []string) error {
	fs := a.flagSet("compare")
	unified := fs.Bool("unified", false, "print a unified patch instead of opening the viewer")
	summary := fs.Bool("summary", false, "print counts of differing lines instead of opening the viewer")
	rev := fs.String("rev", "", "compare FILE against its contents at this git revision")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var leftName, left, rightName, right string
	switch {
	case *rev != "" && fs.NArg() == 1:
		rightName = fs.Arg(0)
		leftName = *rev + ":" + rightName
		var err error
		if left, err = gitinfo.Show(rightName, *rev); err != nil {
			return fmt.Errorf("%s: %w", leftName, err)
		}
		if right, _, err = textio.ReadFile(rightName); err != nil {
			return err
		}
	case *rev == "" && fs.NArg() == 2:
		leftName, rightName = fs.Arg(0), fs.Arg(1)
		var err error
		if left, _, err = textio.ReadFile(leftName); err != nil {
			return err
		}
		if right, _, err = textio.ReadFile(rightName); err != nil {
			return err
		}
	default:
		return fmt.Errorf("compare [flags] LEFT RIGHT | compare -rev REV FILE: %w", ErrUsage)
	}

	if left == "" && right == "" {
		fmt.Fprintln(a.stderr, "nothing to compare")
		return nil
	}
	lines := diff.Lines(left, right)
	logger.Info("compare", "left", leftName, "right", rightName, "differences", len(lines))
	if len(lines) == 0 {
		fmt.Fprintln(a.stderr, "contents are identical")
		return nil
	}

	switch {
	case *unified:
		out, err := diff.Unified(leftName, left, rightName, right)
		if err != nil {
			return fmt.Errorf("unified diff: %w", err)
		}
		_, err = a.stdout.Write(out)
		return err
	case *summary:
		st := diff.Summary(lines)
		fmt.Fprintf(a.stdout, "%d differences: %d added, %d removed, %d modified\n", st.Total(), st.Added, st.Removed, st.Modified)
		return nil
	}
	leftTitle := leftName
	if *rev != "" {
		leftTitle = revisionTitle(*rev, rightName)
	}
	return a.runCompareView(view.NewCompare(leftTitle, left, rightName, right, a.cfg.Compare))
}

// revisionTitle names the left pane of a revision compare, adding the
// branch checked out in the work tree of path.
func revisionTitle(rev, path string) string {
	title := rev + ":" + path
	if branch := gitinfo.Branch(path); branch != "" {
		title += " (on " + branch + ")"
	}
	return title
}

func (a *App) runCompareView(v *view.Compare) error {
	s, err := a.newScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	v.Render(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		}
		v.Render(s)
	}
}
