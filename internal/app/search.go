package app

import (
	"errors"
	"fmt"

	"github.com/kobzarvs/qtext/internal/logger"
	"github.com/kobzarvs/qtext/internal/search"
	"github.com/kobzarvs/qtext/internal/textio"
)

func (a *App) find(args []string) error {
	fs := a.flagSet("find")
	qf := a.searchFlags(fs)
	from := fs.Int("from", 0, "rune offset to search from")
	back := fs.Bool("back", false, "search backward")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("find [flags] PATTERN FILE: %w", ErrUsage)
	}
	text, _, err := textio.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}

	forward := !*back
	res, err := search.Find(text, qf.query(a, fs.Arg(0)), *from, 0, forward)
	if err != nil {
		return searchError(err)
	}
	logger.Debug("find", "start", res.Start, "length", res.Length, "wrapped", res.Wrapped)
	fmt.Fprintf(a.stdout, "%d %d\n", res.Start, res.Length)
	fmt.Fprintln(a.stderr, search.FoundStatus(res, forward))
	return nil
}

func (a *App) count(args []string) error {
	fs := a.flagSet("count")
	qf := a.searchFlags(fs)
	at := fs.Int("at", 0, "rune offset of the cursor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("count [flags] PATTERN FILE: %w", ErrUsage)
	}
	text, _, err := textio.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	c := search.Count(text, qf.query(a, fs.Arg(0)), *at)
	fmt.Fprintf(a.stdout, "%d/%d\n", c.Current, c.Total)
	return nil
}

func (a *App) replace(args []string) error {
	fs := a.flagSet("replace")
	qf := a.searchFlags(fs)
	sel := fs.String("sel", "", "selection to replace as START:LEN")
	write := fs.Bool("write", false, "rewrite the file instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 || *sel == "" {
		return fmt.Errorf("replace [flags] -sel START:LEN PATTERN REPLACEMENT FILE: %w", ErrUsage)
	}
	start, length, err := parseSelection(*sel)
	if err != nil {
		return err
	}
	path := fs.Arg(2)
	text, enc, err := textio.ReadFile(path)
	if err != nil {
		return err
	}

	rep, next, findErr := search.ReplaceNext(text, start, length, qf.query(a, fs.Arg(0)), fs.Arg(1))
	if findErr != nil && !errors.Is(findErr, search.ErrNotFound) {
		return searchError(findErr)
	}
	if err := a.emit(path, rep.Text, enc, *write); err != nil {
		return err
	}
	fmt.Fprintln(a.stderr, search.ReplacedStatus(1))
	if findErr == nil {
		fmt.Fprintf(a.stderr, "next %d %d: %s\n", next.Start, next.Length, search.FoundStatus(next, true))
	} else {
		logger.Warn("no match after replacement", "path", path, "pattern", fs.Arg(0))
		fmt.Fprintln(a.stderr, search.ErrorStatus(findErr))
	}
	return nil
}

func (a *App) replaceAll(args []string) error {
	fs := a.flagSet("replace-all")
	qf := a.searchFlags(fs)
	write := fs.Bool("write", false, "rewrite the file instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("replace-all [flags] PATTERN REPLACEMENT FILE: %w", ErrUsage)
	}
	path := fs.Arg(2)
	text, enc, err := textio.ReadFile(path)
	if err != nil {
		return err
	}

	out, n, err := search.ReplaceAll(text, qf.query(a, fs.Arg(0)), fs.Arg(1))
	if err != nil {
		return searchError(err)
	}
	if n == 0 {
		return searchError(search.ErrNotFound)
	}
	if err := a.emit(path, out, enc, *write); err != nil {
		return err
	}
	logger.Info("replaced", "path", path, "count", n, "write", *write)
	fmt.Fprintln(a.stderr, search.ReplacedStatus(n))
	return nil
}

// emit writes text back to path in its original encoding, or prints it.
func (a *App) emit(path, text string, enc textio.Encoding, write bool) error {
	if write {
		if err := textio.WriteFile(path, text, enc); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	_, err := fmt.Fprint(a.stdout, text)
	return err
}
