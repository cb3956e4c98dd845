package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qtext/internal/config"
	"github.com/kobzarvs/qtext/internal/logger"
	"github.com/kobzarvs/qtext/internal/search"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("usage: qtext <find|count|replace|replace-all|compare> [flags] args")

// App is the top-level runtime for qtext.
type App struct {
	args   []string
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config

	newScreen func() (tcell.Screen, error)
}

func New(args []string) *App {
	return &App{
		args:      args,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newScreen: tcell.NewScreen,
	}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	if len(a.args) == 0 {
		return ErrUsage
	}
	name, rest := a.args[0], a.args[1:]
	logger.Info("command", "name", name, "args", rest)

	switch name {
	case "find":
		err = a.find(rest)
	case "count":
		err = a.count(rest)
	case "replace":
		err = a.replace(rest)
	case "replace-all":
		err = a.replaceAll(rest)
	case "compare":
		err = a.compare(rest)
	case "help", "-h", "--help":
		fmt.Fprintln(a.stdout, ErrUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", name, ErrUsage)
	}
	if err != nil {
		logger.Error("command failed", "name", name, "error", err)
		return err
	}
	logger.Info("command done", "name", name)
	return nil
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// queryFlags holds the shared search option flags, defaulted from config.
type queryFlags struct {
	caseSensitive *bool
	ignoreCase    *bool
	wholeWord     *bool
	regex         *bool
}

func (a *App) searchFlags(fs *flag.FlagSet) queryFlags {
	return queryFlags{
		caseSensitive: fs.Bool("c", a.cfg.Search.CaseSensitive, "match case"),
		ignoreCase:    fs.Bool("i", false, "ignore case"),
		wholeWord:     fs.Bool("w", a.cfg.Search.WholeWord, "match whole words"),
		regex:         fs.Bool("e", a.cfg.Search.Regex, "treat the pattern as a regular expression"),
	}
}

func (f queryFlags) query(a *App, pattern string) search.Query {
	return search.Query{
		Pattern:       pattern,
		CaseSensitive: *f.caseSensitive && !*f.ignoreCase,
		WholeWord:     *f.wholeWord,
		Regex:         *f.regex,
		Timeout:       a.cfg.Search.RegexTimeout,
	}
}

// parseSelection parses START:LEN.
func parseSelection(s string) (start, length int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("selection %q: want START:LEN", s)
	}
	if start, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("selection %q: %w", s, err)
	}
	if length, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("selection %q: %w", s, err)
	}
	if start < 0 || length < 0 {
		return 0, 0, fmt.Errorf("selection %q: must not be negative", s)
	}
	return start, length, nil
}

// statusError carries the user-facing status of a failed search while
// keeping the underlying error for errors.Is.
type statusError struct {
	err error
}

func (e *statusError) Error() string { return search.ErrorStatus(e.err) }
func (e *statusError) Unwrap() error { return e.err }

func searchError(err error) error {
	if err == nil {
		return nil
	}
	return &statusError{err: err}
}
