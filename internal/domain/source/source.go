// Package source implements the search session over one file: a path bound
// to a query and a case mode, rendered in one of three display modes.
//
// A Source holds no open file. Every display operation streams the file from
// the start through a ports.LineReader, first to total the occurrences for the
// summary line and then, for the line modes, to render cells. Repeating an
// operation on an unchanged file produces identical output.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/corey/lenz/internal/domain/cell"
	"github.com/corey/lenz/internal/domain/match"
	"github.com/corey/lenz/internal/ports"
)

// ErrInvalidMode is returned by Display for a Mode outside the defined set.
// It means the caller's dispatch is broken and is not recoverable.
var ErrInvalidMode = errors.New("invalid display mode")

// Mode is the display style selected once per run.
type Mode int

const (
	// Count prints only the summary line.
	Count Mode = iota
	// MatchedLines prints the summary line and every matching line.
	MatchedLines
	// FullPage prints the summary line and every line, with matching line
	// numbers colored differently.
	FullPage
)

func (m Mode) String() string {
	switch m {
	case Count:
		return "count"
	case MatchedLines:
		return "matched-lines"
	case FullPage:
		return "full-page"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Outcome tells apart a file that was read, one that disappeared and one
// that could not be read.
type Outcome int

const (
	OK Outcome = iota
	NotFound
	Unreadable
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case NotFound:
		return "not-found"
	case Unreadable:
		return "unreadable"
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// Result describes one display operation.
type Result struct {
	Path        string
	Mode        Mode
	Outcome     Outcome
	Occurrences int   // total non-overlapping occurrences across all lines
	Lines       int   // lines read while rendering (0 in Count mode)
	Rendered    int   // cells written
	Err         error // set when Outcome is not OK
	// Output is the first error writing to the output; the operation stops
	// there. It says nothing about the file, so Outcome is unaffected.
	Output error
}

// Env carries the collaborators of a display operation.
type Env struct {
	Lines  ports.LineReader
	Styler ports.Styler
	// Finder compiles the query; nil uses match.IndexFinder.
	Finder ports.FinderFunc
	Layout cell.Layout
}

// Source is one input file bound to a query and a case mode.
type Source struct {
	path       string
	query      string
	ignoreCase bool
}

// New returns a Source. The path is expected to have been validated already.
func New(path, query string, ignoreCase bool) *Source {
	return &Source{path: path, query: query, ignoreCase: ignoreCase}
}

func (s *Source) Path() string     { return s.path }
func (s *Source) Query() string    { return s.query }
func (s *Source) IgnoreCase() bool { return s.ignoreCase }

// Display runs the operation for mode. The error is ErrInvalidMode or a
// failure to write the output; problems with the file itself are reported in
// the Result.
func (s *Source) Display(ctx context.Context, mode Mode, env Env, w io.Writer) (Result, error) {
	var res Result
	switch mode {
	case Count:
		res = s.DisplayCount(ctx, env, w)
	case MatchedLines:
		res = s.DisplayMatchedLines(ctx, env, w)
	case FullPage:
		res = s.DisplayAllLines(ctx, env, w)
	default:
		return Result{Path: s.path, Mode: mode}, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if res.Output != nil {
		return res, fmt.Errorf("write output: %w", res.Output)
	}
	return res, nil
}

// DisplayCount writes the summary line only.
func (s *Source) DisplayCount(ctx context.Context, env Env, w io.Writer) Result {
	res := Result{Path: s.path, Mode: Count}
	sc := s.scanner(env)
	total, err := s.total(ctx, env, sc)
	res.Occurrences = total
	out := &lineWriter{w: w}
	res.Output = out.line(s.summary(env.Styler, total))
	return res.fail(err)
}

// DisplayMatchedLines writes the summary line framed by blank lines, then one
// cell per matching line with statically colored line numbers.
func (s *Source) DisplayMatchedLines(ctx context.Context, env Env, w io.Writer) Result {
	return s.displayLines(ctx, env, w, MatchedLines)
}

// DisplayAllLines writes the summary line framed by blank lines, then one
// cell per line; matching lines get a distinct line-number color.
func (s *Source) DisplayAllLines(ctx context.Context, env Env, w io.Writer) Result {
	return s.displayLines(ctx, env, w, FullPage)
}

func (s *Source) displayLines(ctx context.Context, env Env, w io.Writer, mode Mode) Result {
	res := Result{Path: s.path, Mode: mode}
	sc := s.scanner(env)

	total, err := s.total(ctx, env, sc)
	res.Occurrences = total
	out := &lineWriter{w: w}
	if res.Output = out.line("\n" + s.summary(env.Styler, total) + "\n"); res.Output != nil {
		return res
	}
	if err != nil {
		return res.fail(err)
	}

	policy := cell.Static
	if mode == FullPage {
		policy = cell.Dynamic
	}
	err = env.Lines.EachLine(s.path, func(line string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Lines++
		c := cell.New(sc, line, res.Lines, env.Layout.Indent)
		if mode == MatchedLines && !c.Matches() {
			return nil
		}
		if err := out.line(c.Render(env.Styler, policy, env.Layout.NumberWidth)); err != nil {
			return err
		}
		res.Rendered++
		return nil
	})
	if out.err != nil {
		res.Output = out.err
		return res
	}
	return res.fail(err)
}

// total sums the occurrences of every line.
func (s *Source) total(ctx context.Context, env Env, sc *match.Scanner) (int, error) {
	total := 0
	err := env.Lines.EachLine(s.path, func(line string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, _ := sc.Count(line)
		total += n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Source) scanner(env Env) *match.Scanner {
	return match.NewScanner(s.query, match.Options{IgnoreCase: s.ignoreCase}, env.Finder)
}

// summary renders "- Filename: '<path>' [<total>]".
func (s *Source) summary(st ports.Styler, total int) string {
	var b strings.Builder
	b.WriteString(st.Marker(ports.Heading))
	b.WriteString("- Filename: ")
	b.WriteString(st.Marker(ports.Path))
	b.WriteString("'")
	b.WriteString(s.path)
	b.WriteString("'")
	b.WriteString(st.Marker(ports.Reset))
	b.WriteString(" ")
	b.WriteString(st.Marker(ports.Count))
	b.WriteString("[")
	b.WriteString(strconv.Itoa(total))
	b.WriteString("]")
	b.WriteString(st.Marker(ports.Reset))
	return b.String()
}

func (r Result) fail(err error) Result {
	if err == nil {
		return r
	}
	r.Err = err
	if errors.Is(err, fs.ErrNotExist) {
		r.Outcome = NotFound
	} else {
		r.Outcome = Unreadable
	}
	return r
}

// lineWriter writes lines and keeps the first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) error {
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, s+"\n")
	}
	return lw.err
}
