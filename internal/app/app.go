// Package app wires the search session together: it validates the input
// paths, runs the selected display operation over every valid source in
// input order, collects problems for the errors report, and re-runs a
// source when its file changes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/corey/lenz/internal/adapters/palette"
	"github.com/corey/lenz/internal/adapters/textfile"
	"github.com/corey/lenz/internal/domain/source"
	"github.com/corey/lenz/internal/logging"
)

// ErrEmptyQuery is returned by New for an empty query.
var ErrEmptyQuery = errors.New("query must not be empty")

// Config holds initialization parameters for the App.
type Config struct {
	Query      string
	IgnoreCase bool
	Mode       source.Mode
	Env        source.Env   // Lines and Styler default to textfile.Reader and palette.Plain
	Out        io.Writer    // display output
	Logger     *slog.Logger // nil = discard
}

// App runs one batch of display operations.
type App struct {
	query      string
	ignoreCase bool
	mode       source.Mode
	env        source.Env
	out        io.Writer
	log        *slog.Logger
}

// Report is the outcome of a batch.
type Report struct {
	Sources  []*source.Source // valid sources, in input order
	Results  []source.Result
	Problems []*Problem // rejected paths first, then read failures, each in input order
}

// OK reports whether every path was displayed without problems.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Occurrences sums the occurrences over all results.
func (r Report) Occurrences() int {
	n := 0
	for _, res := range r.Results {
		n += res.Occurrences
	}
	return n
}

// New creates an App. Does not touch the filesystem.
func New(cfg Config) (*App, error) {
	if cfg.Query == "" {
		return nil, ErrEmptyQuery
	}
	switch cfg.Mode {
	case source.Count, source.MatchedLines, source.FullPage:
	default:
		return nil, fmt.Errorf("%w: %d", source.ErrInvalidMode, int(cfg.Mode))
	}
	if cfg.Out == nil {
		return nil, fmt.Errorf("output writer required")
	}
	if cfg.Env.Lines == nil {
		cfg.Env.Lines = textfile.Reader{}
	}
	if cfg.Env.Styler == nil {
		cfg.Env.Styler = palette.Plain{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &App{
		query:      cfg.Query,
		ignoreCase: cfg.IgnoreCase,
		mode:       cfg.Mode,
		env:        cfg.Env,
		out:        cfg.Out,
		log:        cfg.Logger,
	}, nil
}

// Prepare validates paths against the App's query and case mode.
func (a *App) Prepare(paths []string) ([]*source.Source, []*Problem) {
	sources, problems := Prepare(paths, a.query, a.ignoreCase)
	a.log.Debug("sources prepared", "valid", len(sources), "rejected", len(problems))
	for _, p := range problems {
		a.log.Debug("path rejected", "path", p.Path, "error", p.Error())
	}
	return sources, problems
}

// Run prepares paths and displays every valid source in order. A canceled
// context stops the batch; the partial report is returned with ctx.Err().
func (a *App) Run(ctx context.Context, paths []string) (Report, error) {
	sources, problems := a.Prepare(paths)
	rep := Report{Sources: sources, Problems: problems}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := a.Display(ctx, src)
		if err != nil {
			return rep, err
		}
		rep.Results = append(rep.Results, res)
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if p := readProblem(res); p != nil {
			rep.Problems = append(rep.Problems, p)
		}
	}
	return rep, nil
}

// Display runs the App's mode for one source and logs the result.
func (a *App) Display(ctx context.Context, src *source.Source) (source.Result, error) {
	start := time.Now()
	res, err := src.Display(ctx, a.mode, a.env, a.out)
	if err != nil {
		return res, err
	}

	attrs := []any{
		"path", res.Path,
		"mode", res.Mode.String(),
		"outcome", res.Outcome.String(),
		"occurrences", res.Occurrences,
		"rendered", res.Rendered,
		"duration", time.Since(start),
	}
	if res.Err != nil {
		a.log.Warn("source display degraded", append(attrs, "error", res.Err)...)
	} else {
		a.log.Debug("source displayed", attrs...)
	}
	return res, nil
}
