// Package cmd provides the lenz command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/corey/lenz/internal/adapters/ahocorasick"
	fsw "github.com/corey/lenz/internal/adapters/fsnotify"
	"github.com/corey/lenz/internal/adapters/palette"
	"github.com/corey/lenz/internal/adapters/textfile"
	"github.com/corey/lenz/internal/app"
	"github.com/corey/lenz/internal/config"
	"github.com/corey/lenz/internal/domain/source"
	"github.com/corey/lenz/internal/ports"
	"github.com/corey/lenz/internal/version"
)

const usageLine = "lenz [QUERY] [FILEs]... [OPTION]"

// options are the parsed flags of one invocation.
type options struct {
	ignoreCase bool
	count      bool
	pageView   bool
	color      string
	noColor    bool
	configPath string
	watch      bool
	debug      bool
}

// env is what the command needs from the process. Tests replace it.
type env struct {
	paths  *app.Paths
	getenv func(string) string
	// newWatcher builds the watcher for --watch.
	newWatcher func(log *slog.Logger) (ports.Watcher, error)
}

func defaultEnv() env {
	return env{
		paths:      app.DefaultPaths(),
		getenv:     os.Getenv,
		newWatcher: newFileWatcher,
	}
}

// newFileWatcher returns an fsnotify watcher that logs the errors it sees.
func newFileWatcher(log *slog.Logger) (ports.Watcher, error) {
	w, err := fsw.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.OnError = func(err error) {
		log.Warn("file watcher error", "error", err)
	}
	return w, nil
}

// NewRootCmd creates the root command for the lenz CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnv())
}

func newRootCmd(e env) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "lenz QUERY FILE... [flags]",
		Short: "Lenz is a simple CLI for browsing files to find words.",
		Long: `Lenz is a simple CLI for browsing files to find words.

For every FILE, lenz prints a summary line with the number of occurrences
of QUERY. By default the matching lines follow, numbered, with every
occurrence highlighted. Paths that are missing or not regular files are
listed in an errors report at the end.`,
		Example: `  lenz TODO main.go util.go
  lenz -i error app.log
  lenz -c lenz README.md docs/*.md
  lenz -p func main.go`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageError{"at least two arguments are expected"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, e, opts, args[0], args[1:])
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err.Error()}
	})

	f := cmd.Flags()
	f.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Perform case insensitive matching.")
	f.BoolVarP(&opts.count, "count", "c", false, "Counting matches in files.")
	f.BoolVarP(&opts.pageView, "page-view", "p", false, "Page view.")
	f.StringVar(&opts.color, "color", config.ColorAuto, "When to color output: auto, always, never.")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output.")
	f.StringVar(&opts.configPath, "config", "", "Read settings from this YAML file.")
	f.BoolVarP(&opts.watch, "watch", "w", false, "Display a file again whenever it changes.")
	f.BoolVar(&opts.debug, "debug", false, "Write a debug log to the state directory.")

	return cmd
}

// mode selects the display mode from the flags.
func (o options) mode() (source.Mode, error) {
	switch {
	case o.count && o.pageView:
		return 0, usageError{"options '-c, --count' and '-p, --page-view' cannot be used together"}
	case o.count:
		return source.Count, nil
	case o.pageView:
		return source.FullPage, nil
	}
	return source.MatchedLines, nil
}

func runSearch(cmd *cobra.Command, e env, opts options, query string, files []string) error {
	if query == "" {
		return usageError{"the query must not be empty"}
	}
	mode, err := opts.mode()
	if err != nil {
		return err
	}

	cfgPath, required := e.paths.ResolveConfig(opts.configPath)
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("color") {
		if err := cfg.SetColor(opts.color); err != nil {
			return usageError{err.Error()}
		}
	}

	logger, cleanup, err := setupLogging(cfg, e.paths, opts.debug)
	if err != nil {
		return err
	}
	defer cleanup()
	logger.Debug("lenz starting", "version", version.String())
	logger.Debug("config loaded", "path", cfgPath, "required", required, "color", cfg.Color)

	out := cmd.OutOrStdout()
	color := resolveColor(cfg.Color, opts.noColor, e.getenv("NO_COLOR") != "", out)

	var styler ports.Styler = palette.Plain{}
	if color {
		p, err := palette.New(cfg.Palette)
		if err != nil {
			return err
		}
		styler = p
	}

	a, err := app.New(app.Config{
		Query:      query,
		IgnoreCase: opts.ignoreCase,
		Mode:       mode,
		Env: source.Env{
			Lines:  textfile.Reader{},
			Styler: styler,
			Finder: ahocorasick.Compile,
			Layout: cfg.CellLayout(),
		},
		Out:    out,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rep, err := a.Run(ctx, files)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}
	logger.Debug("batch finished",
		"sources", len(rep.Sources),
		"displayed", len(rep.Results),
		"problems", len(rep.Problems),
		"occurrences", rep.Occurrences())
	writeReport(out, rep.Problems, color)

	if interrupted {
		return exitError{code: exitInterrupted}
	}

	if opts.watch && len(rep.Sources) > 0 {
		w, err := e.newWatcher(logger)
		if err != nil {
			return err
		}
		if err := a.Watch(ctx, w, rep.Sources, nil); err != nil {
			return err
		}
	}

	if !rep.OK() {
		return exitError{code: exitProblems}
	}
	return nil
}

// Execute runs the root command against the process arguments and streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	printError(root.ErrOrStderr(), err)
	return err
}

// printError reports err on w. Usage errors get the usage and help hints.
func printError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ee exitError
	if errors.As(err, &ee) && ee.err == nil {
		return
	}

	r := newRenderer(w, isTerminal(w))
	bold := r.NewStyle().Bold(true)
	label := bold.Foreground(red).Render("Error:")

	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(w, bold.Render("Usage:")+" "+usageLine)
		fmt.Fprintln(w, "Try "+bold.Render("'lenz --help'")+" for help.")
	}
	fmt.Fprintln(w, label+" "+sentence(err.Error()))
}

// sentence capitalizes msg and ends it with a period.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
