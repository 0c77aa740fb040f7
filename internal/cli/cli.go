package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridfile"
	"github.com/pdrpinto/gridastar/report"
)

// Exit codes.
const (
	ExitLoad  = 1 // grid description missing or malformed
	ExitUsage = 2 // invalid flags or arguments
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// flags shared by all commands.
type options struct {
	format    string
	heuristic string
	workers   int
	logFormat string
	logLevel  string
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the gridastar command with its subcommands.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "gridastar [FILE...]",
		Short: "Shortest 4-directional paths on obstacle grids",
		Long: "gridastar reads grid descriptions and prints the path a best-first\n" +
			"search finds from the start cell to the goal cell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		// Bare file arguments run solve.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSolve(cmd, opts, args)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	persistent := root.PersistentFlags()
	persistent.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	persistent.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	persistent.StringVar(&opts.format, "format", string(report.Plain), "Result format. Options: 'plain', 'table', 'json'.")
	persistent.StringVar(&opts.heuristic, "heuristic", "source", "Distance heuristic. Options: 'source', 'manhattan'.")
	persistent.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of grids searched at once.")

	root.AddCommand(newSolveCommand(opts), newTraceCommand(opts))
	return root
}

func newSolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE...",
		Short: "Find a path for each grid file",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(fmt.Errorf("solve needs at least one grid file"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}
}

func newTraceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Print every frontier removal of one search, then its result",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(fmt.Errorf("trace needs exactly one grid file, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.workers = 1
			return runTrace(cmd, opts, args[0])
		},
	}
}

func setup(cmd *cobra.Command, opts *options, paths []string) (*Config, *slog.Logger, error) {
	cfg, err := NewConfig(Config{
		Paths:         paths,
		Format:        report.Format(opts.format),
		HeuristicName: opts.heuristic,
		Workers:       opts.workers,
		LogFormat:     opts.logFormat,
		LogLevel:      opts.logLevel,
	})
	if err != nil {
		return nil, nil, usageError(err)
	}
	logger := cfg.logger(cmd.ErrOrStderr())
	logger.Debug("configuration ready", "paths", cfg.Paths, "heuristic", cfg.HeuristicName, "format", cfg.Format)
	return cfg, logger, nil
}

func loadGrids(logger *slog.Logger, paths []string) ([]*gridastar.Grid, error) {
	grids := make([]*gridastar.Grid, 0, len(paths))
	for _, path := range paths {
		grid, err := gridfile.Load(path)
		if err != nil {
			logger.Error("loading grid failed", "path", path, "error", err)
			return nil, &ExitError{Code: ExitLoad, Message: err.Error(), Err: err}
		}
		logger.Debug("grid loaded",
			"path", path,
			"width", grid.Width(),
			"height", grid.Height(),
			"start", grid.Start(),
			"goal", grid.Goal(),
			"obstacles", len(grid.Obstacles()),
		)
		grids = append(grids, grid)
	}
	return grids, nil
}

func runSolve(cmd *cobra.Command, opts *options, paths []string) error {
	cfg, logger, err := setup(cmd, opts, paths)
	if err != nil {
		return err
	}
	grids, err := loadGrids(logger, cfg.Paths)
	if err != nil {
		return err
	}

	searchOptions := append(cfg.searchOptions(), gridastar.WithLogger(logger))
	results, err := gridastar.SearchAll(cmd.Context(), grids, searchOptions...)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, result := range results {
		logger.Info("search finished",
			"path", cfg.Paths[i],
			"found", result.Found,
			"cost", result.Cost,
			"expanded", result.Expanded,
		)
		if len(results) > 1 {
			if _, err := fmt.Fprintf(out, "# %s\n", cfg.Paths[i]); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
		if err := report.Write(out, cfg.Format, result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

func runTrace(cmd *cobra.Command, opts *options, path string) error {
	cfg, logger, err := setup(cmd, opts, []string{path})
	if err != nil {
		return err
	}
	grids, err := loadGrids(logger, cfg.Paths)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	stepper := gridastar.NewStepper(grids[0], append(cfg.searchOptions(), gridastar.WithLogger(logger))...)
	var snapshots []gridastar.StepSnapshot
	for !stepper.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		snapshots = append(snapshots, stepper.Step())
	}
	result := stepper.Result()
	logger.Info("search finished", "path", path, "found", result.Found, "cost", result.Cost, "expanded", result.Expanded)

	out := cmd.OutOrStdout()
	if err := report.Trace(out, snapshots); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	if err := report.Write(out, cfg.Format, result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
