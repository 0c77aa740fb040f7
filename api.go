package gridastar

import (
	"context"
	"log/slog"
	"runtime"
)

// Result contains the outcome of a search.
//
// Path lists the cells from the first move after the start through the goal.
// It is empty when the start already is the goal, and nil when Found is false.
type Result struct {
	Path     []Cell
	Cost     int
	Expanded int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Heuristic       Heuristic
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many grids SearchAll searches at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithHeuristic replaces the default SourceManhattan heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithLogger sets the logger that receives per-expansion debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Heuristic:       SourceManhattan,
		Logger:          slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = SourceManhattan
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// Search runs the search on grid to completion. An unreachable goal is
// reported through Result.Found; the error is only set when ctx ends first.
func Search(ctx context.Context, grid *Grid, options ...Option) (Result, error) {
	stepper := NewStepper(grid, options...)
	for !stepper.done {
		if err := ctx.Err(); err != nil {
			return stepper.Result(), err
		}
		stepper.advance()
	}
	return stepper.Result(), nil
}
