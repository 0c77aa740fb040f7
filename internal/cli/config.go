package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/report"
)

var heuristics = map[string]gridastar.Heuristic{
	"source":    gridastar.SourceManhattan,
	"manhattan": gridastar.Manhattan,
}

// Config holds everything one command invocation needs.
type Config struct {
	Paths []string

	Format        report.Format
	HeuristicName string
	Heuristic     gridastar.Heuristic
	Workers       int

	LogFormat string
	LogLevel  string
	level     slog.Level
}

// NewConfig validates cfg and resolves the heuristic by name.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one grid file is required")
	}

	format, err := report.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	cfg.HeuristicName = strings.ToLower(cfg.HeuristicName)
	heuristic, ok := heuristics[cfg.HeuristicName]
	if !ok {
		return nil, fmt.Errorf("invalid heuristic %q: must be 'source' or 'manhattan'", cfg.HeuristicName)
	}
	cfg.Heuristic = heuristic

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.Workers)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		if err := cfg.level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log-level: %w", err)
		}
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

// searchOptions maps the config onto search options.
func (c *Config) searchOptions() []gridastar.Option {
	return []gridastar.Option{
		gridastar.WithHeuristic(c.Heuristic),
		gridastar.WithWorkers(c.Workers),
	}
}
