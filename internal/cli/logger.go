package cli

import (
	"io"
	"log/slog"
)

// logger writes the run's diagnostics to w in the configured format.
func (c *Config) logger(w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: c.level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
