// Package logging builds the slog logger used for diagnostics on stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options describes logger construction parameters.
type Options struct {
	Verbose bool
	Output  io.Writer
}

// New constructs a text slog logger. Verbose lowers the level to debug;
// otherwise only warnings and errors are written.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Verbose,
	})
	return slog.New(handler)
}

