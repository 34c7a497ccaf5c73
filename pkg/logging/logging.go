package logging

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger creates a logger with the specified minimum level.
// If verbose is true, logs at debug level; otherwise info level.
func NewLogger(verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	return logger
}

// WithComponent tags every line the logger emits with which part of
// tetrisctl produced it (the play subcommand uses "play"), so output
// from different subcommands in a log stream can be told apart.
func WithComponent(logger log.Logger, component string) log.Logger {
	return log.With(logger, "component", component)
}
