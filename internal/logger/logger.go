// Package logger configures the application's structured logging.
//
// It uses zerolog for all output: human-friendly console writing in the local
// environment, JSON everywhere else.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger for the given environment.
//
// Local gets a pretty console writer at debug level; any other environment
// gets JSON at info level.
func New(env string) zerolog.Logger {
	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Str("service", "catalog").Logger()
}
