// Package logger configures the global zerolog logger with JSON output,
// timestamps and caller tracking so every line is machine-parseable.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger writing JSON to stdout.
func Setup(level zerolog.Level) {
	SetupWriter(os.Stdout, level)
}

// SetupWriter initializes the global logger writing JSON to w.
// The logger also becomes the fallback for contexts without one, so
// zerolog.Ctx never silently drops entries.
func SetupWriter(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := zerolog.New(w).With().
		Timestamp().
		Caller().
		Logger()

	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
}

// ParseLevel converts a string log level to zerolog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
