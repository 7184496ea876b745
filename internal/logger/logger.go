package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "ARID_LOG_LEVEL"

// ParseLevel maps "debug", "info", "warn" and "error" to zerolog levels.
// Anything else yields InfoLevel.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a timestamped logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human readable logger on stderr, leveled from the
// environment.
func NewConsole() zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, ParseLevel(os.Getenv(LevelEnv)))
}
