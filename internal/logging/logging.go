// Package logging configures the process-wide slog logger for the vrt
// command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the variable consulted when no level flag is given.
const EnvLevel = "VRT_LOG_LEVEL"

// Init installs a default slog handler with the given level and format.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func Init(level slog.Level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("logging: unknown format %q (want text or json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
// An empty string falls back to $VRT_LOG_LEVEL, then to warn.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		s = os.Getenv(EnvLevel)
	}
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
