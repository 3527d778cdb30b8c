package app

import (
	"fmt"
	"io"
	"log/slog"
)

// parseLevel accepts the level names understood by slog.Level, in any case.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
	return level, nil
}

// NewLogger builds an isolated logger writing to outW in the "text" or
// "json" format. The global logger is left alone.
func NewLogger(levelName, format string, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(levelName)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
}
