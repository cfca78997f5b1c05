// Package logging builds the process slog.Logger.
//
// Handlers:
//   - dev: colourised output via tint, for terminals
//   - text: slog.TextHandler
//   - json: slog.JSONHandler
//   - auto: dev when writing to a terminal, json otherwise
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Handler formats.
const (
	FormatAuto = "auto"
	FormatDev  = "dev"
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps debug, info, warn and error to slog levels.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a logger writing to w in the given format.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = FormatDev
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatDev:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "[15:04:05.000]",
		}))
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		return slog.New(slog.NewJSONHandler(w, opts))
	}
}
