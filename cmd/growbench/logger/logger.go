// Package logger holds the process-wide structured logger for growbench.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// L is the global logger instance. It discards all output until Init enables it.
var L = slog.New(slog.DiscardHandler)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum log level
	JSON    bool       // Emit JSON lines instead of colorized text
	NoColor bool       // Disable ANSI colors in text mode
	Writer  io.Writer  // Destination. Default: os.Stderr
}

// Init configures logging. Call before any log calls.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
		return
	}
	L = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	}))
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
// The empty string means logging stays disabled.
func ParseLevel(s string) (slog.Level, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, false, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, true, nil
}
