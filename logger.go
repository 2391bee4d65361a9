package md2html

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger initializes the global slog logger with a tint handler on stderr.
func InitLogger(debug bool) {
	slog.SetDefault(NewLogger(os.Stderr, debug))
}

// NewLogger builds the diagnostic logger. Per-file notices are Info records,
// so Info is the floor unless debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		}),
	)
}
