// Package logging configures the process-wide structured logger used by the command-line tool.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const timeFormat = "15:04:05.000"

// NewHandler returns a human-readable slog handler writing to w. Color is used only when w is a
// terminal.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(w),
	})
}

// New is a shortcut for slog.New(NewHandler(w, level)).
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(NewHandler(w, level))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Elapsed is a log attribute for a duration, rounded to milliseconds.
func Elapsed(d time.Duration) slog.Attr {
	return slog.Duration("elapsed", d.Round(time.Millisecond))
}
