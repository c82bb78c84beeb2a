package piechart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so Layout and Tap
// never build their attributes while no logger is installed.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// logger is shared by Layout, View and the fynepie widget.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(newNopLogger())
}

// SetLogger installs the logger used by Layout, View and the fynepie
// widget. Pass nil to silence them again, which is the default.
//
// Records:
//   - [slog.LevelDebug] "piechart: layout": item count, total and radii
//     of every layout
//   - [slog.LevelDebug] "piechart: degenerate slice": a slice with no
//     outline, by index and label
//   - [slog.LevelDebug] "piechart: tap" and "piechart: selection reset":
//     Selection transitions of an interactive View
//   - [slog.LevelWarn] "piechart: layout rejected": items Layout refused
//
// The piechart command installs its console and rotated-file logger here
// for the duration of a run:
//
//	piechart.SetLogger(logger)
//	defer piechart.SetLogger(nil)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
