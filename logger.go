package wire3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by wire3d. By default, wire3d produces no log output.
// Pass nil to restore the default silent behavior.
//
// Log levels used by wire3d:
//   - [slog.LevelDebug]: skipped primitives (culled segments, polygons with too few vertices)
//   - [slog.LevelInfo]: lifecycle events (Renderer creation, mesh loading)
//   - [slog.LevelError]: contract violations, logged right before panicking
//
// Example:
//
//	wire3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by wire3d.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
