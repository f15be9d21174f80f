// Package tracelog connects search tracing to log/slog.
//
// Observer turns pathfind callbacks into Debug records. WithLogger and
// FromContext carry a *slog.Logger through a context.Context, and NewLogger
// builds a text or JSON logger from CLI-style level and format strings.
package tracelog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/hillclimb/grid"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("tracelog: unknown level %q", s)
	}
}

// NewLogger creates a logger writing to w. format is "text" or "json";
// an unknown level or format falls back to info/text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Observer logs every visit and cost improvement of a search at Debug
// level. It satisfies pathfind.Observer.
type Observer struct {
	ctx    context.Context
	logger *slog.Logger
}

// New returns an Observer writing to logger. A nil logger uses slog.Default().
// attrs are attached to every record, e.g. slog.String("part", "1").
func New(logger *slog.Logger, attrs ...any) *Observer {
	if logger == nil {
		logger = slog.Default()
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	return &Observer{ctx: context.Background(), logger: logger}
}

// Enabled reports whether the observer would emit anything.
func (o *Observer) Enabled() bool {
	return o.logger.Enabled(o.ctx, slog.LevelDebug)
}

// OnVisit logs a cell popped from the frontier.
func (o *Observer) OnVisit(at grid.Coord, elevation int64, cost uint64) {
	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "visit",
		slog.Int("x", at.X),
		slog.Int("y", at.Y),
		slog.Int64("elevation", elevation),
		slog.Uint64("cost", cost),
	)
}

// OnImprove logs a strict cost decrease.
func (o *Observer) OnImprove(at, via grid.Coord, old, cost uint64) {
	attrs := []slog.Attr{
		slog.Int("x", at.X),
		slog.Int("y", at.Y),
		slog.String("via", via.String()),
		slog.Uint64("cost", cost),
	}
	if old != pathfind.Unreached {
		attrs = append(attrs, slog.Uint64("old", old))
	}
	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "improve", attrs...)
}
