package climb

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/hillclimb/pathfind"
)

// Sentinel errors returned by the adapters.
var (
	// ErrNilHeightmap indicates a nil *heightmap.Heightmap argument.
	ErrNilHeightmap = errors.New("climb: heightmap is nil")
	// ErrNoPath indicates the target cannot be reached from the start.
	ErrNoPath = errors.New("climb: no path from start to target")
	// ErrNoLowPoint indicates no lowest-elevation cell can reach the target.
	ErrNoLowPoint = errors.New("climb: no lowest cell reaches the target")
	// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("climb: unknown strategy")
)

// Ascending allows a step onto a neighbour at most one unit higher.
func Ascending(from, to int) bool {
	return to <= from+1
}

// Descending is Ascending with every edge reversed: a step onto a neighbour
// at most one unit lower.
var Descending = pathfind.Reverse[int](Ascending)

// Strategy selects the search engine behind the adapters. Both yield the
// same answers.
type Strategy int

const (
	// StrategyFrontier runs pathfind.Solve with its cost-ordered frontier.
	StrategyFrontier Strategy = iota
	// StrategyBFS runs the FIFO search in package bfs.
	StrategyBFS
)

// Strategies maps strategy names to values.
var Strategies = map[string]Strategy{
	"frontier": StrategyFrontier,
	"bfs":      StrategyBFS,
}

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyFrontier:
		return "frontier"
	case StrategyBFS:
		return "bfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy looks up a strategy by name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := Strategies[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// Options configures an adapter call.
type Options struct {
	Logger   *slog.Logger
	Observer pathfind.Observer
	Strategy Strategy
}

// Option represents a functional option for the adapters.
type Option func(*Options)

// DefaultOptions returns the frontier strategy with tracing disabled.
func DefaultOptions() Options {
	return Options{Strategy: StrategyFrontier}
}

// WithLogger traces the search through l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver forwards raw search callbacks to obs.
// It takes precedence over WithLogger.
func WithObserver(obs pathfind.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithStrategy selects the search engine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}
