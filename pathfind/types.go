package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/grid"
)

// Unreached is the cost recorded for cells the search never reached.
const Unreached uint64 = math.MaxUint64

// Sentinel errors returned by Solve and Result.
var (
	// ErrNilGrid indicates that a nil grid was passed to Solve.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrNilPredicate indicates that no traversal predicate was supplied.
	ErrNilPredicate = errors.New("pathfind: traversal predicate is nil")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("pathfind: source outside grid")

	// ErrBadMaxCost indicates WithMaxCost was given the Unreached sentinel.
	ErrBadMaxCost = errors.New("pathfind: MaxCost must be below Unreached")

	// ErrNoPath indicates the requested cell was not reached.
	ErrNoPath = errors.New("pathfind: cell not reachable from source")

	// ErrPathNotRecorded indicates PathTo was called without WithReturnPath.
	ErrPathNotRecorded = errors.New("pathfind: predecessors not recorded")
)

// Predicate reports whether a step from a cell of elevation from onto an
// adjacent cell of elevation to is allowed.
type Predicate[E any] func(from, to E) bool

// Reverse returns the predicate for the same graph with every edge flipped.
func Reverse[E any](p Predicate[E]) Predicate[E] {
	return func(from, to E) bool { return p(to, from) }
}

// Observer receives trace callbacks from Solve. Implementations must not
// retain or mutate the grid.
type Observer interface {
	// OnVisit is called when a cell is popped from the frontier at its final cost.
	OnVisit(at grid.Coord, elevation int64, cost uint64)
	// OnImprove is called when a cell's recorded cost drops from old to cost
	// through the step via→at.
	OnImprove(at, via grid.Coord, old, cost uint64)
}

// Hooks adapts plain functions to Observer. Nil fields are skipped.
type Hooks struct {
	Visit   func(at grid.Coord, elevation int64, cost uint64)
	Improve func(at, via grid.Coord, old, cost uint64)
}

// OnVisit implements Observer.
func (h Hooks) OnVisit(at grid.Coord, elevation int64, cost uint64) {
	if h.Visit != nil {
		h.Visit(at, elevation, cost)
	}
}

// OnImprove implements Observer.
func (h Hooks) OnImprove(at, via grid.Coord, old, cost uint64) {
	if h.Improve != nil {
		h.Improve(at, via, old, cost)
	}
}

// Options configures Solve.
//
// Observer   – trace receiver; defaults to a no-op.
// ReturnPath – keep predecessors for Result.PathTo.
// MaxCost    – cells farther than MaxCost hops stay Unreached. Default: no cap.
type Options struct {
	Observer   Observer
	ReturnPath bool
	MaxCost    uint64

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with a no-op observer, no predecessor
// tracking and no distance cap.
func DefaultOptions() Options {
	return Options{
		Observer:   Hooks{},
		ReturnPath: false,
		MaxCost:    Unreached - 1,
	}
}

// WithObserver registers o for trace callbacks. A nil o keeps the default.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(opts *Options) {
		opts.ReturnPath = true
	}
}

// WithMaxCost stops labelling cells beyond max hops.
// Passing Unreached is recorded as ErrBadMaxCost and surfaced by Solve.
func WithMaxCost(max uint64) Option {
	return func(opts *Options) {
		if max == Unreached {
			opts.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, max)
			return
		}
		opts.MaxCost = max
	}
}

// Stats counts the work done by one Solve call.
type Stats struct {
	Pops         int // cells popped from the frontier
	Improvements int // strict cost decreases recorded
}
