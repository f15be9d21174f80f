package pathfind

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/hillclimb/frontier"
	"github.com/katalvlaran/hillclimb/grid"
)

// Solve labels every cell of g with its fewest-step distance from source,
// where a step a→b is allowed iff canMove(g.Get(a), g.Get(b)).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. canMove must be non-nil (ErrNilPredicate).
//  3. Options must be valid (ErrBadMaxCost).
//  4. source must lie in g (ErrSourceOutOfBounds).
//
// The returned Result owns a fresh cost map of g's shape; unreachable
// cells hold Unreached. g is only read.
func Solve[E constraints.Integer](g *grid.Grid[E], source grid.Coord, canMove Predicate[E], opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if canMove == nil {
		return nil, ErrNilPredicate
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v not in %dx%d", ErrSourceOutOfBounds, source, g.Width(), g.Height())
	}

	r := &runner[E]{
		g:       g,
		canMove: canMove,
		options: cfg,
		res: &Result{
			Source: source,
			Costs:  grid.New(g.Width(), g.Height(), Unreached),
		},
		queue: frontier.New(g.Width() + g.Height()),
		nbrs:  make([]grid.Coord, 0, 4),
	}
	if cfg.ReturnPath {
		r.res.prev = grid.New(g.Width(), g.Height(), source)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner[E constraints.Integer] struct {
	g       *grid.Grid[E]
	canMove Predicate[E]
	options Options
	res     *Result
	queue   *frontier.Queue
	nbrs    []grid.Coord // neighbour buffer reused across pops
}

// init labels the source with cost 0 and queues it.
func (r *runner[E]) init() {
	r.res.Costs.Set(r.res.Source, 0)
	// The queue is empty, so Insert cannot report a duplicate.
	_ = r.queue.Insert(0, r.res.Source)
}

// process pops cells in (cost, coordinate) order until the queue is empty.
func (r *runner[E]) process() error {
	for {
		e, ok := r.queue.PopMin()
		if !ok {
			return nil
		}
		r.res.Stats.Pops++
		r.options.Observer.OnVisit(e.At, int64(r.g.Get(e.At)), e.Cost)
		if err := r.relax(e); err != nil {
			return err
		}
	}
}

// relax tries to improve every neighbour of e.At reachable under the predicate.
func (r *runner[E]) relax(e frontier.Entry) error {
	height := r.g.Get(e.At)
	candidate := e.Cost + 1
	if candidate > r.options.MaxCost {
		return nil
	}

	r.nbrs = r.g.AppendNeighbours(r.nbrs[:0], e.At)
	for _, n := range r.nbrs {
		if !r.canMove(height, r.g.Get(n)) {
			continue
		}
		current := r.res.Costs.Get(n)
		if candidate >= current {
			continue
		}

		// Drop the stale pending pair, if any, so each cell is queued once.
		r.queue.Remove(current, n)
		r.res.Costs.Set(n, candidate)
		if r.res.prev != nil {
			r.res.prev.Set(n, e.At)
		}
		r.res.Stats.Improvements++
		r.options.Observer.OnImprove(n, e.At, current, candidate)

		if err := r.queue.Insert(candidate, n); err != nil {
			return fmt.Errorf("pathfind: requeue %v: %w", n, err)
		}
	}

	return nil
}
