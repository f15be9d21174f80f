package bfs

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/hillclimb/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker[E constraints.Integer] struct {
	grid    *grid.Grid[E]
	canMove func(from, to E) bool
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	seen    *grid.Grid[bool]
	nbrs    []grid.Coord
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, following a step
// a→b only when canMove(g.Get(a), g.Get(b)) holds.
// Returns ErrGridNil, ErrPredicateNil or ErrStartOutOfBounds for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied hook error.
func BFS[E constraints.Integer](g *grid.Grid[E], start grid.Coord, canMove func(from, to E) bool, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if canMove == nil {
		return nil, ErrPredicateNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := g.Len()
	w := &walker[E]{
		grid:    g,
		canMove: canMove,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		seen:    grid.New(g.Width(), g.Height(), false),
		nbrs:    make([]grid.Coord, 0, 4),
		res: &BFSResult{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}

	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks at seen at depth d, records its parent and adds it to the queue.
func (w *walker[E]) enqueue(at grid.Coord, d int, parent grid.Coord) {
	w.seen.Set(at, true)
	w.res.Depth[at] = d
	if d > 0 {
		w.res.Parent[at] = parent
	}
	w.opts.OnEnqueue(at, d)
	w.queue = append(w.queue, queueItem{at: at, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[E]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.at, item.depth)

	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[E]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.at)
	if err := w.opts.OnVisit(item.at, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
	}

	return nil
}

// enqueueNeighbors applies the predicate and MaxDepth, and enqueues each
// unseen neighbour.
func (w *walker[E]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	height := w.grid.Get(item.at)
	w.nbrs = w.grid.AppendNeighbours(w.nbrs[:0], item.at)
	for _, nbr := range w.nbrs {
		if w.seen.Get(nbr) || !w.canMove(height, w.grid.Get(nbr)) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.at)
	}
}
