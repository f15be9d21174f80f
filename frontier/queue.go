package frontier

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hillclimb/grid"
)

// Queue is a min-ordered set of Entry values with at most one entry per
// coordinate. The zero value is ready to use.
type Queue struct {
	h entryHeap
}

// New returns a Queue with room for capacity entries.
func New(capacity int) *Queue {
	return &Queue{h: entryHeap{
		items: make([]Entry, 0, capacity),
		slot:  make(map[grid.Coord]int, capacity),
	}}
}

// Len returns the number of pending entries.
func (q *Queue) Len() int { return q.h.Len() }

// Contains reports whether at has a pending entry, and its cost.
func (q *Queue) Contains(at grid.Coord) (uint64, bool) {
	i, ok := q.h.slot[at]
	if !ok {
		return 0, false
	}

	return q.h.items[i].Cost, true
}

// Insert adds (cost, at). It returns ErrDuplicate if at is already pending;
// callers remove the stale pair first.
func (q *Queue) Insert(cost uint64, at grid.Coord) error {
	if i, ok := q.h.slot[at]; ok {
		return fmt.Errorf("%w: %v pending at cost %d", ErrDuplicate, at, q.h.items[i].Cost)
	}
	heap.Push(&q.h, Entry{Cost: cost, At: at})

	return nil
}

// Remove deletes the exact pair (cost, at) and reports whether it was present.
// A pending entry for at with a different cost is left untouched.
func (q *Queue) Remove(cost uint64, at grid.Coord) bool {
	i, ok := q.h.slot[at]
	if !ok || q.h.items[i].Cost != cost {
		return false
	}
	heap.Remove(&q.h, i)

	return true
}

// PopMin removes and returns the smallest entry. ok is false when the queue is empty.
func (q *Queue) PopMin() (e Entry, ok bool) {
	if q.h.Len() == 0 {
		return Entry{}, false
	}

	return heap.Pop(&q.h).(Entry), true
}

// Peek returns the smallest entry without removing it.
func (q *Queue) Peek() (e Entry, ok bool) {
	if q.h.Len() == 0 {
		return Entry{}, false
	}

	return q.h.items[0], true
}

// Reset empties the queue, keeping its allocated storage.
func (q *Queue) Reset() {
	q.h.items = q.h.items[:0]
	clear(q.h.slot)
}

// entryHeap implements heap.Interface and keeps slot in sync with every move.
type entryHeap struct {
	items []Entry
	slot  map[grid.Coord]int
}

func (h entryHeap) Len() int           { return len(h.items) }
func (h entryHeap) Less(i, j int) bool { return h.items[i].Less(h.items[j]) }

func (h entryHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slot[h.items[i].At] = i
	h.slot[h.items[j].At] = j
}

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x any) {
	if h.slot == nil {
		h.slot = make(map[grid.Coord]int)
	}
	e := x.(Entry)
	h.slot[e.At] = len(h.items)
	h.items = append(h.items, e)
}

// Pop is called by heap.Pop and heap.Remove after the victim was moved to the end.
func (h *entryHeap) Pop() any {
	n := len(h.items)
	e := h.items[n-1]
	h.items = h.items[:n-1]
	delete(h.slot, e.At)

	return e
}
