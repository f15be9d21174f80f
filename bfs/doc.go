// Package bfs runs a plain FIFO breadth-first search over an implicit grid
// graph, the same graph pathfind.Solve explores.
//
// What:
//
//   - Vertices are grid cells; a step a→b is allowed iff canMove(elevation(a),
//     elevation(b)) holds for the orthogonal neighbour b.
//   - Each cell is enqueued the first time it is seen, so its depth is its
//     fewest-step distance from the start.
//
// Why:
//
//   - Independent reference: bfs shares no code with pathfind's frontier, which
//     makes it a useful oracle when checking the cost-ordered search.
//   - Cheaper constant factors when every edge weight is 1.
//
// Options:
//
//   - WithContext(ctx):       cancellation checked once per dequeue.
//   - WithOnEnqueue/Dequeue:  observe queue traffic.
//   - WithOnVisit(fn):        called per visited cell; an error aborts the search.
//   - WithMaxDepth(d):        do not enqueue cells deeper than d (d > 0).
//
// Errors:
//
//   - ErrGridNil:             nil grid.
//   - ErrPredicateNil:        nil traversal predicate.
//   - ErrStartOutOfBounds:    start outside the grid.
//   - ErrOptionViolation:     invalid option value (e.g. negative depth).
//
// Complexity: O(W×H) time and memory.
package bfs
