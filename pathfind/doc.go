// Package pathfind computes single-source shortest hop counts over an
// implicit grid graph.
//
// Overview:
//
//   - Cells of a grid.Grid are vertices; each cell links to its orthogonal
//     neighbours.
//   - An edge a→b exists iff the caller's Predicate(elevation(a), elevation(b))
//     holds. The predicate need not be symmetric, so the graph is directed.
//   - Every edge costs 1. Solve is Dijkstra specialised to unit weights: a
//     breadth-first search driven by a cost-ordered frontier.Queue rather than
//     a FIFO, which keeps it correct should edge costs ever vary.
//
// Algorithm:
//
//  1. Every cost is Unreached except the source, which is 0; (0, source) is queued.
//  2. Pop the smallest (cost, cell). Stop when the queue is empty.
//  3. For each neighbour the predicate permits, candidate = cost+1. Skip unless
//     candidate is strictly below the neighbour's recorded cost. Otherwise remove
//     the neighbour's stale pending pair, record candidate and queue it.
//
// Because stale pairs are removed as soon as a cell improves, a popped cell
// is already at its final cost and is never expanded twice.
//
// Options:
//
//   - WithObserver(o):  receive OnVisit / OnImprove callbacks (tracing, metrics, tests).
//   - WithReturnPath(): keep predecessors so Result.PathTo can rebuild a route.
//   - WithMaxCost(n):   do not label cells farther than n hops.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilPredicate, ErrSourceOutOfBounds: invalid input to Solve.
//   - ErrBadMaxCost: WithMaxCost received a zero-width limit it cannot honour.
//   - ErrNoPath, ErrPathNotRecorded: returned by Result.PathTo.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell is queued at most once per improvement.
//   - Space: O(V) for the cost map, predecessor map and queue.
//
// Solve is synchronous and keeps no state between calls.
package pathfind
