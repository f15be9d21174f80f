// Package frontier implements the pending set of a uniform-cost grid search:
// an ordered collection of (cost, coordinate) entries holding at most one
// entry per coordinate.
//
// Overview:
//
//   - Insert adds an entry for a coordinate that has none pending.
//   - Remove deletes an exact (cost, coordinate) pair, and is a no-op otherwise.
//   - PopMin extracts the lexicographically smallest pair: lowest cost first,
//     ties broken by grid.Coord.Compare (column, then row).
//
// A search that improves a coordinate's label removes the stale pair and
// inserts the fresh one. The queue therefore never needs a decrease-key
// primitive and never yields a stale entry.
//
// Implementation:
//
//   - An index-based binary heap (container/heap) stores the entries.
//   - A side table maps each pending coordinate to its heap slot, so Remove
//     and Contains run without scanning.
//
// Complexity:
//
//   - Insert, Remove, PopMin: O(log n).
//   - Contains, Peek, Len:    O(1).
//
// Errors:
//
//   - ErrDuplicate: Insert was called for a coordinate that already has a pending entry.
package frontier
