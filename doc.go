// Package hillclimb finds the fewest steps across a terrain heightmap.
//
// A heightmap is a rectangle of letters: 'a' is the lowest elevation and
// 'z' the highest, 'S' marks the start (elevation a) and 'E' the target
// (elevation z). A step goes to an orthogonal neighbour at most one unit
// higher; descents of any size are allowed.
//
// Two questions are answered:
//
//	part 1: fewest steps from S to E
//	part 2: fewest steps to E from any lowest cell
//
// Part 2 runs a single search backwards from E with the step rule reversed
// and takes the minimum over all reached lowest cells.
//
// Packages:
//
//	grid/     : dense rectangular Grid[T] with Coord and 4-neighbour iteration
//	frontier/ : indexed min-priority queue keyed by (cost, Coord)
//	pathfind/ : uniform-cost search over a Grid with a movement predicate
//	bfs/      : breadth-first traversal, used as a cross-check engine
//	heightmap/: text parsing into elevations, start and target
//	climb/    : the two questions, strategy selection and route recovery
//	tracelog/ : slog wiring and a search observer that logs each step
//	config/   : YAML/HCL run configuration
//
// The hillclimb command in cmd/hillclimb ties them together.
package hillclimb
