// Package climb answers the two hill-climbing questions posed over a
// heightmap.Heightmap, as fixed configurations of pathfind.Solve.
//
// FromStart (Part1):
//
//   - Source: the 'S' marker. Rule: Ascending, a step may rise at most one unit.
//   - Answer: the cost recorded at the 'E' marker, or ErrNoPath.
//
// FromLowest (Part2):
//
//   - Source: the 'E' marker. Rule: Descending, the Ascending rule with its
//     arguments swapped, so the search walks every edge backwards.
//   - One search from 'E' therefore yields, for every cell, its distance to 'E'
//     under the forward rule.
//   - Answer: the smallest cost over cells at heightmap.Lowest, or ErrNoLowPoint.
//
// The unreached sentinel of the cost map never escapes this package: a
// missing answer is always reported as an error.
//
// Options:
//
//   - WithLogger(l):   trace every visit and improvement at Debug level.
//   - WithObserver(o): receive raw pathfind callbacks.
//   - WithStrategy(s): StrategyFrontier (default) or StrategyBFS.
package climb
