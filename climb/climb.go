package climb

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/grid"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
	"github.com/katalvlaran/hillclimb/tracelog"
)

// Part1 parses input and returns FromStart.
func Part1(input string, opts ...Option) (uint64, error) {
	hm, err := heightmap.ParseString(input)
	if err != nil {
		return 0, err
	}

	return FromStart(hm, opts...)
}

// Part2 parses input and returns FromLowest.
func Part2(input string, opts ...Option) (uint64, error) {
	hm, err := heightmap.ParseString(input)
	if err != nil {
		return 0, err
	}

	return FromLowest(hm, opts...)
}

// FromStart returns the fewest steps from hm.Start to hm.Target when each
// step climbs at most one unit. It returns ErrNoPath if the target is out of reach.
func FromStart(hm *heightmap.Heightmap, opts ...Option) (uint64, error) {
	if hm == nil {
		return 0, ErrNilHeightmap
	}
	s, err := search(hm.Elevations, hm.Start, Ascending, build(opts, "start"), false)
	if err != nil {
		return 0, err
	}
	cost := s.costs.Get(hm.Target)
	if cost == pathfind.Unreached {
		return 0, fmt.Errorf("%w: %v to %v", ErrNoPath, hm.Start, hm.Target)
	}

	return cost, nil
}

// FromLowest returns the fewest steps from any cell at heightmap.Lowest to
// hm.Target. It searches once, backwards from the target. It returns
// ErrNoLowPoint if no such cell reaches the target.
func FromLowest(hm *heightmap.Heightmap, opts ...Option) (uint64, error) {
	if hm == nil {
		return 0, ErrNilHeightmap
	}
	s, err := search(hm.Elevations, hm.Target, Descending, build(opts, "lowest"), false)
	if err != nil {
		return 0, err
	}

	best, found := pathfind.Unreached, false
	for c, elev := range hm.Elevations.All() {
		if elev != heightmap.Lowest {
			continue
		}
		if cost := s.costs.Get(c); cost < best {
			best, found = cost, true
		}
	}
	if !found {
		return 0, ErrNoLowPoint
	}

	return best, nil
}

// Route returns one shortest climb from hm.Start to hm.Target, both included.
func Route(hm *heightmap.Heightmap, opts ...Option) ([]grid.Coord, error) {
	if hm == nil {
		return nil, ErrNilHeightmap
	}
	s, err := search(hm.Elevations, hm.Start, Ascending, build(opts, "route"), true)
	if err != nil {
		return nil, err
	}
	path, err := s.pathTo(hm.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, hm.Start, hm.Target)
	}

	return path, nil
}

func build(opts []Option, run string) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Observer == nil && o.Logger != nil {
		o.Observer = tracelog.New(o.Logger, "run", run, "strategy", o.Strategy.String())
	}

	return o
}

// outcome is the strategy-independent view of one search.
type outcome struct {
	costs  *grid.Grid[uint64]
	pathTo func(grid.Coord) ([]grid.Coord, error)
}

func search(g *grid.Grid[int], src grid.Coord, rule pathfind.Predicate[int], o Options, withPath bool) (*outcome, error) {
	switch o.Strategy {
	case StrategyFrontier:
		popts := []pathfind.Option{pathfind.WithObserver(o.Observer)}
		if withPath {
			popts = append(popts, pathfind.WithReturnPath())
		}
		res, err := pathfind.Solve(g, src, rule, popts...)
		if err != nil {
			return nil, fmt.Errorf("climb: %w", err)
		}
		return &outcome{costs: res.Costs, pathTo: res.PathTo}, nil

	case StrategyBFS:
		var bopts []bfs.Option
		if o.Observer != nil {
			obs := o.Observer
			bopts = append(bopts, bfs.WithOnVisit(func(at grid.Coord, depth int) error {
				obs.OnVisit(at, int64(g.Get(at)), uint64(depth))
				return nil
			}))
		}
		res, err := bfs.BFS(g, src, rule, bopts...)
		if err != nil {
			return nil, fmt.Errorf("climb: %w", err)
		}
		costs := grid.New(g.Width(), g.Height(), pathfind.Unreached)
		for c, d := range res.Depth {
			costs.Set(c, uint64(d))
		}
		return &outcome{costs: costs, pathTo: res.PathTo}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.Strategy)
	}
}
