package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/grid"
)

func always(_, _ int) bool { return true }

func climb(from, to int) bool { return to <= from+1 }

func mustGrid(t *testing.T, rows [][]int) *grid.Grid[int] {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}})

	if _, err := bfs.BFS[int](nil, grid.C(0, 0), always); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(0, 0), nil); !errors.Is(err, bfs.ErrPredicateNil) {
		t.Errorf("nil predicate: want ErrPredicateNil, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(5, 0), always); !errors.Is(err, bfs.ErrStartOutOfBounds) {
		t.Errorf("bad start: want ErrStartOutOfBounds, got %v", err)
	}
	if _, err := bfs.BFS(g, grid.C(0, 0), always, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial 1×1 grid.
func TestBFS_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]int{{3}})
	res, err := bfs.BFS(g, grid.C(0, 0), always)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []grid.Coord{{0, 0}}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[grid.C(0, 0)]; d != 0 {
		t.Errorf("Depth[(0,0)] = %d; want 0", d)
	}
	path, err := res.PathTo(grid.C(0, 0))
	if err != nil || len(path) != 1 {
		t.Errorf("PathTo(start) = %v, %v; want single-cell path", path, err)
	}
}

// TestBFS_Layers checks depths on an open 3×3 grid from the centre.
func TestBFS_Layers(t *testing.T) {
	g := grid.New(3, 3, 0)
	res, err := bfs.BFS(g, grid.C(1, 1), always)
	if err != nil {
		t.Fatal(err)
	}
	want := map[grid.Coord]int{
		{1, 1}: 0,
		{1, 0}: 1, {2, 1}: 1, {1, 2}: 1, {0, 1}: 1,
		{0, 0}: 2, {2, 0}: 2, {0, 2}: 2, {2, 2}: 2,
	}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	// First layer follows the grid's N, E, S, W order.
	if got := res.Order[1:5]; !reflect.DeepEqual(got, []grid.Coord{{1, 0}, {2, 1}, {1, 2}, {0, 1}}) {
		t.Errorf("first layer = %v", got)
	}
}

// TestBFS_DirectedPredicate verifies one-way steps are respected.
func TestBFS_DirectedPredicate(t *testing.T) {
	// Climbing from 0 onto 5 is forbidden, descending from 5 onto 0 is fine.
	g := mustGrid(t, [][]int{{0, 5}})

	up, err := bfs.BFS(g, grid.C(0, 0), climb)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := up.Depth[grid.C(1, 0)]; ok {
		t.Error("climb from 0 to 5 should be blocked")
	}
	if _, err := up.PathTo(grid.C(1, 0)); err == nil {
		t.Error("PathTo unreachable cell should fail")
	}

	down, err := bfs.BFS(g, grid.C(1, 0), climb)
	if err != nil {
		t.Fatal(err)
	}
	if d := down.Depth[grid.C(0, 0)]; d != 1 {
		t.Errorf("descent depth = %d; want 1", d)
	}
}

// TestBFS_MaxDepth limits exploration.
func TestBFS_MaxDepth(t *testing.T) {
	g := grid.New(5, 1, 0)
	res, err := bfs.BFS(g, grid.C(0, 0), always, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Depth) != 3 {
		t.Errorf("reached %d cells; want 3", len(res.Depth))
	}
}

// TestBFS_Hooks counts enqueue, dequeue and visit callbacks.
func TestBFS_Hooks(t *testing.T) {
	g := grid.New(2, 2, 0)
	var enq, deq, vis int
	_, err := bfs.BFS(g, grid.C(0, 0), always,
		bfs.WithOnEnqueue(func(grid.Coord, int) { enq++ }),
		bfs.WithOnDequeue(func(grid.Coord, int) { deq++ }),
		bfs.WithOnVisit(func(grid.Coord, int) error { vis++; return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if enq != 4 || deq != 4 || vis != 4 {
		t.Errorf("hooks enq=%d deq=%d vis=%d; want 4 each", enq, deq, vis)
	}
}

// TestBFS_VisitError aborts on hook failure.
func TestBFS_VisitError(t *testing.T) {
	stop := errors.New("stop")
	g := grid.New(3, 3, 0)
	_, err := bfs.BFS(g, grid.C(0, 0), always,
		bfs.WithOnVisit(func(at grid.Coord, _ int) error {
			if at == grid.C(1, 1) {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(grid.New(2, 2, 0), grid.C(0, 0), always, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_PathTo rebuilds a route around a wall.
func TestBFS_PathTo(t *testing.T) {
	// 9 is a wall for climb from 0.
	g := mustGrid(t, [][]int{
		{0, 9, 0},
		{0, 9, 0},
		{0, 0, 0},
	})
	res, err := bfs.BFS(g, grid.C(0, 0), climb)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(grid.C(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := []grid.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
}
