// Command hillclimb reads a heightmap and prints the fewest steps from the
// start marker (part 1) and from the best lowest cell (part 2) to the target.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/tracelog"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the requested parts and writes one line per part to outW.
// Logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := tracelog.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := tracelog.WithLogger(context.Background(), logger)

	return solve(ctx, outW, cfg)
}

type partFunc func(*heightmap.Heightmap, ...climb.Option) (uint64, error)

var parts = map[int]partFunc{
	1: climb.FromStart,
	2: climb.FromLowest,
}

func solve(ctx context.Context, outW io.Writer, cfg *runConfig) error {
	logger := tracelog.FromContext(ctx)

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	hm, err := heightmap.Parse(f)
	if err != nil {
		return err
	}
	logger.Info("Heightmap loaded.",
		"path", cfg.Input,
		"width", hm.Elevations.Width(),
		"height", hm.Elevations.Height(),
		"start", hm.Start.String(),
		"target", hm.Target.String(),
	)

	opts := []climb.Option{climb.WithStrategy(cfg.StrategyValue())}
	if cfg.Trace {
		opts = append(opts, climb.WithLogger(logger))
	}

	for _, p := range cfg.Parts {
		steps, err := parts[p](hm, opts...)
		if err != nil {
			return fmt.Errorf("part %d: %w", p, err)
		}
		logger.Debug("Part solved.", "part", p, "steps", steps)
		fmt.Fprintf(outW, "part%d: %d\n", p, steps)
	}

	return nil
}
