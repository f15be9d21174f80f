package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillclimb/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// runConfig is the merged result of defaults, config file and flags.
type runConfig struct {
	config.Config
}

// parseArgs processes command-line arguments. Precedence, lowest first:
// built-in defaults, the -config file, explicitly set flags, the positional
// INPUT argument. It returns a bool asking the caller to exit cleanly.
func parseArgs(args []string, output io.Writer) (*runConfig, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hillclimb - fewest steps up a heightmap.

Usage:
  hillclimb [options] INPUT

Arguments:
  INPUT
    Path to the heightmap text file.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a .yaml or .hcl config file.")
	partFlag := flagSet.Int("part", 0, "Part to solve: 1, 2, or 0 for both.")
	strategyFlag := flagSet.String("strategy", def.Strategy, "Search engine: 'frontier' or 'bfs'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")
	traceFlag := flagSet.Bool("trace", false, "Log every visited cell and cost update (needs -log-level debug).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "part":
			if *partFlag == 0 {
				cfg.Parts = []int{1, 2}
			} else {
				cfg.Parts = []int{*partFlag}
			}
		case "strategy":
			cfg.Strategy = *strategyFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "trace":
			cfg.Trace = *traceFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.Input = flagSet.Arg(0)
	}
	slog.Debug("Arguments parsed.", "input", cfg.Input)

	if cfg.Input == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &runConfig{Config: cfg}, false, nil
}
