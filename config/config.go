// Package config loads run settings for the hillclimb command from YAML or
// HCL files.
//
// Example YAML:
//
//	input: day12.txt
//	parts: [1, 2]
//	strategy: frontier
//	log-level: debug
//	log-format: text
//	trace: true
//
// The same settings in HCL use underscores: log_level, log_format.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/tracelog"
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than .yaml, .yml or .hcl.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid indicates a setting with an unusable value.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config holds the settings for one run.
type Config struct {
	Input     string `yaml:"input" hcl:"input,optional"`
	Parts     []int  `yaml:"parts" hcl:"parts,optional"`
	Strategy  string `yaml:"strategy" hcl:"strategy,optional"`
	LogLevel  string `yaml:"log-level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log-format" hcl:"log_format,optional"`
	Trace     bool   `yaml:"trace" hcl:"trace,optional"`
}

// Default returns both parts, the frontier strategy and info-level text logs.
func Default() Config {
	return Config{
		Parts:     []int{1, 2},
		Strategy:  climb.StrategyFrontier.String(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path and fills unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".hcl":
		file, diags := hclparse.NewParser().ParseHCL(data, path)
		if diags.HasErrors() {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, diags)
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, diags)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg.fillDefaults()

	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if len(c.Parts) == 0 {
		c.Parts = d.Parts
	}
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// Validate reports the first unusable setting. Input is not checked; the
// caller may supply it separately.
func (c Config) Validate() error {
	if _, err := climb.ParseStrategy(c.Strategy); err != nil {
		names := maps.Keys(climb.Strategies)
		slices.Sort(names)
		return fmt.Errorf("%w: strategy %q, want one of %s", ErrInvalid, c.Strategy, strings.Join(names, ", "))
	}
	if _, err := tracelog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q, want text or json", ErrInvalid, c.LogFormat)
	}
	if len(c.Parts) == 0 {
		return fmt.Errorf("%w: no parts selected", ErrInvalid)
	}
	for _, p := range c.Parts {
		if p != 1 && p != 2 {
			return fmt.Errorf("%w: part %d, want 1 or 2", ErrInvalid, p)
		}
	}

	return nil
}

// StrategyValue returns the parsed strategy. Call Validate first.
func (c Config) StrategyValue() climb.Strategy {
	s, _ := climb.ParseStrategy(c.Strategy)
	return s
}
