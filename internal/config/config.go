// Package config loads and validates crucible's runtime configuration:
// policy run windows, logging and report output.
package config

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
)

// Config is the root configuration for the crucible CLI.
type Config struct {
	Basic    BasicConfig    `mapstructure:"basic" yaml:"basic"`
	Windowed WindowedConfig `mapstructure:"windowed" yaml:"windowed"`
	Solver   SolverConfig   `mapstructure:"solver" yaml:"solver"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// BasicConfig parameterizes the run-cap policy.
type BasicConfig struct {
	MaxRun int `mapstructure:"max_run" yaml:"max_run" validate:"min=1"`
}

// WindowedConfig parameterizes the minimum+maximum run policy.
type WindowedConfig struct {
	MinRun int `mapstructure:"min_run" yaml:"min_run" validate:"min=0"`
	MaxRun int `mapstructure:"max_run" yaml:"max_run" validate:"min=1,gtefield=MinRun"`
}

// SolverConfig controls how many grids are solved at once.
type SolverConfig struct {
	Parallel int `mapstructure:"parallel" yaml:"parallel" validate:"min=1,max=256"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// OutputConfig selects how reports are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
	Path   bool   `mapstructure:"path" yaml:"path"`
}

// BasicPolicy returns the configured run-cap policy.
func (c *Config) BasicPolicy() dijkstra.Basic {
	return dijkstra.Basic{MaxRun: c.Basic.MaxRun}
}

// WindowedPolicy returns the configured windowed policy.
func (c *Config) WindowedPolicy() dijkstra.Windowed {
	return dijkstra.Windowed{MinRun: c.Windowed.MinRun, MaxRun: c.Windowed.MaxRun}
}

// SlogLevel maps Logging.Level onto a slog.Level; unknown names map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
