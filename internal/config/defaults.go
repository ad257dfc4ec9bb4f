package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultBasicMaxRun    = 3
	DefaultWindowedMinRun = 4
	DefaultWindowedMaxRun = 10
	DefaultParallel       = 4
)

// DefaultConfig returns a Config with the standard policy windows:
// basic run cap 3, windowed runs 4..10.
func DefaultConfig() *Config {
	return &Config{
		Basic: BasicConfig{
			MaxRun: DefaultBasicMaxRun,
		},
		Windowed: WindowedConfig{
			MinRun: DefaultWindowedMinRun,
			MaxRun: DefaultWindowedMaxRun,
		},
		Solver: SolverConfig{
			Parallel: DefaultParallel,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Path:   false,
		},
	}
}

// setDefaults registers every key with viper so that environment overrides
// apply even when no config file is present.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("basic.max_run", d.Basic.MaxRun)
	v.SetDefault("windowed.min_run", d.Windowed.MinRun)
	v.SetDefault("windowed.max_run", d.Windowed.MaxRun)
	v.SetDefault("solver.parallel", d.Solver.Parallel)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
}
