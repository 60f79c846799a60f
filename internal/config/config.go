// Package config loads scoregraph CLI configuration through viper, from
// whatever config file and environment sources the caller has set up on
// the global viper instance. No command-line flag is bound into it.
package config

import "github.com/spf13/viper"

// Config holds runtime configuration for a scoregraph CLI invocation.
type Config struct {
	SyntheticLoopWeight  float64 `mapstructure:"synthetic_loop_weight"`
	MaxIterations        int     `mapstructure:"max_iterations"`
	ConvergenceThreshold float64 `mapstructure:"convergence_threshold"`
	YieldAfterMS         int     `mapstructure:"yield_after_ms"`
	MetricsAddr          string  `mapstructure:"metrics_addr"`
	Verbose              bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by the config file or environment.
func Load() Config {
	viper.SetDefault("synthetic_loop_weight", 1e-3)
	viper.SetDefault("max_iterations", 170)
	viper.SetDefault("convergence_threshold", 1e-6)
	viper.SetDefault("yield_after_ms", 50)
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
