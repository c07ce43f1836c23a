// Package config loads runtime settings from SPACESCOPE_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/litescript/spacescope/internal/derive"
	"github.com/litescript/spacescope/internal/logging"
	"github.com/litescript/spacescope/internal/space"
)

const (
	MinISSInterval = time.Second
	MaxISSInterval = 5 * time.Minute
)

// Config holds all runtime settings. Command-line flags override it.
type Config struct {
	LogLevel  string `env:"SPACESCOPE_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SPACESCOPE_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"SPACESCOPE_LOG_FILE"`

	ISSInterval    time.Duration `env:"SPACESCOPE_ISS_INTERVAL"    envDefault:"5s"`
	ISSStep        float64       `env:"SPACESCOPE_ISS_STEP"        envDefault:"0.5"`
	ISSInclination float64       `env:"SPACESCOPE_ISS_INCLINATION" envDefault:"51.6"`

	MapStyle   string `env:"SPACESCOPE_MAP_STYLE"   envDefault:"dark"`
	MaxChanges int    `env:"SPACESCOPE_MAX_CHANGES" envDefault:"50"`

	MetricsAddr string `env:"SPACESCOPE_METRICS_ADDR"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.ISSInterval < MinISSInterval || c.ISSInterval > MaxISSInterval {
		errs = append(errs, fmt.Errorf("iss interval %s outside [%s, %s]", c.ISSInterval, MinISSInterval, MaxISSInterval))
	}
	if c.ISSStep <= 0 || c.ISSStep > 360 {
		errs = append(errs, fmt.Errorf("iss step %v must be in (0, 360]", c.ISSStep))
	}
	if c.ISSInclination < 0 || c.ISSInclination > 90 {
		errs = append(errs, fmt.Errorf("iss inclination %v must be in [0, 90]", c.ISSInclination))
	}
	if !logging.Format(c.LogFormat).Valid() {
		errs = append(errs, fmt.Errorf("log format %q must be text or json", c.LogFormat))
	}
	if !space.MapStyle(c.MapStyle).Valid() {
		errs = append(errs, fmt.Errorf("map style %q is not one of satellite, dark, light, terrain", c.MapStyle))
	}
	if c.MaxChanges <= 0 {
		errs = append(errs, fmt.Errorf("max changes %d must be positive", c.MaxChanges))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ISSModel returns the simulated orbit parameters.
func (c Config) ISSModel() derive.ISSModel {
	return derive.ISSModel{StepDeg: c.ISSStep, InclinationDeg: c.ISSInclination}
}
