// Package config loads optional runtime tuning for the rbd kernel from
// YAML, mirroring jhkimqd-chaos-utils/pkg/config/config.go's struct-plus-
// yaml.v3 shape. None of these settings affect the numeric contract of any
// block type; they only affect partitioning granularity and, for tests,
// which SIMD-style tier is forced.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcopapini/librbd-sub002/rbd"
)

// Config holds the tunable runtime parameters for the rbd kernel.
type Config struct {
	// MinBatch bounds the worker count to ceilDiv(T, MinBatch) (spec §4.5
	// MIN_BATCH). Defaults to rbd.MinBatch.
	MinBatch int `yaml:"min_batch"`

	// MaxWorkers caps the worker count regardless of GOMAXPROCS. Zero (the
	// default) leaves the count uncapped.
	MaxWorkers int `yaml:"max_workers"`

	// ForceTier pins the SIMD-style tier ("scalar", "width2", "width4",
	// "width8", "scalable") instead of detecting it from CPU features.
	// Empty leaves detection in place. This is the Go-idiomatic sibling of
	// the teacher library's HWY_NO_SIMD / HWY_FORCE_TIER environment
	// escape hatches (hwy/dispatch.go's NoSimdEnv), surfaced as config
	// here so tests can pin tiers without mutating the environment.
	ForceTier string `yaml:"force_tier"`
}

// Default returns a Config matching the library's built-in defaults.
func Default() Config {
	return Config{MinBatch: 8, MaxWorkers: 0}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("rbd/config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("rbd/config: parsing %s: %w", path, err)
	}
	if cfg.MinBatch <= 0 {
		cfg.MinBatch = Default().MinBatch
	}
	return cfg, nil
}

// Apply installs cfg into the rbd package's tunable package-level
// variables. Safe to call before any entry point; not safe to call
// concurrently with an in-flight invocation.
func Apply(cfg Config) error {
	rbd.MinBatch = cfg.MinBatch
	rbd.MaxWorkers = cfg.MaxWorkers

	if cfg.ForceTier == "" {
		return nil
	}
	tier, err := rbd.ParseTier(cfg.ForceTier)
	if err != nil {
		return fmt.Errorf("rbd/config: %w", err)
	}
	rbd.SetTierOverride(tier)
	return nil
}
