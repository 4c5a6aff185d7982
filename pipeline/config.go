// SPDX-License-Identifier: MIT
// Package: propagraph/pipeline
//
// config.go — typed pipeline configuration and its YAML loader.
//
// Policy:
//   - The core packages take explicit typed parameters only; all string
//     resolution and presence checking happens here, before any graph
//     mutation (ConfigurationError semantics).
//   - Optional knobs are pointers: nil means "step disabled".
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a missing or out-of-range configuration
// parameter. Always wrapped with the offending field; branch with
// errors.Is.
var ErrInvalidConfig = errors.New("pipeline: invalid configuration")

// Config holds every knob of one pipeline invocation.
//
// Optional steps are driven by pointer fields: a nil pointer disables the
// step, a set pointer enables it with the given parameter.
type Config struct {
	// Directed selects directed edge interpretation (default undirected).
	Directed bool `yaml:"directed"`

	// MaxSeedsPerClass caps injected labels per class across the whole
	// graph. Zero records gold truth without injecting.
	MaxSeedsPerClass int `yaml:"max_seeds_per_class"`

	// Beta is the random-walk regularization constant; required, >= 1.
	Beta float64 `yaml:"beta"`

	// PruneThreshold enables degree pruning when set (>= 0).
	PruneThreshold *int `yaml:"prune_threshold"`

	// SigmaFactor enables Gaussian-kernel reweighting when set (> 0).
	SigmaFactor *float64 `yaml:"sigma_factor"`

	// TopK enables per-vertex top-K neighbor retention when set (>= 1).
	TopK *int `yaml:"top_k"`

	// TrainFraction enables the random train/test split when set;
	// must lie in (0,1) and requires Seed.
	TrainFraction *float64 `yaml:"train_fraction"`

	// Seed drives the split RNG; required when TrainFraction is set.
	Seed *uint64 `yaml:"seed"`
}

// LoadConfig decodes a Config from YAML bytes. Unknown fields are
// rejected so typos in experiment files surface immediately.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: decode config: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config %q: %w", path, err)
	}

	return LoadConfig(data)
}

// Validate checks every parameter the configured steps depend on.
// It runs before any graph mutation, so a failing pipeline produces no
// partial state.
func (c Config) Validate() error {
	if c.MaxSeedsPerClass < 0 {
		return fmt.Errorf("%w: max_seeds_per_class %d is negative", ErrInvalidConfig, c.MaxSeedsPerClass)
	}
	if c.Beta < 1 || math.IsNaN(c.Beta) {
		return fmt.Errorf("%w: beta %v (required, must be >= 1)", ErrInvalidConfig, c.Beta)
	}
	if c.PruneThreshold != nil && *c.PruneThreshold < 0 {
		return fmt.Errorf("%w: prune_threshold %d is negative", ErrInvalidConfig, *c.PruneThreshold)
	}
	if c.SigmaFactor != nil && (*c.SigmaFactor <= 0 || math.IsNaN(*c.SigmaFactor)) {
		return fmt.Errorf("%w: sigma_factor %v must be positive", ErrInvalidConfig, *c.SigmaFactor)
	}
	if c.TopK != nil && *c.TopK < 1 {
		return fmt.Errorf("%w: top_k %d must be positive", ErrInvalidConfig, *c.TopK)
	}
	if c.TrainFraction != nil {
		if f := *c.TrainFraction; f <= 0 || f >= 1 || math.IsNaN(f) {
			return fmt.Errorf("%w: train_fraction %v must lie in (0,1)", ErrInvalidConfig, f)
		}
		if c.Seed == nil {
			return fmt.Errorf("%w: train_fraction requires seed", ErrInvalidConfig)
		}
	}

	return nil
}
