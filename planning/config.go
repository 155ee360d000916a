// Package planning hosts the worker that turns occupancy-grid scenes and
// target poses into planned paths.
package planning

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/gridplan/collision"
	"go.viam.com/gridplan/geom"
	"go.viam.com/gridplan/grid"
	"go.viam.com/gridplan/motionplan"
)

// DefaultBounds is the planner's historical hard world extent.
var DefaultBounds = collision.Bounds{X: 20, Y: 20}

// Config is the planner's startup configuration document. A planner must
// not run with a partial configuration; construction fails on any invalid
// field.
type Config struct {
	Tolerances *motionplan.Tolerances    `json:"tolerances,omitempty"`
	Primitives []motionplan.Primitive    `json:"primitives"`
	Initial    geom.Pose                 `json:"initial"`
	Vehicle    collision.FootprintConfig `json:"vehicle"`
	Bounds     *collision.Bounds         `json:"bounds,omitempty"`
	Kernel     string                    `json:"kernel,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var result error
	if len(cfg.Primitives) == 0 {
		result = multierr.Append(result, errors.Errorf("%s: expected at least one primitive", path))
	}
	for i, primitive := range cfg.Primitives {
		result = multierr.Append(result, primitive.Validate(fmt.Sprintf("%s.primitives.%d", path, i)))
	}
	if cfg.Tolerances != nil {
		result = multierr.Append(result, cfg.Tolerances.Validate(path+".tolerances"))
	}
	if cfg.Bounds != nil && (cfg.Bounds.X <= 0 || cfg.Bounds.Y <= 0) {
		result = multierr.Append(result, errors.Errorf("%s.bounds: expected positive extents", path))
	}
	if _, err := cfg.kernel(); err != nil {
		result = multierr.Append(result, err)
	}
	result = multierr.Append(result, cfg.Vehicle.Validate(path+".vehicle"))
	return result
}

// ReadConfig loads and validates a planner configuration document from
// disk.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read planner config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid planner config %q", path)
	}
	return cfg, nil
}

// ParseConfig parses and validates a planner configuration document.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse planner config")
	}
	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) tolerances() motionplan.Tolerances {
	if cfg.Tolerances != nil {
		return *cfg.Tolerances
	}
	return motionplan.DefaultTolerances()
}

func (cfg *Config) bounds() collision.Bounds {
	if cfg.Bounds != nil {
		return *cfg.Bounds
	}
	return DefaultBounds
}

func (cfg *Config) kernel() (grid.Kernel, error) {
	switch cfg.Kernel {
	case "", "3x3":
		return grid.Kernel3, nil
	case "5x5":
		return grid.Kernel5, nil
	default:
		return 0, errors.Errorf("config.kernel: expected \"3x3\" or \"5x5\", got %q", cfg.Kernel)
	}
}
