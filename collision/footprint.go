// Package collision answers pose safety queries against a distance field
// for a vehicle approximated as a union of circles.
package collision

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Circle is one disc of a vehicle footprint. The offset is in the vehicle
// frame, relative to the vehicle's reference point.
type Circle struct {
	Offset r2.Point
	Radius float64
}

// Footprint approximates a vehicle silhouette as an ordered set of circles
// in the vehicle frame. The union of circles is expected, but not verified,
// to cover the vehicle's hull.
type Footprint struct {
	Width   float64
	Height  float64
	Circles []Circle
}

// PointConfig is a 2D point in a configuration document.
type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CircleConfig is one footprint circle in a configuration document. The
// center is relative to the vehicle rectangle's corner.
type CircleConfig struct {
	Center PointConfig `json:"center"`
	Radius float64     `json:"radius"`
}

// FootprintConfig mirrors the vehicle section of the planner configuration
// document.
type FootprintConfig struct {
	Shape struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"shape"`
	CirclesApproximation struct {
		Circles []CircleConfig `json:"circles"`
	} `json:"circles_approximation"`
}

// Validate ensures all parts of the config are valid.
func (cfg *FootprintConfig) Validate(path string) error {
	var result error
	if cfg.Shape.Width <= 0 {
		result = multierr.Append(result, errors.Errorf("%s: expected positive shape width", path))
	}
	if cfg.Shape.Height <= 0 {
		result = multierr.Append(result, errors.Errorf("%s: expected positive shape height", path))
	}
	circles := cfg.CirclesApproximation.Circles
	if len(circles) == 0 {
		result = multierr.Append(result, errors.Errorf("%s: expected at least one footprint circle", path))
	}
	for i, circle := range circles {
		if circle.Radius <= 0 {
			result = multierr.Append(result,
				errors.Errorf("%s.circles.%d: expected positive radius, got %v", path, i, circle.Radius))
		}
	}
	return result
}

// ParseFootprintConfig validates a footprint document and converts its
// corner-relative circle centers into vehicle-frame offsets.
func ParseFootprintConfig(cfg FootprintConfig) (Footprint, error) {
	if err := cfg.Validate("vehicle"); err != nil {
		return Footprint{}, err
	}
	fp := Footprint{Width: cfg.Shape.Width, Height: cfg.Shape.Height}
	for _, circle := range cfg.CirclesApproximation.Circles {
		fp.Circles = append(fp.Circles, Circle{
			Offset: r2.Point{
				X: circle.Center.X - cfg.Shape.Width/2,
				Y: circle.Center.Y - cfg.Shape.Height/2,
			},
			Radius: circle.Radius,
		})
	}
	return fp, nil
}

func (f Footprint) String() string {
	return fmt.Sprintf("footprint %vx%v with %d circles", f.Width, f.Height, len(f.Circles))
}
