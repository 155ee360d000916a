package collision

import (
	"math"

	"go.viam.com/gridplan/geom"
	"go.viam.com/gridplan/grid"
)

// Bounds is the hard world extent outside which every pose is unsafe. X and
// Y are half-sizes centered on the world origin; they keep the search space
// bounded even on obstacle-free maps.
type Bounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (b Bounds) contains(pose geom.Pose) bool {
	return math.Abs(pose.X) <= b.X && math.Abs(pose.Y) <= b.Y
}

// Checker answers pose safety queries over an immutable distance field and
// footprint captured at construction. It is a pure query type with no side
// effects.
type Checker struct {
	field     *grid.Grid[float64]
	footprint Footprint
	bounds    Bounds
}

// NewChecker captures a distance field, footprint and world bounds.
func NewChecker(field *grid.Grid[float64], footprint Footprint, bounds Bounds) *Checker {
	return &Checker{field: field, footprint: footprint, bounds: bounds}
}

// IsFree reports whether the vehicle at the given pose keeps every footprint
// circle clear of obstacles. The check fails closed: poses outside the world
// bounds, and circle centers that land outside the distance field's extent,
// count as collisions rather than errors.
func (c *Checker) IsFree(pose geom.Pose) bool {
	if !c.bounds.contains(pose) {
		return false
	}
	for _, circle := range c.footprint.Circles {
		center := pose.TransformPoint(circle.Offset)
		x, y := c.field.WorldToCell(center)
		if !c.field.Contains(x, y) {
			return false
		}
		if c.field.At(x, y) < circle.Radius {
			return false
		}
	}
	return true
}
