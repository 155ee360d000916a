// Package geom provides the 2D pose and polygon primitives shared by the
// grid, collision and planning packages.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"

	"go.viam.com/gridplan/utils"
)

// Pose is a position and heading in the world frame. Theta is in radians.
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// NewPose constructs a pose with theta normalized to [0, 2pi).
func NewPose(x, y, theta float64) Pose {
	return Pose{X: x, Y: y, Theta: utils.ModAngle(theta)}
}

// Point returns the pose's position.
func (p Pose) Point() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// TransformPoint maps pt from the pose's local frame into the world frame.
func (p Pose) TransformPoint(pt r2.Point) r2.Point {
	sin, cos := math.Sincos(p.Theta)
	return r2.Point{
		X: p.X + cos*pt.X - sin*pt.Y,
		Y: p.Y + sin*pt.X + cos*pt.Y,
	}
}

// AlmostEqual reports whether two poses coincide within tol on every axis.
// Headings are compared on the normalized circle.
func (p Pose) AlmostEqual(o Pose, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, o.X, tol) &&
		scalar.EqualWithinAbs(p.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(utils.ModAngle(p.Theta), utils.ModAngle(o.Theta), tol)
}
