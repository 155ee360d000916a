// Package motionplan searches a fixed set of kinematically-feasible motion
// primitives for a minimum-cost collision-free path between two poses.
package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/gridplan/geom"
	"go.viam.com/gridplan/utils"
)

// Tolerances are the per-axis thresholds under which two states count as
// the same state, plus the cost threshold used by open-set ordering.
type Tolerances struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Theta    float64 `json:"theta"`
	Distance float64 `json:"distance"`
}

// DefaultTolerances returns the planner's built-in fallback thresholds.
func DefaultTolerances() Tolerances {
	return Tolerances{X: 1e-5, Y: 1e-5, Theta: 0.01, Distance: 1e-5}
}

// Validate ensures all parts of the config are valid.
func (tol Tolerances) Validate(path string) error {
	var result error
	for _, axis := range []struct {
		name  string
		value float64
	}{
		{"x", tol.X},
		{"y", tol.Y},
		{"theta", tol.Theta},
		{"distance", tol.Distance},
	} {
		if axis.value <= 0 {
			result = multierr.Append(result,
				errors.Errorf("%s.%s: expected positive tolerance, got %v", path, axis.name, axis.value))
		}
	}
	return result
}

// State is a pose plus the accumulated path cost from the search start.
type State struct {
	X     float64
	Y     float64
	Theta float64
	Cost  float64
}

// NewState constructs a zero-cost state from a pose, normalizing theta.
func NewState(pose geom.Pose) State {
	return State{X: pose.X, Y: pose.Y, Theta: utils.ModAngle(pose.Theta)}
}

// Pose returns the state's pose, dropping the cost.
func (s State) Pose() geom.Pose {
	return geom.Pose{X: s.X, Y: s.Y, Theta: s.Theta}
}

// stateKey is a state quantized onto the tolerance lattice. Tolerance-based
// float equality is not transitive, so equality and set membership both use
// the lattice cell instead: states in the same cell are one search state.
type stateKey struct {
	x, y, theta int64
}

func (tol Tolerances) key(s State) stateKey {
	return stateKey{
		x:     int64(math.Floor(s.X / tol.X)),
		y:     int64(math.Floor(s.Y / tol.Y)),
		theta: int64(math.Floor(utils.ModAngle(s.Theta) / tol.Theta)),
	}
}

// less orders open states by cost ascending, breaking ties by x, then y,
// then theta, all on the quantized lattice. Distinct open states always
// differ in at least one component, so expansion order is a strict total
// order and reproducible for identical inputs.
func (tol Tolerances) less(a, b State) bool {
	costA := int64(math.Floor(a.Cost / tol.Distance))
	costB := int64(math.Floor(b.Cost / tol.Distance))
	if costA != costB {
		return costA < costB
	}
	keyA, keyB := tol.key(a), tol.key(b)
	if keyA.x != keyB.x {
		return keyA.x < keyB.x
	}
	if keyA.y != keyB.y {
		return keyA.y < keyB.y
	}
	return keyA.theta < keyB.theta
}
