package motionplan

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/gridplan/utils"
)

// Primitive is a fixed relative motion with a non-negative edge cost,
// applied in the heading frame of the state it expands.
type Primitive struct {
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	DTheta float64 `json:"dtheta"`
	Weight float64 `json:"weight"`
}

// Validate ensures all parts of the config are valid.
func (p Primitive) Validate(path string) error {
	if p.Weight < 0 {
		return errors.Errorf("%s: expected non-negative weight, got %v", path, p.Weight)
	}
	return nil
}

// Apply rotates the primitive's relative motion into the state's heading
// frame and accumulates its cost.
func (p Primitive) Apply(s State) State {
	sin, cos := math.Sincos(s.Theta)
	return State{
		X:     s.X + cos*p.DX - sin*p.DY,
		Y:     s.Y + sin*p.DX + cos*p.DY,
		Theta: utils.ModAngle(s.Theta + p.DTheta),
		Cost:  s.Cost + p.Weight,
	}
}
