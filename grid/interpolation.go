package grid

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrOutsideGrid is returned by Interpolator.At for points beyond the
// interpolable extent.
var ErrOutsideGrid = errors.New("point is not inside the grid")

// Interpolator samples a scalar field bilinearly between grid nodes, where
// node (x, y) sits at world offset (x*resolution, y*resolution) from the
// grid origin.
type Interpolator struct {
	grid *Grid[float64]
}

// NewInterpolator wraps a scalar grid for bilinear sampling.
func NewInterpolator(g *Grid[float64]) *Interpolator {
	return &Interpolator{grid: g}
}

// At samples the field at a world point. Points outside the node lattice,
// including its upper edges, return ErrOutsideGrid rather than reading out
// of bounds.
func (in *Interpolator) At(pt r2.Point) (float64, error) {
	g := in.grid
	if g.Origin != nil {
		pt = pt.Sub(g.Origin.Point())
	}
	fx := pt.X / g.Resolution
	fy := pt.Y / g.Resolution
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	if fx < 0 || fy < 0 || x0+1 >= g.Size.Width || y0+1 >= g.Size.Height {
		return 0, ErrOutsideGrid
	}

	tx := fx - float64(x0)
	ty := fy - float64(y0)
	top := g.At(x0, y0)*(1-tx) + g.At(x0+1, y0)*tx
	bottom := g.At(x0, y0+1)*(1-tx) + g.At(x0+1, y0+1)*tx
	return top*(1-ty) + bottom*ty, nil
}
