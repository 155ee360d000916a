// Package grid implements 2D metric grids and the fast approximate distance
// transform used as the planner's collision oracle.
package grid

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/gridplan/geom"
)

// Size is a grid extent in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Cells returns the total cell count.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Grid is a row-major 2D array of cells with a metric resolution (length
// units per cell) and an optional origin pose mapping grid coordinates into
// the world frame.
type Grid[T any] struct {
	Size       Size
	Resolution float64
	Origin     *geom.Pose
	Data       []T
}

// NewGrid allocates a zeroed grid. The size must be non-empty and the
// resolution positive.
func NewGrid[T any](size Size, resolution float64) (*Grid[T], error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.Errorf("expected positive grid size, got %dx%d", size.Width, size.Height)
	}
	if resolution <= 0 {
		return nil, errors.Errorf("expected positive grid resolution, got %v", resolution)
	}
	return &Grid[T]{Size: size, Resolution: resolution, Data: make([]T, size.Cells())}, nil
}

// NewGridLike allocates a zeroed grid with the same size, resolution and
// origin as another.
func NewGridLike[T, U any](other *Grid[U]) *Grid[T] {
	g := &Grid[T]{
		Size:       other.Size,
		Resolution: other.Resolution,
		Data:       make([]T, other.Size.Cells()),
	}
	if other.Origin != nil {
		origin := *other.Origin
		g.Origin = &origin
	}
	return g
}

// Contains reports whether the cell coordinates lie within the grid extent.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.Size.Width && y >= 0 && y < g.Size.Height
}

// At returns the value at cell (x, y). The cell must be in bounds.
func (g *Grid[T]) At(x, y int) T {
	return g.Data[y*g.Size.Width+x]
}

// Set writes the value at cell (x, y). The cell must be in bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Data[y*g.Size.Width+x] = v
}

// WorldToCell maps a world point to the coordinates of the enclosing cell.
// The returned cell may lie outside the grid; callers must check Contains
// before indexing.
func (g *Grid[T]) WorldToCell(pt r2.Point) (int, int) {
	if g.Origin != nil {
		pt = pt.Sub(g.Origin.Point())
	}
	return int(math.Floor(pt.X / g.Resolution)), int(math.Floor(pt.Y / g.Resolution))
}

// CellToWorld returns the world position of the center of cell (x, y).
func (g *Grid[T]) CellToWorld(x, y int) r2.Point {
	pt := r2.Point{
		X: (float64(x) + 0.5) * g.Resolution,
		Y: (float64(y) + 0.5) * g.Resolution,
	}
	if g.Origin != nil {
		pt = pt.Add(g.Origin.Point())
	}
	return pt
}
