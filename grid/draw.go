package grid

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/gridplan/geom"
)

// DrawPolygon rasterizes a polygon onto an occupancy grid, marking every
// cell whose center lies inside the polygon plus the cells its edges cross.
// Portions of the polygon outside the grid extent are silently clipped.
func DrawPolygon(poly geom.Polygon, occupancy *Grid[bool]) {
	// Interior fill by cell-center containment.
	for y := 0; y < occupancy.Size.Height; y++ {
		for x := 0; x < occupancy.Size.Width; x++ {
			if poly.ContainsPoint(occupancy.CellToWorld(x, y)) {
				occupancy.Set(x, y, true)
			}
		}
	}

	// Edge tracing at half-cell steps so thin polygons still register.
	step := occupancy.Resolution / 2
	poly.Segments(func(a, b r2.Point) bool {
		delta := b.Sub(a)
		length := delta.Norm()
		n := int(math.Ceil(length/step)) + 1
		for i := 0; i <= n; i++ {
			pt := a.Add(delta.Mul(float64(i) / float64(n)))
			if x, y := occupancy.WorldToCell(pt); occupancy.Contains(x, y) {
				occupancy.Set(x, y, true)
			}
		}
		return true
	})
}
