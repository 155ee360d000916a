package grid

import (
	"math"

	"github.com/golang/geo/r2"
)

// ManhattanDistance computes, for every cell of a clearance field, the
// 4-connected wavefront distance in cells from the cell containing origin.
// Cells whose clearance is at most eps are impassable; impassable and
// unreachable cells come back as +Inf, including the whole field when the
// seed cell itself is blocked or out of the extent.
func ManhattanDistance(clearance *Grid[float64], origin r2.Point, eps float64) *Grid[float64] {
	out := NewGridLike[float64](clearance)
	for i := range out.Data {
		out.Data[i] = math.Inf(1)
	}

	sx, sy := clearance.WorldToCell(origin)
	if !clearance.Contains(sx, sy) || clearance.At(sx, sy) <= eps {
		return out
	}

	type cell struct{ x, y int }
	queue := []cell{{sx, sy}}
	out.Set(sx, sy, 0)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := out.At(cur.x, cur.y) + 1
		for _, d := range [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cur.x+d.x, cur.y+d.y
			if !clearance.Contains(nx, ny) ||
				clearance.At(nx, ny) <= eps ||
				!math.IsInf(out.At(nx, ny), 1) {
				continue
			}
			out.Set(nx, ny, next)
			queue = append(queue, cell{nx, ny})
		}
	}
	return out
}
