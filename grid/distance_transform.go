package grid

import "math"

// Chamfer kernels approximate unit Euclidean distance with small integer
// weights propagated in two directional sweeps (Borgefors, "Distance
// transformations in digital images"). Only the upper half of the
// neighborhood is stored; the backward sweep mirrors it.
type chamferKernel struct {
	radius  int
	unit    int32
	forward []kernelOffset
}

type kernelOffset struct {
	dx, dy int
	weight int32
}

var (
	kernel3 = chamferKernel{
		radius: 1,
		unit:   3,
		forward: []kernelOffset{
			{-1, -1, 4}, {0, -1, 3}, {1, -1, 4},
			{-1, 0, 3},
		},
	}
	kernel5 = chamferKernel{
		radius: 2,
		unit:   5,
		forward: []kernelOffset{
			{-1, -2, 11}, {1, -2, 11},
			{-2, -1, 11}, {-1, -1, 7}, {0, -1, 5}, {1, -1, 7}, {2, -1, 11},
			{-1, 0, 5},
		},
	}
)

// sentinel leaves headroom for one weight addition without overflow.
func (k chamferKernel) sentinel() int32 {
	var max int32
	for _, o := range k.forward {
		if o.weight > max {
			max = o.weight
		}
	}
	return math.MaxInt32 - max
}

// DistanceTransform3 builds an approximate Euclidean distance-to-nearest-
// obstacle field with the 3x3 {3,4} kernel. Values are in the occupancy
// grid's metric units, zero at occupied cells; the approximation error stays
// within ~0.41 of a cell. The transform is total: a grid with no obstacles
// yields the sentinel maximum everywhere.
func DistanceTransform3(occupancy *Grid[bool]) *Grid[float64] {
	return distanceTransform(occupancy, kernel3)
}

// DistanceTransform5 is DistanceTransform3 with the 5x5 {5,7,11} kernel,
// tightening the approximation error to ~0.2 of a cell at the cost of a
// larger neighborhood per cell.
func DistanceTransform5(occupancy *Grid[bool]) *Grid[float64] {
	return distanceTransform(occupancy, kernel5)
}

func distanceTransform(occupancy *Grid[bool], kernel chamferKernel) *Grid[float64] {
	out := NewGridLike[float64](occupancy)
	w, h := occupancy.Size.Width, occupancy.Size.Height
	sentinel := kernel.sentinel()

	// The scratch buffer is padded with a border of sentinel cells so
	// neighborhood reads never index out of bounds.
	bufWidth := w + 2*kernel.radius
	buf := make([]int32, bufWidth*(h+2*kernel.radius))
	for i := range buf {
		buf[i] = sentinel
	}
	at := func(x, y int) int {
		return (y+kernel.radius)*bufWidth + x + kernel.radius
	}

	// Forward sweep: top-to-bottom, left-to-right, upper kernel half.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if occupancy.At(x, y) {
				buf[at(x, y)] = 0
				continue
			}
			best := sentinel
			for _, o := range kernel.forward {
				if v := buf[at(x+o.dx, y+o.dy)] + o.weight; v < best {
					best = v
				}
			}
			buf[at(x, y)] = best
		}
	}

	// Backward sweep: bottom-to-top, right-to-left, mirrored kernel half,
	// scaling each finalized value to metric units.
	scale := occupancy.Resolution / float64(kernel.unit)
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			best := buf[at(x, y)]
			for _, o := range kernel.forward {
				if v := buf[at(x-o.dx, y-o.dy)] + o.weight; v < best {
					best = v
				}
			}
			buf[at(x, y)] = best
			out.Set(x, y, float64(best)*scale)
		}
	}
	return out
}

// Kernel selects the chamfer neighborhood used to build distance fields.
type Kernel int

const (
	// Kernel3 is the 3x3 neighborhood, the faster and coarser option.
	Kernel3 Kernel = iota
	// Kernel5 is the 5x5 neighborhood, the tighter approximation.
	Kernel5
)

// Transform builds the distance field for an occupancy grid with the
// selected kernel.
func (k Kernel) Transform(occupancy *Grid[bool]) *Grid[float64] {
	if k == Kernel5 {
		return DistanceTransform5(occupancy)
	}
	return DistanceTransform3(occupancy)
}
