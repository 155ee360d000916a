package grid

import (
	"math"
	"testing"

	"go.viam.com/test"
)

// exactDistanceTransform is the brute-force O(N^2) Euclidean reference the
// chamfer approximations are measured against.
func exactDistanceTransform(occupancy *Grid[bool]) *Grid[float64] {
	out := NewGridLike[float64](occupancy)
	var obstacles [][2]int
	for y := 0; y < occupancy.Size.Height; y++ {
		for x := 0; x < occupancy.Size.Width; x++ {
			if occupancy.At(x, y) {
				obstacles = append(obstacles, [2]int{x, y})
			}
		}
	}
	for y := 0; y < occupancy.Size.Height; y++ {
		for x := 0; x < occupancy.Size.Width; x++ {
			best := math.Inf(1)
			for _, o := range obstacles {
				d := math.Hypot(float64(x-o[0]), float64(y-o[1]))
				if d < best {
					best = d
				}
			}
			out.Set(x, y, best*occupancy.Resolution)
		}
	}
	return out
}

func scatteredObstacleGrid(t *testing.T) *Grid[bool] {
	t.Helper()
	occupancy, err := NewGrid[bool](Size{Width: 10, Height: 10}, 1)
	test.That(t, err, test.ShouldBeNil)
	for _, cell := range [][2]int{{4, 1}, {7, 2}, {7, 3}, {1, 4}, {5, 5}, {7, 6}} {
		occupancy.Set(cell[0], cell[1], true)
	}
	return occupancy
}

func TestDistanceTransformAccuracy(t *testing.T) {
	occupancy := scatteredObstacleGrid(t)
	exact := exactDistanceTransform(occupancy)

	for _, tc := range []struct {
		name   string
		kernel Kernel
		bound  float64
	}{
		{"3x3", Kernel3, 0.41},
		{"5x5", Kernel5, 0.2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			field := tc.kernel.Transform(occupancy)
			for y := 0; y < occupancy.Size.Height; y++ {
				for x := 0; x < occupancy.Size.Width; x++ {
					diff := math.Abs(field.At(x, y) - exact.At(x, y))
					test.That(t, diff, test.ShouldBeLessThanOrEqualTo, tc.bound)
				}
			}
		})
	}
}

func TestDistanceTransformFarCorners(t *testing.T) {
	occupancy, err := NewGrid[bool](Size{Width: 10, Height: 10}, 1)
	test.That(t, err, test.ShouldBeNil)
	occupancy.Set(0, 0, true)
	occupancy.Set(9, 9, true)
	exact := exactDistanceTransform(occupancy)

	field := DistanceTransform3(occupancy)
	for i := range field.Data {
		test.That(t, math.Abs(field.Data[i]-exact.Data[i]), test.ShouldBeLessThanOrEqualTo, 0.41)
	}
	field = DistanceTransform5(occupancy)
	for i := range field.Data {
		test.That(t, math.Abs(field.Data[i]-exact.Data[i]), test.ShouldBeLessThanOrEqualTo, 0.2)
	}
}

func TestDistanceTransformCanonicalMatrix(t *testing.T) {
	// The canonical 5x5 regression fixture: the 3x3 kernel must reproduce
	// this matrix exactly (values are kernel weights over the unit 3).
	occupancy, err := NewGrid[bool](Size{Width: 5, Height: 5}, 1)
	test.That(t, err, test.ShouldBeNil)
	for _, cell := range [][2]int{{2, 1}, {3, 1}, {1, 2}, {1, 3}, {3, 3}, {3, 4}} {
		occupancy.Set(cell[0], cell[1], true)
	}

	expected := [5][5]float64{
		{7, 4, 3, 3, 4},
		{4, 3, 0, 0, 3},
		{3, 0, 3, 3, 4},
		{3, 0, 3, 0, 3},
		{4, 3, 3, 0, 3},
	}

	field := DistanceTransform3(occupancy)
	scale := occupancy.Resolution / 3
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			test.That(t, field.At(x, y), test.ShouldEqual, expected[y][x]*scale)
		}
	}
}

func TestDistanceTransformObstacleCellsAreZero(t *testing.T) {
	occupancy := scatteredObstacleGrid(t)
	for _, kernel := range []Kernel{Kernel3, Kernel5} {
		field := kernel.Transform(occupancy)
		for y := 0; y < occupancy.Size.Height; y++ {
			for x := 0; x < occupancy.Size.Width; x++ {
				if occupancy.At(x, y) {
					test.That(t, field.At(x, y), test.ShouldEqual, 0)
				} else {
					test.That(t, field.At(x, y), test.ShouldBeGreaterThan, 0)
				}
			}
		}
	}
}

func TestDistanceTransformNoObstacles(t *testing.T) {
	occupancy, err := NewGrid[bool](Size{Width: 4, Height: 4}, 1)
	test.That(t, err, test.ShouldBeNil)

	// A grid with no obstacles is everywhere "far": the sentinel maximum.
	field := DistanceTransform3(occupancy)
	farDistance := float64(occupancy.Size.Cells())
	for _, v := range field.Data {
		test.That(t, v, test.ShouldBeGreaterThan, farDistance)
	}
}

func TestDistanceTransformScalesWithResolution(t *testing.T) {
	occupancy, err := NewGrid[bool](Size{Width: 5, Height: 1}, 0.5)
	test.That(t, err, test.ShouldBeNil)
	occupancy.Set(0, 0, true)

	field := DistanceTransform3(occupancy)
	test.That(t, field.At(0, 0), test.ShouldEqual, 0)
	test.That(t, field.At(1, 0), test.ShouldAlmostEqual, 0.5)
	test.That(t, field.At(4, 0), test.ShouldAlmostEqual, 2.0)
}
