package geom

import "github.com/golang/geo/r2"

// Polygon is a closed ring of vertices in the world frame. The ring closes
// implicitly from the last vertex back to the first.
type Polygon struct {
	Vertices []r2.Point
}

// NewPolygon constructs a polygon from an ordered vertex list.
func NewPolygon(vertices ...r2.Point) Polygon {
	return Polygon{Vertices: vertices}
}

// Segments calls visit once per edge, including the closing edge, until
// visit returns false.
func (p Polygon) Segments(visit func(a, b r2.Point) bool) {
	n := len(p.Vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		if !visit(p.Vertices[i], p.Vertices[(i+1)%n]) {
			return
		}
	}
}

// ContainsPoint reports whether pt lies inside the polygon, using even-odd
// ray casting.
func (p Polygon) ContainsPoint(pt r2.Point) bool {
	inside := false
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		if pt.X < a.X+(pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
			inside = !inside
		}
	}
	return inside
}
