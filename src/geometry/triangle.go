package geometry

import "math"

// Triangle2D is a triangle in the plane. Vertex order determines its
// orientation: counter-clockwise vertices have positive signed area.
type Triangle2D struct {
	P1, P2, P3 Point2D
}

// signedArea is computed in float64; the in-circle test depends on its sign
// and float32 cancellation flips signs for near-degenerate triangles.
func (t Triangle2D) signedArea() float64 {
	ax, ay := float64(t.P1.X), float64(t.P1.Y)
	bx, by := float64(t.P2.X), float64(t.P2.Y)
	cx, cy := float64(t.P3.X), float64(t.P3.Y)
	return 0.5 * ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
}

// Area returns the absolute area of the triangle.
func (t Triangle2D) Area() float32 {
	return float32(math.Abs(t.signedArea()))
}

// Centroid returns the centroid of the triangle.
func (t Triangle2D) Centroid() Point2D {
	return t.P1.Add(t.P2).Add(t.P3).Scale(1.0 / 3.0)
}

// Contains reports whether p lies inside the triangle or on its boundary.
// Orientation does not matter.
func (t Triangle2D) Contains(p Point2D) bool {
	d1 := p.Subtract(t.P1).Cross(t.P2.Subtract(t.P1))
	d2 := p.Subtract(t.P2).Cross(t.P3.Subtract(t.P2))
	d3 := p.Subtract(t.P3).Cross(t.P1.Subtract(t.P3))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// CircumcircleContains reports whether p lies strictly inside the
// circumcircle of the triangle. Points on the circle are outside, which
// keeps triangulation of cocircular inputs stable.
func (t Triangle2D) CircumcircleContains(p Point2D) bool {
	px, py := float64(p.X), float64(p.Y)
	ax, ay := float64(t.P1.X)-px, float64(t.P1.Y)-py
	bx, by := float64(t.P2.X)-px, float64(t.P2.Y)-py
	cx, cy := float64(t.P3.X)-px, float64(t.P3.Y)-py
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	if t.signedArea() < 0 {
		return det < 0
	}
	return det > 0
}

// MinDistance returns the minimum distance from p to the triangle,
// zero when p is inside it.
func (t Triangle2D) MinDistance(p Point2D) float32 {
	if t.Contains(p) {
		return 0
	}
	d := Line2D{P1: t.P1, P2: t.P2}.MinDistance(p)
	if e := (Line2D{P1: t.P2, P2: t.P3}).MinDistance(p); e < d {
		d = e
	}
	if e := (Line2D{P1: t.P3, P2: t.P1}).MinDistance(p); e < d {
		d = e
	}
	return d
}

// Triangle3D is a triangle in 3-space. Vertex order is the winding order;
// the normal follows the right-hand rule.
type Triangle3D struct {
	P1, P2, P3 Point3D
}

// Area returns the area of the triangle.
func (t Triangle3D) Area() float32 {
	cross := t.P2.Subtract(t.P1).Cross(t.P3.Subtract(t.P1))
	return cross.Length() / 2
}

// Normal returns the unit normal implied by the winding order, or the zero
// point for a degenerate triangle.
func (t Triangle3D) Normal() Point3D {
	return t.P2.Subtract(t.P1).Cross(t.P3.Subtract(t.P1)).Normalize()
}

// Centroid returns the centroid of the triangle.
func (t Triangle3D) Centroid() Point3D {
	return t.P1.Add(t.P2).Add(t.P3).Scale(1.0 / 3.0)
}
