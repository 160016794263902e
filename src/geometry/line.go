package geometry

import "github.com/chewxy/math32"

// Line2D is a line segment in the plane, directed from P1 to P2.
type Line2D struct {
	P1, P2 Point2D
}

// Project returns the orthogonal projection of p onto the segment and
// reports whether the projection falls within it. A degenerate segment
// projects every point onto P1.
func (l Line2D) Project(p Point2D) (Point2D, bool) {
	d := l.P2.Subtract(l.P1)
	den := d.LengthSq()
	if den == 0 {
		return l.P1, true
	}
	t := p.Subtract(l.P1).Dot(d) / den
	if t < 0 || t > 1 {
		return Point2D{}, false
	}
	return l.P1.Add(d.Scale(t)), true
}

// Intersection returns the intersection point of two segments. Parallel and
// collinear segments do not intersect, matching the convention that an
// overlap has no single intersection point.
func (l Line2D) Intersection(o Line2D) (Point2D, bool) {
	r := l.P2.Subtract(l.P1)
	s := o.P2.Subtract(o.P1)
	den := r.Cross(s)
	if math32.Abs(den) < Epsilon {
		return Point2D{}, false
	}
	qp := o.P1.Subtract(l.P1)
	t := qp.Cross(s) / den
	u := qp.Cross(r) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point2D{}, false
	}
	return l.P1.Add(r.Scale(t)), true
}

// MinDistance returns the minimum distance from p to the segment.
func (l Line2D) MinDistance(p Point2D) float32 {
	d := l.P2.Subtract(l.P1)
	den := d.LengthSq()
	if den == 0 {
		return p.Distance(l.P1)
	}
	t := p.Subtract(l.P1).Dot(d) / den
	t = math32.Max(0, math32.Min(1, t))
	return p.Distance(l.P1.Add(d.Scale(t)))
}

// Line3D is a line segment in 3-space, directed from P1 to P2.
type Line3D struct {
	P1, P2 Point3D
}

// Project returns the orthogonal projection of p onto the segment and
// reports whether the projection falls within it. A degenerate segment
// projects every point onto P1.
func (l Line3D) Project(p Point3D) (Point3D, bool) {
	d := l.P2.Subtract(l.P1)
	den := d.LengthSq()
	if den == 0 {
		return l.P1, true
	}
	t := p.Subtract(l.P1).Dot(d) / den
	if t < 0 || t > 1 {
		return Point3D{}, false
	}
	return l.P1.Add(d.Scale(t)), true
}

// MinDistance returns the minimum distance from p to the segment.
func (l Line3D) MinDistance(p Point3D) float32 {
	d := l.P2.Subtract(l.P1)
	den := d.LengthSq()
	if den == 0 {
		return p.Distance(l.P1)
	}
	t := p.Subtract(l.P1).Dot(d) / den
	t = math32.Max(0, math32.Min(1, t))
	return p.Distance(l.P1.Add(d.Scale(t)))
}
