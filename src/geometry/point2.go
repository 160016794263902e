package geometry

import "github.com/chewxy/math32"

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float32
}

func NewPoint2D(x, y float32) Point2D {
	return Point2D{X: x, Y: y}
}

// Dims returns 2.
func (p Point2D) Dims() int { return 2 }

// Coords returns the coordinates as a fresh slice, x then y.
func (p Point2D) Coords() []float32 { return []float32{p.X, p.Y} }

func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point2D) Subtract(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point2D) Scale(s float32) Point2D {
	return Point2D{X: p.X * s, Y: p.Y * s}
}

func (p Point2D) Dot(q Point2D) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar (z-component) cross product.
func (p Point2D) Cross(q Point2D) float32 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point2D) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

func (p Point2D) LengthSq() float32 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point2D) Distance(q Point2D) float32 {
	return p.Subtract(q).Length()
}

// Normalize returns a unit-length point in the same direction, or the zero
// point if p has zero length.
func (p Point2D) Normalize() Point2D {
	l := p.Length()
	if l == 0 {
		return Point2D{}
	}
	return Point2D{X: p.X / l, Y: p.Y / l}
}

// Rotate returns p rotated by angle radians about the origin.
func (p Point2D) Rotate(angle float32) Point2D {
	sin, cos := math32.Sincos(angle)
	return Point2D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

func (p Point2D) Equals(q Point2D) bool {
	return p.X == q.X && p.Y == q.Y
}

// ApproxEqual reports whether p and q agree to within eps per coordinate.
func (p Point2D) ApproxEqual(q Point2D, eps float32) bool {
	return math32.Abs(p.X-q.X) < eps && math32.Abs(p.Y-q.Y) < eps
}
