package geometry

import "github.com/chewxy/math32"

// Point3D is a point in 3-space.
type Point3D struct {
	X, Y, Z float32
}

func NewPoint3D(x, y, z float32) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Dims returns 3.
func (p Point3D) Dims() int { return 3 }

// Coords returns the coordinates as a fresh slice, x then y then z.
func (p Point3D) Coords() []float32 { return []float32{p.X, p.Y, p.Z} }

func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3D) Subtract(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point3D) Scale(s float32) Point3D {
	return Point3D{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

func (p Point3D) Dot(q Point3D) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point3D) Length() float32 {
	return math32.Sqrt(p.LengthSq())
}

func (p Point3D) LengthSq() float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

func (p Point3D) Distance(q Point3D) float32 {
	return p.Subtract(q).Length()
}

// Normalize returns a unit-length point in the same direction, or the zero
// point if p has zero length.
func (p Point3D) Normalize() Point3D {
	l := p.Length()
	if l == 0 {
		return Point3D{}
	}
	return Point3D{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

func (p Point3D) Equals(q Point3D) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

// ApproxEqual reports whether p and q agree to within eps per coordinate.
func (p Point3D) ApproxEqual(q Point3D, eps float32) bool {
	return math32.Abs(p.X-q.X) < eps &&
		math32.Abs(p.Y-q.Y) < eps &&
		math32.Abs(p.Z-q.Z) < eps
}
