package geometry

// Point is the vertex type constraint shared by 2D and 3D mesh storage.
// Both point types are plain values; a point's only identity is its
// coordinates.
type Point interface {
	Point2D | Point3D

	Dims() int
	Coords() []float32
}
