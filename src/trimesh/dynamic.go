package trimesh

import (
	"fmt"

	"tmesh/src/geometry"
)

// Mesh is the dimension-erased view of a Trimesh. Host binding layers and
// tooling that handle 2D and 3D meshes uniformly work through this interface;
// typed Go callers should use Trimesh directly.
type Mesh interface {
	// Dim returns the vertex dimensionality, 2 or 3.
	Dim() int

	// NumVertices returns the number of vertices.
	NumVertices() int

	// NumFaces returns the number of faces.
	NumFaces() int

	// Faces returns the face sequence in insertion order, read-only.
	Faces() []Face

	// VertexAt returns the coordinates of vertex i as a fresh slice.
	VertexAt(i int) []float32
}

var (
	_ Mesh = (*Trimesh[geometry.Point2D])(nil)
	_ Mesh = (*Trimesh[geometry.Point3D])(nil)
)

// CombineMeshes combines two dimension-erased meshes with Combine semantics.
// Meshes of different dimensionality are rejected with ErrDimensionMismatch
// before either operand is touched.
func CombineMeshes(a, b Mesh) (Mesh, error) {
	if a.Dim() != b.Dim() {
		return nil, fmt.Errorf("%w: cannot combine %dD mesh with %dD mesh",
			ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	switch am := a.(type) {
	case *Trimesh[geometry.Point2D]:
		bm, ok := b.(*Trimesh[geometry.Point2D])
		if !ok {
			return nil, fmt.Errorf("trimesh: unsupported mesh type %T", b)
		}
		return Combine(am, bm), nil
	case *Trimesh[geometry.Point3D]:
		bm, ok := b.(*Trimesh[geometry.Point3D])
		if !ok {
			return nil, fmt.Errorf("trimesh: unsupported mesh type %T", b)
		}
		return Combine(am, bm), nil
	default:
		return nil, fmt.Errorf("trimesh: unsupported mesh type %T", a)
	}
}
