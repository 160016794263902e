// Package trimesh stores triangular meshes as an ordered vertex sequence plus
// an ordered sequence of index triples, and combines meshes by vertex
// concatenation and face-index offsetting. It is the data structure that
// export, Boolean operations, and GPU upload all build on.
package trimesh

import (
	"fmt"

	"tmesh/src/geometry"
)

// Trimesh is a triangle mesh over 2D or 3D vertices. A vertex's index is its
// position in insertion order; indices are never reused or renumbered.
// The zero value is an empty mesh ready for use.
//
// A Trimesh owns its storage exclusively. Distinct meshes can be used from
// distinct goroutines without coordination, but a single mesh must not be
// mutated concurrently.
type Trimesh[T geometry.Point] struct {
	vertices []T
	faces    []Face
}

// NewTrimesh returns an empty mesh.
func NewTrimesh[T geometry.Point]() *Trimesh[T] {
	return &Trimesh[T]{}
}

// AddVertex appends v to the vertex sequence and returns its index,
// which is always the vertex count before the call.
func (m *Trimesh[T]) AddVertex(v T) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// AddFace appends the triangle (i, j, k) to the face sequence. All three
// indices must reference existing vertices; otherwise the face is rejected
// with ErrIndexOutOfRange and the mesh is unchanged.
func (m *Trimesh[T]) AddFace(i, j, k int) error {
	n := len(m.vertices)
	for _, idx := range [3]int{i, j, k} {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index %d with %d vertices", ErrIndexOutOfRange, idx, n)
		}
	}
	m.faces = append(m.faces, Face{i, j, k})
	return nil
}

// Vertices returns the vertex sequence in insertion order. The returned
// slice is the mesh's backing storage and must not be modified.
func (m *Trimesh[T]) Vertices() []T {
	return m.vertices
}

// Faces returns the face sequence in insertion order. The returned slice is
// the mesh's backing storage and must not be modified.
func (m *Trimesh[T]) Faces() []Face {
	return m.faces
}

// NumVertices returns the number of vertices.
func (m *Trimesh[T]) NumVertices() int {
	return len(m.vertices)
}

// NumFaces returns the number of faces.
func (m *Trimesh[T]) NumFaces() int {
	return len(m.faces)
}

// Dim returns the vertex dimensionality, 2 or 3.
func (m *Trimesh[T]) Dim() int {
	var zero T
	return zero.Dims()
}

// VertexAt returns the coordinates of vertex i as a fresh slice.
func (m *Trimesh[T]) VertexAt(i int) []float32 {
	return m.vertices[i].Coords()
}

// Combine returns a new mesh holding the disjoint union of a's and b's
// triangles: a's vertices followed by b's, a's faces followed by b's with
// every index shifted by a's vertex count. Winding and ordering are
// preserved; coincident vertices are not welded. Neither operand is
// modified and the result shares no storage with them.
func Combine[T geometry.Point](a, b *Trimesh[T]) *Trimesh[T] {
	out := &Trimesh[T]{
		vertices: make([]T, 0, len(a.vertices)+len(b.vertices)),
		faces:    make([]Face, 0, len(a.faces)+len(b.faces)),
	}
	out.vertices = append(out.vertices, a.vertices...)
	out.vertices = append(out.vertices, b.vertices...)
	out.faces = append(out.faces, a.faces...)
	offset := len(a.vertices)
	for _, f := range b.faces {
		out.faces = append(out.faces, f.shift(offset))
	}
	return out
}

// CombineInPlace appends other's geometry into m using the same index-shift
// rule as Combine, then returns m. other is not modified and may be read
// concurrently during the call; m requires exclusive access.
//
// The offset and face count are snapshotted before any append, so
// m.CombineInPlace(m) doubles the mesh correctly.
func (m *Trimesh[T]) CombineInPlace(other *Trimesh[T]) *Trimesh[T] {
	offset := len(m.vertices)
	nVertices := len(other.vertices)
	nFaces := len(other.faces)
	for i := 0; i < nFaces; i++ {
		m.faces = append(m.faces, other.faces[i].shift(offset))
	}
	m.vertices = append(m.vertices, other.vertices[:nVertices]...)
	return m
}
