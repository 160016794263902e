package render

import (
	"encoding/binary"
	"math"

	"tmesh/src/geometry"
	"tmesh/src/trimesh"
)

// PackedMesh is a mesh flattened into the layout GPU buffers expect:
// three float32 coordinates per vertex, three uint32 indices per face,
// both in insertion order.
type PackedMesh struct {
	Vertices []float32
	Indices  []uint32
}

// Pack flattens a 3D mesh. The mesh is only read.
func Pack(m *trimesh.Trimesh[geometry.Point3D]) PackedMesh {
	vertices := m.Vertices()
	faces := m.Faces()
	p := PackedMesh{
		Vertices: make([]float32, 0, 3*len(vertices)),
		Indices:  make([]uint32, 0, 3*len(faces)),
	}
	for _, v := range vertices {
		p.Vertices = append(p.Vertices, v.X, v.Y, v.Z)
	}
	for _, f := range faces {
		i, j, k := f.Vertices()
		p.Indices = append(p.Indices, uint32(i), uint32(j), uint32(k))
	}
	return p
}

// NumVertices returns the number of packed vertices.
func (p PackedMesh) NumVertices() int { return len(p.Vertices) / 3 }

// NumIndices returns the number of packed indices (three per face).
func (p PackedMesh) NumIndices() int { return len(p.Indices) }

// VertexBytes returns the vertex array as little-endian bytes.
func (p PackedMesh) VertexBytes() []byte {
	buf := make([]byte, 4*len(p.Vertices))
	for i, v := range p.Vertices {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// IndexBytes returns the index array as little-endian bytes.
func (p PackedMesh) IndexBytes() []byte {
	buf := make([]byte, 4*len(p.Indices))
	for i, v := range p.Indices {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}
