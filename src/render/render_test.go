package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulkan-go/vulkan"

	"tmesh/src/geometry"
	"tmesh/src/trimesh"
)

func TestPackLayout(t *testing.T) {
	m := trimesh.NewTrimesh[geometry.Point3D]()
	m.AddVertex(geometry.NewPoint3D(0, 0, 0))
	m.AddVertex(geometry.NewPoint3D(1, 0, 0))
	m.AddVertex(geometry.NewPoint3D(0, 1, 0))
	m.AddVertex(geometry.NewPoint3D(0, 0, 1))
	require.NoError(t, m.AddFace(0, 1, 2))
	require.NoError(t, m.AddFace(2, 1, 3))

	p := Pack(m)
	require.Equal(t, 4, p.NumVertices())
	require.Equal(t, 6, p.NumIndices())
	require.Equal(t, []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, p.Vertices)
	require.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, p.Indices)
}

func TestPackEmpty(t *testing.T) {
	p := Pack(trimesh.NewTrimesh[geometry.Point3D]())
	require.Equal(t, 0, p.NumVertices())
	require.Equal(t, 0, p.NumIndices())
	require.Empty(t, p.VertexBytes())
	require.Empty(t, p.IndexBytes())
}

func TestPackBytes(t *testing.T) {
	p := PackedMesh{
		Vertices: []float32{1.0},
		Indices:  []uint32{0x01020304},
	}

	vb := p.VertexBytes()
	require.Len(t, vb, 4)
	// 1.0 is 0x3f800000, little-endian.
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, vb)

	ib := p.IndexBytes()
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, ib)
}

func TestNewError(t *testing.T) {
	require.NoError(t, NewError(vulkan.Success))
	require.False(t, IsError(vulkan.Success))

	err := NewError(vulkan.ErrorDeviceLost)
	require.Error(t, err)
	require.True(t, IsError(vulkan.ErrorDeviceLost))
	require.Contains(t, err.Error(), "vulkan error")
	// The caller's frame should be named, not NewError itself.
	require.Contains(t, err.Error(), "TestNewError")
}

func TestCheckError(t *testing.T) {
	run := func() (err error) {
		defer CheckError(&err)
		panic("boom")
	}
	err := run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestOrPanic(t *testing.T) {
	require.NotPanics(t, func() { OrPanic(nil) })

	ran := false
	require.PanicsWithError(t, "nope", func() {
		OrPanic(errors.New("nope"), func() { ran = true })
	})
	require.True(t, ran)
}
