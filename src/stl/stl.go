// Package stl serializes 3D triangle meshes to the STL file format, binary
// and ASCII. It consumes a mesh purely through its read accessors; facet
// normals are computed here from the face winding, since the mesh core does
// not store normals.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"tmesh/src/geometry"
	"tmesh/src/trimesh"
)

// headerText is written at the start of the 80-byte binary header.
// It must not begin with "solid", which ASCII parsers key on.
const headerText = "tmesh binary STL"

// facet is the 50-byte binary STL facet record.
type facet struct {
	Normal   [3]float32
	Vertices [3][3]float32
	Attr     uint16
}

// Save writes the mesh to w in binary little-endian STL.
func Save(w io.Writer, m *trimesh.Trimesh[geometry.Point3D]) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], headerText)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.NumFaces())); err != nil {
		return fmt.Errorf("stl: writing facet count: %w", err)
	}

	vertices := m.Vertices()
	for fi, f := range m.Faces() {
		if err := binary.Write(bw, binary.LittleEndian, facetFor(vertices, f)); err != nil {
			return fmt.Errorf("stl: writing facet %d: %w", fi, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("stl: flushing: %w", err)
	}
	trimesh.Logger().Debug("encoded binary STL",
		"vertices", m.NumVertices(), "faces", m.NumFaces())
	return nil
}

// SaveFile writes the mesh to the named file in binary STL.
func SaveFile(name string, m *trimesh.Trimesh[geometry.Point3D]) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	if err := Save(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveASCII writes the mesh to w in ASCII STL as the named solid.
func SaveASCII(w io.Writer, m *trimesh.Trimesh[geometry.Point3D], name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	vertices := m.Vertices()
	for _, f := range m.Faces() {
		tri := triangleFor(vertices, f)
		n := tri.Normal()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, p := range [3]geometry.Point3D{tri.P1, tri.P2, tri.P3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", p.X, p.Y, p.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("stl: flushing: %w", err)
	}
	return nil
}

// Load reads a binary STL stream into a new mesh. Each facet contributes
// three fresh vertices and one face; coincident vertices across facets are
// not welded, mirroring the combine semantics of the mesh core.
func Load(r io.Reader) (*trimesh.Trimesh[geometry.Point3D], error) {
	br := bufio.NewReader(r)

	var header [80]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("stl: reading facet count: %w", err)
	}

	m := trimesh.NewTrimesh[geometry.Point3D]()
	for fi := uint32(0); fi < count; fi++ {
		var rec facet
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("stl: reading facet %d of %d: %w", fi, count, err)
		}
		base := m.NumVertices()
		for _, v := range rec.Vertices {
			m.AddVertex(geometry.Point3D{X: v[0], Y: v[1], Z: v[2]})
		}
		if err := m.AddFace(base, base+1, base+2); err != nil {
			return nil, err
		}
	}
	trimesh.Logger().Debug("decoded binary STL",
		"vertices", m.NumVertices(), "faces", m.NumFaces())
	return m, nil
}

// LoadFile reads the named binary STL file into a new mesh.
func LoadFile(name string) (*trimesh.Trimesh[geometry.Point3D], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func triangleFor(vertices []geometry.Point3D, f trimesh.Face) geometry.Triangle3D {
	i, j, k := f.Vertices()
	return geometry.Triangle3D{P1: vertices[i], P2: vertices[j], P3: vertices[k]}
}

func facetFor(vertices []geometry.Point3D, f trimesh.Face) facet {
	tri := triangleFor(vertices, f)
	n := tri.Normal()
	return facet{
		Normal: [3]float32{n.X, n.Y, n.Z},
		Vertices: [3][3]float32{
			{tri.P1.X, tri.P1.Y, tri.P1.Z},
			{tri.P2.X, tri.P2.Y, tri.P2.Z},
			{tri.P3.X, tri.P3.Y, tri.P3.Z},
		},
	}
}
