package trimesh

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"tmesh/src/geometry"
)

// Triangulate2D computes a Delaunay triangulation of the given points using
// the Bowyer-Watson incremental algorithm. The result's vertex sequence is
// exactly the input, in input order. When shuffle is true the insertion
// order is randomized, which usually improves runtime on sorted inputs.
//
// At least 3 points are required. Collinear inputs produce a mesh with zero
// faces; near-degenerate inputs are subject to floating-point tolerance.
func Triangulate2D(points []geometry.Point2D, shuffle bool) (*Trimesh[geometry.Point2D], error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("trimesh: triangulation requires at least 3 points, got %d", n)
	}

	// Working vertex list holds the input first and the super-triangle
	// last, so faces that survive keep their input indices and no remap
	// pass is needed.
	pts := make([]geometry.Point2D, n, n+3)
	copy(pts, points)

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math32.Min(lo.X, p.X)
		lo.Y = math32.Min(lo.Y, p.Y)
		hi.X = math32.Max(hi.X, p.X)
		hi.Y = math32.Max(hi.Y, p.Y)
	}
	cx, cy := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	span := math32.Max(hi.X-lo.X, hi.Y-lo.Y)
	big := 20 * math32.Max(span, 1)

	// Counter-clockwise super-triangle enclosing every input point.
	pts = append(pts,
		geometry.Point2D{X: cx - big, Y: cy - big},
		geometry.Point2D{X: cx + big, Y: cy - big},
		geometry.Point2D{X: cx, Y: cy + big},
	)
	tris := []Face{{n, n + 1, n + 2}}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		rand.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	var bad []Face
	for _, pi := range order {
		p := pts[pi]

		bad = bad[:0]
		keep := tris[:0]
		for _, tr := range tris {
			if triangleAt(pts, tr).CircumcircleContains(p) {
				bad = append(bad, tr)
			} else {
				keep = append(keep, tr)
			}
		}

		// The cavity boundary is every directed edge of a bad triangle
		// whose reverse is not also a bad-triangle edge. Triangles stay
		// counter-clockwise, so (a, b, p) is counter-clockwise too.
		edges := make(map[[2]int]bool, 3*len(bad))
		for _, tr := range bad {
			for _, e := range tr.Edges() {
				edges[e] = true
			}
		}
		tris = keep
		for _, tr := range bad {
			for _, e := range tr.Edges() {
				if !edges[[2]int{e[1], e[0]}] {
					tris = append(tris, Face{e[0], e[1], pi})
				}
			}
		}
	}

	out := NewTrimesh[geometry.Point2D]()
	for _, p := range points {
		out.AddVertex(p)
	}
	for _, tr := range tris {
		if tr[0] >= n || tr[1] >= n || tr[2] >= n {
			continue // touches the super-triangle
		}
		if err := out.AddFace(tr[0], tr[1], tr[2]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func triangleAt(pts []geometry.Point2D, f Face) geometry.Triangle2D {
	return geometry.Triangle2D{P1: pts[f[0]], P2: pts[f[1]], P3: pts[f[2]]}
}
