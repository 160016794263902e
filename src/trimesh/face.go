package trimesh

// Face is an ordered triple of vertex indices describing one triangle.
// The order is the winding order; every operation preserves it exactly.
type Face [3]int

func NewFace(i, j, k int) Face {
	return Face{i, j, k}
}

// Vertices returns the three vertex indices in winding order.
func (f Face) Vertices() (i, j, k int) {
	return f[0], f[1], f[2]
}

// Edges returns the three directed edges of the face in winding order.
func (f Face) Edges() [3][2]int {
	return [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
}

// shift returns the face with every index offset by n.
func (f Face) shift(n int) Face {
	return Face{f[0] + n, f[1] + n, f[2] + n}
}
