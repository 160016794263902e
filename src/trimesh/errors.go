package trimesh

import "errors"

var (
	// ErrIndexOutOfRange is returned when a face references a vertex index
	// that does not exist in the mesh.
	ErrIndexOutOfRange = errors.New("trimesh: face index out of range")

	// ErrDimensionMismatch is returned when two meshes of different
	// dimensionality are combined through the dynamic surface. Neither
	// operand is modified when this is returned.
	ErrDimensionMismatch = errors.New("trimesh: dimension mismatch")
)
