package render

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyMesh is returned when a mesh with no triangles would be written
// or indexed.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Renderer produces a triangle mesh incrementally. ReadTriangles fills t
// and returns io.EOF once the mesh is exhausted.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}
