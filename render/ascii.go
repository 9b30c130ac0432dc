package render

import (
	"io"
	"os"

	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteASCIISTL writes model triangles to w as an ASCII STL solid.
func WriteASCIISTL(w io.Writer, name string, model []r3.Triangle) error {
	if len(model) == 0 {
		return ErrEmptyMesh
	}
	return solidFrom(name, model).WriteAll(w)
}

// CreateASCIISTL renders r and writes the result as an ASCII STL file.
func CreateASCIISTL(path, name string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	if len(model) == 0 {
		return ErrEmptyMesh
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteASCIISTL(fp, name, model)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadSTL reads an ASCII or binary STL stream.
func ReadSTL(r io.ReadSeeker) ([]r3.Triangle, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return modelFrom(solid), nil
}

// ReadSTLFile reads an ASCII or binary STL file.
func ReadSTLFile(path string) ([]r3.Triangle, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return modelFrom(solid), nil
}

func modelFrom(solid *stl.Solid) []r3.Triangle {
	model := make([]r3.Triangle, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			model[i][j] = r3From3F32(v)
		}
	}
	return model
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func solidFrom(name string, model []r3.Triangle) *stl.Solid {
	solid := &stl.Solid{
		Name:      name,
		IsAscii:   true,
		Triangles: make([]stl.Triangle, len(model)),
	}
	for i, t := range model {
		st := &solid.Triangles[i]
		st.Normal = f32From(r3.Unit(t.Normal()))
		for j := range t {
			st.Vertices[j] = f32From(t[j])
		}
	}
	return solid
}
