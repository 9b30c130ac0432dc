package form2

import (
	"runtime/debug"

	"github.com/jeffbarr/TruchetTilings/form2/must2"
	"github.com/jeffbarr/TruchetTilings/internal/d2"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) (s sdf.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Polygon(vertex), err
}

// MultiPolygon returns an SDF2 made of several contours filled with the
// non-zero winding rule.
func MultiPolygon(contours [][]r2.Vec) (s sdf.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.MultiPolygon(contours), err
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (s d2.Set, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Nagon(n, radius), err
}

// Hexagon returns a flat-top regular hexagon with circumradius radius
// centered on the origin.
func Hexagon(radius float64) (sdf.SDF2, error) {
	v, err := Nagon(6, radius)
	if err != nil {
		return nil, err
	}
	return Polygon(v)
}
