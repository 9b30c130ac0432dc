// Package tile builds the printable solids of interior cells and of the
// border and corner pieces that square off a panel.
package tile

import (
	"fmt"

	"github.com/jeffbarr/TruchetTilings/pattern"
	"gonum.org/v1/gonum/spatial/r2"
)

// Variant is the shape of a whole or partial hexagon. Vertices A through F
// of the full hexagon lie at 0, 60, ... 300 degrees.
type Variant int

const (
	Full Variant = iota
	// LeftHalf is the triangle C D E at the left point of the hexagon.
	LeftHalf
	// RightHalf is the triangle F A B at the right point.
	RightHalf
	// TopHalf is A B C D, above the horizontal through the center.
	TopHalf
	// BottomHalf is D E F A.
	BottomHalf
	// BottomLeftCorner is M' D E with M' = (-r/2, 0).
	BottomLeftCorner
	// BottomRightCorner is F A M with M = (r/2, 0).
	BottomRightCorner
)

var variantNames = [...]string{
	Full:              "full",
	LeftHalf:          "left-half",
	RightHalf:         "right-half",
	TopHalf:           "top-half",
	BottomHalf:        "bottom-half",
	BottomLeftCorner:  "bottom-left-corner",
	BottomRightCorner: "bottom-right-corner",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Outline returns the counter-clockwise vertices of variant v for a
// hexagon of circumradius radius centered on the origin.
func Outline(v Variant, radius float64) []r2.Vec {
	vtx := func(idx ...int) []r2.Vec {
		out := make([]r2.Vec, len(idx))
		for i, n := range idx {
			out[i] = pattern.Vertex(n, radius)
		}
		return out
	}
	// r*sin(30)
	m := r2.Vec{X: radius / 2}
	switch v {
	case Full:
		return vtx(0, 1, 2, 3, 4, 5)
	case LeftHalf:
		return vtx(2, 3, 4)
	case RightHalf:
		return vtx(5, 0, 1)
	case TopHalf:
		return vtx(0, 1, 2, 3)
	case BottomHalf:
		return vtx(3, 4, 5, 0)
	case BottomLeftCorner:
		return append([]r2.Vec{r2.Scale(-1, m)}, vtx(3, 4)...)
	case BottomRightCorner:
		return append(vtx(5, 0), m)
	}
	panic(fmt.Sprintf("tile: invalid variant %d", int(v)))
}

// mirrorOutline reflects poly about the x axis keeping it counter-clockwise.
func mirrorOutline(poly []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = r2.Vec{X: p.X, Y: -p.Y}
	}
	return out
}

func translateOutline(poly []r2.Vec, d r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(poly))
	for i, p := range poly {
		out[i] = r2.Add(p, d)
	}
	return out
}
