package must2

import (
	"math"

	"github.com/jeffbarr/TruchetTilings/internal/d2"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from one or more closed sets of line segments.
// A point is inside when the sum of winding numbers over all contours is
// non-zero, so holes are contours wound opposite to their outline.
type polygon struct {
	segs []polySegment
	bb   r2.Box
}

type polySegment struct {
	a, b   r2.Vec
	vector r2.Vec  // unit line vector
	length float64 // line length
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) sdf.SDF2 {
	return MultiPolygon([][]r2.Vec{vertex})
}

// MultiPolygon returns an SDF2 made from several closed contours
// evaluated with the non-zero winding rule.
func MultiPolygon(contours [][]r2.Vec) sdf.SDF2 {
	if len(contours) == 0 {
		panic("no contours")
	}
	s := polygon{}
	bb := d2.Box{Min: d2.Elem(math.Inf(1)), Max: d2.Elem(math.Inf(-1))}
	for _, vertex := range contours {
		n := len(vertex)
		if n < 3 {
			panic("number of vertices < 3")
		}
		// Close the loop (if necessary)
		if d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
			n--
		}
		for i := 0; i < n; i++ {
			a, b := vertex[i], vertex[(i+1)%n]
			l := r2.Sub(b, a)
			length := r2.Norm(l)
			if length < tolerance {
				continue
			}
			s.segs = append(s.segs, polySegment{a: a, b: b, vector: r2.Scale(1/length, l), length: length})
			bb = bb.Include(a)
		}
	}
	if len(s.segs) < 3 {
		panic("degenerate polygon")
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	for i := range s.segs {
		sg := &s.segs[i]
		a, b := sg.a, sg.b
		pa := r2.Sub(p, a)

		t := r2.Dot(pa, sg.vector)                                 // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: sg.vector.Y, Y: -sg.vector.X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > sg.length {
			dd = math.Min(dd, r2.Norm2(r2.Sub(p, b))) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y { // upward crossing
				if dn < 0 { // p is to the left of the line segment
					wn++ // up intersect
				}
			}
		} else {
			if b.Y <= p.Y { // downward crossing
				if dn > 0 { // p is to the right of the line segment
					wn-- // down intersect
				}
			}
		}
	}

	// normalise d*d to d
	d := math.Sqrt(dd)
	if wn != 0 {
		// p is inside the polygon
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// Nagon return the vertices of a N sided regular polygon. The first
// vertex lies on the positive x axis and the rest follow counter clockwise.
func Nagon(n int, radius float64) d2.Set {
	if n < 3 {
		return nil
	}
	m := sdf.Rotate(2 * math.Pi / float64(n))
	v := make(d2.Set, n)
	p := r2.Vec{X: radius, Y: 0}
	for i := 0; i < n; i++ {
		v[i] = p
		p = m.MulPosition(p)
	}
	return v
}
