package must2

import (
	"math"

	"github.com/jeffbarr/TruchetTilings/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// 2D Circle

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) *circle {
	if radius <= 0 {
		panic("radius <= 0")
	}
	s := circle{}
	s.radius = radius
	d := r2.Vec{X: radius, Y: radius}
	s.bb = r2.Box{Min: r2.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - s.radius
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// 2D Ring

// ring is an annulus of a given width centered on a circle of a given radius.
type ring struct {
	radius float64
	half   float64 // half width
	bb     r2.Box
}

// Ring returns an annulus whose centerline is a circle of radius
// and whose band is width wide.
func Ring(radius, width float64) *ring {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if width <= 0 {
		panic("width <= 0")
	}
	s := ring{radius: radius, half: width / 2}
	d := d2.Elem(radius + s.half)
	s.bb = r2.Box{Min: r2.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to a 2d ring.
func (s *ring) Evaluate(p r2.Vec) float64 {
	return math.Abs(r2.Norm(p)-s.radius) - s.half
}

// Bounds returns the bounding box of a 2d ring.
func (s *ring) Bounds() r2.Box {
	return s.bb
}

// 2D Segment

// segment is a band of constant width around the line segment a-b,
// with round caps.
type segment struct {
	a, b   r2.Vec
	dir    r2.Vec  // unit vector a->b
	length float64 // |b-a|
	half   float64 // half width
	bb     r2.Box
}

// Segment returns a band of width centered on the line segment from a to b.
func Segment(a, b r2.Vec, width float64) *segment {
	if width <= 0 {
		panic("width <= 0")
	}
	l := r2.Sub(b, a)
	length := r2.Norm(l)
	if length < tolerance {
		panic("degenerate segment")
	}
	s := segment{a: a, b: b, dir: r2.Scale(1/length, l), length: length, half: width / 2}
	bb := d2.Box{Min: d2.MinElem(a, b), Max: d2.MaxElem(a, b)}
	s.bb = r2.Box(bb.Enlarge(d2.Elem(width)))
	return &s
}

// Evaluate returns the minimum distance to a 2d segment.
func (s *segment) Evaluate(p r2.Vec) float64 {
	pa := r2.Sub(p, s.a)
	t := math.Max(0, math.Min(s.length, r2.Dot(pa, s.dir)))
	return r2.Norm(r2.Sub(pa, r2.Scale(t, s.dir))) - s.half
}

// Bounds returns the bounding box of a 2d segment.
func (s *segment) Bounds() r2.Box {
	return s.bb
}
