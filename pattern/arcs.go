package pattern

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Hexagon reference points. Vertex 0 (A) lies on the positive x axis and
// the rest follow counter clockwise every 60 degrees.

// Vertex returns hexagon vertex i of a hexagon with circumradius radius.
func Vertex(i int, radius float64) r2.Vec {
	return polar(radius, float64(mod(i, 6))*60)
}

// Midpoint returns the midpoint of the edge from vertex i to vertex i+1.
func Midpoint(i int, radius float64) r2.Vec {
	return polar(radius*math.Sqrt(3)/2, float64(mod(i, 6))*60+30)
}

// Tip returns the point where the extensions of the two edges adjacent to
// edge i meet, at distance √3·radius from the center. It is the apex of the
// equilateral triangle raised on edge i.
func Tip(i int, radius float64) r2.Vec {
	return polar(radius*math.Sqrt(3), float64(mod(i, 6))*60+30)
}

func polar(r, degrees float64) r2.Vec {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return r2.Vec{X: r * c, Y: r * s}
}

// rotate turns p by steps*60 degrees about the origin.
func rotate(p r2.Vec, steps int) r2.Vec {
	s, c := math.Sincos(float64(mod(steps, 6)) * math.Pi / 3)
	return r2.Vec{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y}
}

// Ring is a circular band centered on Center. Its centerline has the given
// Radius; the band width is Arcs.Width.
type Ring struct {
	Center r2.Vec
	Radius float64
}

// Rotate returns r turned by steps*60 degrees about the hexagon center.
func (r Ring) Rotate(steps int) Ring {
	r.Center = rotate(r.Center, steps)
	return r
}

// Segment is a straight band of width Arcs.Width between A and B.
type Segment struct {
	A, B r2.Vec
}

// Rotate returns s turned by steps*60 degrees about the hexagon center.
func (s Segment) Rotate(steps int) Segment {
	return Segment{A: rotate(s.A, steps), B: rotate(s.B, steps)}
}

// Disk is a filled circle.
type Disk struct {
	Center r2.Vec
	Radius float64
}

// Rotate returns d turned by steps*60 degrees about the hexagon center.
func (d Disk) Rotate(steps int) Disk {
	d.Center = rotate(d.Center, steps)
	return d
}

// Arcs is the decoration of one hexagon in hexagon local coordinates.
// Bands are the union of Rings and Segments. Fill regions are the union of
// Fills minus the bands. Both are clipped to the hexagon outline by the
// renderer.
type Arcs struct {
	Index    Index
	Width    float64
	Rings    []Ring
	Segments []Segment
	Fills    []Disk
}

// Empty reports whether a draws nothing.
func (a Arcs) Empty() bool {
	return len(a.Rings) == 0 && len(a.Segments) == 0
}

// Rotate returns a copy of a turned by steps*60 degrees about the hexagon center.
func (a Arcs) Rotate(steps int) Arcs {
	out := Arcs{Index: a.Index, Width: a.Width}
	for _, r := range a.Rings {
		out.Rings = append(out.Rings, r.Rotate(steps))
	}
	for _, s := range a.Segments {
		out.Segments = append(out.Segments, s.Rotate(steps))
	}
	for _, d := range a.Fills {
		out.Fills = append(out.Fills, d.Rotate(steps))
	}
	return out
}

// ArcGeometry returns arc layout idx for a hexagon of circumradius radius.
// Index None returns an empty layout.
func ArcGeometry(idx Index, radius, arcWidth float64) (Arcs, error) {
	if radius <= 0 {
		return Arcs{}, fmt.Errorf("radius must be positive, got %g", radius)
	}
	if idx != None && (arcWidth <= 0 || arcWidth >= radius/2) {
		return Arcs{}, fmt.Errorf("arc width %g outside (0, %g)", arcWidth, radius/2)
	}
	half := radius / 2
	a := Arcs{Index: idx, Width: arcWidth}
	switch idx {
	case None:
	case 1:
		a.Rings = []Ring{{Vertex(0, radius), half}}
	case 2:
		a.Rings = []Ring{
			{Vertex(0, radius), half},
			{Vertex(2, radius), half},
			{Vertex(4, radius), half},
		}
	case 3:
		a.Rings = []Ring{
			{Vertex(0, radius), half},
			{Vertex(3, radius), half},
		}
		a.Segments = []Segment{{Midpoint(1, radius), Midpoint(4, radius)}}
		a.Fills = []Disk{
			{Vertex(0, radius), half - arcWidth/2},
			{Vertex(3, radius), half - arcWidth/2},
		}
	case 4:
		a.Segments = []Segment{
			{Midpoint(0, radius), Midpoint(3, radius)},
			{Midpoint(1, radius), Midpoint(4, radius)},
			{Midpoint(2, radius), Midpoint(5, radius)},
		}
		a.Fills = []Disk{
			{Vertex(0, radius), radius / 4},
			{Vertex(2, radius), radius / 4},
			{Vertex(4, radius), radius / 4},
		}
	case 5:
		for _, i := range []int{0, 2, 4} {
			a.Rings = append(a.Rings, Ring{Tip(i, radius), radius})
			a.Fills = append(a.Fills, Disk{Tip(i, radius), radius - arcWidth/2})
		}
	case 6:
		for _, i := range []int{0, 3} {
			a.Rings = append(a.Rings, Ring{Vertex(i, radius), half}, Ring{Vertex(i, radius), radius})
			a.Fills = append(a.Fills, Disk{Vertex(i, radius), half - arcWidth/2})
		}
	default:
		return Arcs{}, fmt.Errorf("arc index %d outside 0..%d", idx, MaxIndex)
	}
	return a, nil
}
