package form2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestShapeErrors(t *testing.T) {
	if _, err := Circle(-1); err == nil {
		t.Error("negative circle radius accepted")
	}
	if _, err := Ring(1, 0); err == nil {
		t.Error("zero ring width accepted")
	}
	if _, err := Segment(r2.Vec{}, r2.Vec{}, 1); err == nil {
		t.Error("degenerate segment accepted")
	}
	if _, err := Polygon([]r2.Vec{{}, {X: 1}}); err == nil {
		t.Error("two vertex polygon accepted")
	}
}

func TestRing(t *testing.T) {
	s, err := Ring(2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 2}, -0.25},
		{r2.Vec{Y: -2.25}, 0},
		{r2.Vec{}, 1.75},
		{r2.Vec{X: 3}, 0.75},
	} {
		if got := s.Evaluate(tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Evaluate(%v) = %g, want %g", tc.p, got, tc.want)
		}
	}
}

func TestSegment(t *testing.T) {
	s, err := Segment(r2.Vec{X: -1}, r2.Vec{X: 1}, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Evaluate(r2.Vec{Y: 1}); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("side distance %g, want 0.8", got)
	}
	if got := s.Evaluate(r2.Vec{X: 2}); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("cap distance %g, want 0.8", got)
	}
	bb := s.Bounds()
	if math.Abs(bb.Min.X+1.2) > 1e-12 || math.Abs(bb.Max.Y-0.2) > 1e-12 {
		t.Errorf("bounds %v", bb)
	}
}

func TestHexagon(t *testing.T) {
	const r = 10.0
	h, err := Hexagon(r)
	if err != nil {
		t.Fatal(err)
	}
	apothem := r * math.Sqrt(3) / 2
	if got := h.Evaluate(r2.Vec{}); math.Abs(got+apothem) > 1e-9 {
		t.Errorf("center distance %g, want %g", got, -apothem)
	}
	// flat top: the top edge is at y = apothem
	if got := h.Evaluate(r2.Vec{Y: apothem}); math.Abs(got) > 1e-9 {
		t.Errorf("top edge distance %g, want 0", got)
	}
	// pointy side: vertex at x = r
	if got := h.Evaluate(r2.Vec{X: r}); math.Abs(got) > 1e-9 {
		t.Errorf("vertex distance %g, want 0", got)
	}
}

func TestMultiPolygonHole(t *testing.T) {
	outer := []r2.Vec{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}}
	// opposite winding makes a hole
	hole := []r2.Vec{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	s, err := MultiPolygon([][]r2.Vec{outer, hole})
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{}); d <= 0 {
		t.Errorf("hole center should be outside, got %g", d)
	}
	if d := s.Evaluate(r2.Vec{X: 1.5}); d >= 0 {
		t.Errorf("frame should be inside, got %g", d)
	}
}
