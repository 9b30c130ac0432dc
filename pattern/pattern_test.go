package pattern

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func near(a, b r2.Vec) bool { return r2.Norm(r2.Sub(a, b)) < tol }

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v", m.String(), got)
		}
	}
	for _, s := range []string{"", "7", "1-2-3", "circledtriad"} {
		if _, err := ParseMode(s); err == nil {
			t.Errorf("ParseMode(%q): expected error", s)
		}
	}
}

func TestModeText(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("3-4-5-6")); err != nil {
		t.Fatal(err)
	}
	b, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "3-4-5-6" {
		t.Errorf("got %q", b)
	}
	if _, err := Mode(0).MarshalText(); err == nil {
		t.Error("zero mode marshalled")
	}
}

func TestAdmissibleRange(t *testing.T) {
	for _, tc := range []struct {
		mode     Mode
		min, max Index
		table    bool
	}{
		{Mode1, 1, 1, false},
		{Mode4, 4, 4, false},
		{Mode6, 6, 6, false},
		{Mode12, 1, 2, false},
		{Mode3456, 3, 6, false},
		{ModeCircledTriad, 1, 1, true},
	} {
		min, max := tc.mode.AdmissibleRange()
		if min != tc.min || max != tc.max {
			t.Errorf("%v: range [%d,%d], want [%d,%d]", tc.mode, min, max, tc.min, tc.max)
		}
		if tc.mode.TableDriven() != tc.table {
			t.Errorf("%v: TableDriven() = %v", tc.mode, tc.mode.TableDriven())
		}
	}
}

func TestLookupTriad(t *testing.T) {
	present := 0
	for x := 0; x < ModuloX; x++ {
		for y := 0; y < ModuloY; y += 2 {
			e, ok := LookupTriad(x, y)
			if !ok {
				continue
			}
			present++
			if e.Arc != 1 {
				t.Errorf("(%d,%d): arc %d", x, y, e.Arc)
			}
			if e.Offset != [2]int{x, y} {
				t.Errorf("(%d,%d): offset %v", x, y, e.Offset)
			}
		}
	}
	if present != 6 {
		t.Errorf("%d of 8 slots filled, want 6", present)
	}
	if len(triadTable) != 8 {
		t.Fatalf("table has %d slots, want 8", len(triadTable))
	}
	var empty [][2]int
	for i, e := range triadTable {
		want := [2]int{i / 2, 2 * (i % 2)}
		if e.Offset != want {
			t.Errorf("slot %d holds offset %v, want %v", i, e.Offset, want)
		}
		if e.Arc == None {
			empty = append(empty, e.Offset)
		}
	}
	if len(empty) != 2 || empty[0] != [2]int{0, 2} || empty[1] != [2]int{2, 0} {
		t.Errorf("empty slots %v, want [0 2] and [2 0]", empty)
	}
	for _, xy := range [][2]int{{0, 2}, {2, 0}, {4, 6}, {6, 8}, {1, 1}} {
		if _, ok := LookupTriad(xy[0], xy[1]); ok {
			t.Errorf("%v should be absent", xy)
		}
	}
	// periodic, including negative coordinates
	a, _ := LookupTriad(1, 2)
	b, ok := LookupTriad(-3, -2)
	if !ok || a != b {
		t.Errorf("table not periodic: %v %v", a, b)
	}
}

// Each triad's three rings share one center: the vertex the three cells meet at.
func TestTriadRingsMeet(t *testing.T) {
	const r = 1.0
	dx, dy := 1.5*r, r*math.Sqrt(3)/2
	center := func(x, y int) r2.Vec {
		c := r2.Vec{X: float64(x) * dx, Y: float64(y) * dy}
		if x%2 == 1 {
			c.Y += dy
		}
		return c
	}
	for _, triad := range [][3][2]int{
		{{0, 0}, {1, 0}, {1, -2}},
		{{2, 2}, {3, 2}, {3, 0}},
	} {
		var meet []r2.Vec
		for _, xy := range triad {
			e, ok := LookupTriad(xy[0], xy[1])
			if !ok {
				t.Fatalf("%v absent", xy)
			}
			arcs, err := ArcGeometry(e.Arc, r, 0.1)
			if err != nil {
				t.Fatal(err)
			}
			ring := arcs.Rotate(e.Rotation).Rings[0]
			meet = append(meet, r2.Add(center(xy[0], xy[1]), ring.Center))
		}
		if !near(meet[0], meet[1]) || !near(meet[0], meet[2]) {
			t.Errorf("triad %v rings at %v", triad, meet)
		}
	}
}

func TestReferencePoints(t *testing.T) {
	const r = 2.0
	for i := 0; i < 6; i++ {
		if d := r2.Norm(Vertex(i, r)); math.Abs(d-r) > tol {
			t.Errorf("vertex %d at distance %g", i, d)
		}
		mid := r2.Scale(0.5, r2.Add(Vertex(i, r), Vertex(i+1, r)))
		if !near(mid, Midpoint(i, r)) {
			t.Errorf("midpoint %d: %v, want %v", i, Midpoint(i, r), mid)
		}
		// the tip is one radius away from both ends of its edge
		tip := Tip(i, r)
		for _, v := range []r2.Vec{Vertex(i, r), Vertex(i+1, r)} {
			if d := r2.Norm(r2.Sub(tip, v)); math.Abs(d-r) > tol {
				t.Errorf("tip %d at %g from vertex", i, d)
			}
		}
	}
	if !near(Vertex(0, r), r2.Vec{X: r}) {
		t.Errorf("vertex A at %v", Vertex(0, r))
	}
}

func TestArcGeometryCounts(t *testing.T) {
	for _, tc := range []struct {
		idx                    Index
		rings, segments, fills int
	}{
		{None, 0, 0, 0},
		{1, 1, 0, 0},
		{2, 3, 0, 0},
		{3, 2, 1, 2},
		{4, 0, 3, 3},
		{5, 3, 0, 3},
		{6, 4, 0, 2},
	} {
		a, err := ArcGeometry(tc.idx, 10, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(a.Rings) != tc.rings || len(a.Segments) != tc.segments || len(a.Fills) != tc.fills {
			t.Errorf("pattern %d: %d rings %d segments %d fills", tc.idx,
				len(a.Rings), len(a.Segments), len(a.Fills))
		}
		if (tc.idx == None) != a.Empty() {
			t.Errorf("pattern %d: Empty() = %v", tc.idx, a.Empty())
		}
		if tc.idx < 3 && len(a.Fills) != 0 {
			t.Errorf("pattern %d defines fills", tc.idx)
		}
	}
}

func TestArcGeometryErrors(t *testing.T) {
	if _, err := ArcGeometry(7, 10, 1); err == nil {
		t.Error("index 7 accepted")
	}
	if _, err := ArcGeometry(1, 0, 1); err == nil {
		t.Error("zero radius accepted")
	}
	if _, err := ArcGeometry(1, 10, 5); err == nil {
		t.Error("arc width r/2 accepted")
	}
	if _, err := ArcGeometry(None, 10, 0); err != nil {
		t.Errorf("no decoration needs no width: %s", err)
	}
}

func TestRotateClosure(t *testing.T) {
	for idx := Index(1); idx <= MaxIndex; idx++ {
		a, err := ArcGeometry(idx, 10, 1)
		if err != nil {
			t.Fatal(err)
		}
		for steps := 0; steps < 6; steps++ {
			b := a.Rotate(steps).Rotate(6 - steps)
			for i := range a.Rings {
				if !near(a.Rings[i].Center, b.Rings[i].Center) || a.Rings[i].Radius != b.Rings[i].Radius {
					t.Errorf("pattern %d steps %d: ring %d moved", idx, steps, i)
				}
			}
			for i := range a.Segments {
				if !near(a.Segments[i].A, b.Segments[i].A) || !near(a.Segments[i].B, b.Segments[i].B) {
					t.Errorf("pattern %d steps %d: segment %d moved", idx, steps, i)
				}
			}
			for i := range a.Fills {
				if !near(a.Fills[i].Center, b.Fills[i].Center) {
					t.Errorf("pattern %d steps %d: fill %d moved", idx, steps, i)
				}
			}
		}
	}
}

func TestRotateMovesVertex(t *testing.T) {
	a, _ := ArcGeometry(1, 1, 0.1)
	for steps := -6; steps <= 12; steps++ {
		got := a.Rotate(steps).Rings[0].Center
		if want := Vertex(steps, 1); !near(got, want) {
			t.Errorf("steps %d: ring at %v, want %v", steps, got, want)
		}
	}
}
