package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/pattern"
	"gonum.org/v1/gonum/spatial/r2"
)

func resolve(t *testing.T, matName string, modify func(*config.Base)) config.Render {
	t.Helper()
	base := config.Default()
	if modify != nil {
		modify(&base)
	}
	cfg, err := config.Resolve(base, matName)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestTopRow(t *testing.T) {
	for countY, want := range map[int]int{1: 0, 2: 0, 3: 2, 4: 2, 5: 4, 6: 4} {
		g := Grid{CountX: 1, CountY: countY}
		if got := g.TopRow(); got != want {
			t.Errorf("TopRow(%d)=%d, want %d", countY, got, want)
		}
	}
}

func TestSample(t *testing.T) {
	a := Sample(7, 50, 3, 6)
	b := Sample(7, 50, 3, 6)
	c := Sample(8, 50, 3, 6)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed gave different draws")
		}
		if a[i] < 3 || a[i] > 6 {
			t.Fatalf("draw %d outside [3,6]", a[i])
		}
		same = same && a[i] == c[i]
	}
	if same {
		t.Error("different seeds gave identical draws")
	}
	if got := Sample(1, 10, 1, 1); got[0] != 1 || got[9] != 1 {
		t.Error("degenerate range")
	}
}

func TestAssignRowMajor(t *testing.T) {
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 3, 5
		b.Seed = 99
		b.Mode = "3-4-5-6"
	})
	g := Assign(cfg)
	if len(g.Cells) != 3*3 {
		t.Fatalf("got %d cells, want 9", len(g.Cells))
	}
	samples := Sample(99, 15, 3, 6)
	for _, c := range g.Cells {
		if c.Y%2 != 0 {
			t.Errorf("cell on odd row %v", c.Coord)
		}
		if c.Arc < 3 || c.Arc > 6 {
			t.Errorf("arc %d outside mode range", c.Arc)
		}
		if want := pattern.Index(samples[c.Y*3+c.X]); c.Arc != want {
			t.Errorf("cell %v arc %d, want sample %d", c.Coord, c.Arc, want)
		}
		got, ok := g.Cell(c.Coord)
		if !ok || got != c {
			t.Errorf("Cell(%v) lookup mismatch", c.Coord)
		}
	}
	if _, ok := g.Cell(Coord{1, 1}); ok {
		t.Error("odd row reported as cell")
	}
	if _, ok := g.Cell(Coord{-1, 0}); ok {
		t.Error("column -1 reported as cell")
	}
}

func TestAssignReproducible(t *testing.T) {
	cfg := resolve(t, "A", func(b *config.Base) {
		b.CountX, b.CountY = 3, 2
		b.Seed = 5
	})
	a, b := Assign(cfg), Assign(cfg)
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}

func TestAssignRotation(t *testing.T) {
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 4, 6
		b.RotateFactor = 1
		b.RotateMod = 6
	})
	g := Assign(cfg)
	for _, c := range g.Cells {
		if want := (c.X * c.Y) % 6; c.Rotation != want {
			t.Errorf("cell %v rotation %d, want %d", c.Coord, c.Rotation, want)
		}
	}
	cfg = resolve(t, "F", func(b *config.Base) { b.Rotate = false })
	for _, c := range Assign(cfg).Cells {
		if c.Rotation != 0 {
			t.Fatalf("rotation %d with rotation disabled", c.Rotation)
		}
	}
}

func TestAssignCircledTriad(t *testing.T) {
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 4, 4
		b.Mode = "CircledTriad"
	})
	g := Assign(cfg)
	absent := map[Coord]bool{{0, 2}: true, {2, 0}: true}
	for _, c := range g.Cells {
		if c.Absent != absent[c.Coord] {
			t.Errorf("cell %v absent=%v", c.Coord, c.Absent)
		}
		if !c.Absent && c.Arc != 1 {
			t.Errorf("cell %v arc %d, want 1", c.Coord, c.Arc)
		}
	}
	if g.Present(Coord{2, 0}) || !g.Present(Coord{0, 0}) {
		t.Error("Present disagrees with table")
	}
	// Parity shifts the table by one column.
	cfg = resolve(t, "H", func(b *config.Base) {
		b.CountX, b.CountY = 4, 4
		b.Mode = "CircledTriad"
	})
	g = Assign(cfg)
	if g.Present(Coord{1, 0}) || g.Present(Coord{3, 2}) || !g.Present(Coord{2, 0}) {
		t.Error("parity not applied to table lookup")
	}
}

func TestPlace(t *testing.T) {
	modify := func(b *config.Base) {
		b.CountX, b.CountY = 5, 6
		b.Radius, b.Gap = 10, 1
	}
	cfg := resolve(t, "F", modify)
	g := Assign(cfg)
	seen := make(map[r2.Vec]Coord)
	for _, c := range g.Cells {
		p := Place(cfg, c.Coord)
		if prev, dup := seen[p]; dup {
			t.Fatalf("cells %v and %v share a center", prev, c.Coord)
		}
		seen[p] = c.Coord
	}
	pitch := cfg.Pitch()
	neighbours := [][2]Coord{
		{{0, 0}, {1, 0}},
		{{0, 0}, {0, 2}},
		{{1, 0}, {2, 2}},
		{{-1, 0}, {0, 0}},
	}
	for _, n := range neighbours {
		d := r2.Norm(r2.Sub(Place(cfg, n[0]), Place(cfg, n[1])))
		if math.Abs(d-pitch*math.Sqrt(3)) > 1e-9 {
			t.Errorf("%v-%v distance %g, want %g", n[0], n[1], d, pitch*math.Sqrt(3))
		}
	}
	dy := pitch * math.Sqrt(3) / 2
	if p := Place(cfg, Coord{1, 0}); math.Abs(p.Y-dy) > 1e-12 {
		t.Errorf("column 1 not shifted: %v", p)
	}
	parity := resolve(t, "H", modify)
	if p := Place(parity, Coord{0, 0}); math.Abs(p.Y-dy) > 1e-12 {
		t.Errorf("parity did not shift column 0: %v", p)
	}
	if p := Place(parity, Coord{1, 0}); p.Y != 0 {
		t.Errorf("parity shifted column 1: %v", p)
	}
	// Shift follows the resolved pitch, not a fixed one.
	wide := resolve(t, "H", nil)
	wideDy := wide.Pitch() * math.Sqrt(3) / 2
	if p := Place(wide, Coord{0, 0}); math.Abs(p.Y-wideDy) > 1e-12 {
		t.Errorf("parity shift %g, want %g", p.Y, wideDy)
	}
	if !Shifted(-1, 0) || Shifted(-1, 1) {
		t.Error("Shifted wrong for negative column")
	}
}

func hexagon(center r2.Vec, radius float64) []r2.Vec {
	poly := make([]r2.Vec, 6)
	for i := range poly {
		poly[i] = r2.Add(center, pattern.Vertex(i, radius))
	}
	return poly
}

func TestCheckFootprints(t *testing.T) {
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 4, 5
		b.Gap = 0
	})
	var fps []Footprint
	for _, c := range Assign(cfg).Cells {
		fps = append(fps, Footprint{Label: c.String(), Polygon: hexagon(Place(cfg, c.Coord), cfg.Radius)})
	}
	if err := CheckFootprints(fps, 1e-6); err != nil {
		t.Fatalf("touching hexagons reported: %v", err)
	}
	intruder := Footprint{Label: "intruder", Polygon: hexagon(r2.Vec{X: cfg.Radius, Y: 0}, cfg.Radius)}
	err := CheckFootprints(append(fps, intruder), 1e-6)
	if err == nil {
		t.Fatal("overlap not reported")
	}
	if !strings.Contains(err.Error(), "intruder") || !strings.Contains(err.Error(), "0,0") {
		t.Errorf("unexpected error %v", err)
	}
	if err := CheckFootprints([]Footprint{{Label: "bad", Polygon: fps[0].Polygon[:2]}}, 0); err == nil {
		t.Error("degenerate footprint accepted")
	}
}

func TestPenetration(t *testing.T) {
	square := func(x float64) []r2.Vec {
		return []r2.Vec{{X: x, Y: 0}, {X: x + 1, Y: 0}, {X: x + 1, Y: 1}, {X: x, Y: 1}}
	}
	if d := penetration(square(0), square(0.75)); math.Abs(d-0.25) > 1e-12 {
		t.Errorf("overlap %g, want 0.25", d)
	}
	if d := penetration(square(0), square(1)); d > 0 {
		t.Errorf("touching squares overlap %g", d)
	}
	if d := penetration(square(0), square(3)); d >= 0 {
		t.Errorf("separated squares overlap %g", d)
	}
}
