package truchet

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/layout"
	"github.com/jeffbarr/TruchetTilings/render"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"github.com/jeffbarr/TruchetTilings/tile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
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

func TestGenerate(t *testing.T) {
	cfg := resolve(t, "A", func(b *config.Base) {
		b.CountX, b.CountY = 3, 2
		b.Seed = 11
	})
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Grid.Cells) != 3 {
		t.Fatalf("%d interior cells, want 3", len(m.Grid.Cells))
	}
	if len(m.Cells) != len(m.Grid.Cells)+len(m.Pieces) {
		t.Errorf("%d rendered cells for %d cells and %d pieces", len(m.Cells), len(m.Grid.Cells), len(m.Pieces))
	}
	if len(m.Pieces) == 0 {
		t.Error("mat A produced no border")
	}
	got := m.Extruders()
	want := []matter.Extruder{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("extruders %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("extruders %v, want %v", got, want)
		}
	}
	tiles, err := m.Solid(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range m.Grid.Cells {
		p := layout.Place(cfg, c.Coord)
		if d := tiles.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: cfg.HexHeight / 4}); d >= 0 {
			t.Errorf("tile solid missing under cell %v", c.Coord)
		}
	}
	if _, err := m.Solid(5); err == nil {
		t.Error("solid for unused extruder")
	}
}

func TestGenerateFills(t *testing.T) {
	// Mode 1-2 never draws fills; 3-4-5-6 always does.
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 2, 1
		b.Mode = "3-4-5-6"
	})
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Solid(cfg.Extruders.Fill); err != nil {
		t.Error(err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := resolve(t, "B", func(b *config.Base) { b.Seed = 3 })
	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Grid.Cells {
		if a.Grid.Cells[i] != b.Grid.Cells[i] {
			t.Fatal("assignment differs between runs")
		}
	}
	for i := range a.Pieces {
		if a.Pieces[i] != b.Pieces[i] {
			t.Fatal("pieces differ between runs")
		}
	}
}

func TestGenerateShrink(t *testing.T) {
	exact := resolve(t, "F", func(b *config.Base) { b.CountX, b.CountY = 1, 1 })
	abs := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 1, 1
		b.Material = "ABS"
	})
	me, err := Generate(exact)
	if err != nil {
		t.Fatal(err)
	}
	ma, err := Generate(abs)
	if err != nil {
		t.Fatal(err)
	}
	se, _ := me.Solid(1)
	sa, _ := ma.Solid(1)
	if sa.Bounds().Max.X <= se.Bounds().Max.X {
		t.Errorf("ABS solid not enlarged: %g <= %g", sa.Bounds().Max.X, se.Bounds().Max.X)
	}
}

func TestExport(t *testing.T) {
	cfg := resolve(t, "F", func(b *config.Base) {
		b.CountX, b.CountY = 1, 1
		b.Mode = "1"
	})
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	paths, err := Export(m, ExportOptions{Dir: dir, Prefix: "panel", MeshCells: 60, Verify: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != len(m.Extruders()) {
		t.Fatalf("wrote %d files for %d extruders", len(paths), len(m.Extruders()))
	}
	for i, e := range m.Extruders() {
		want := filepath.Join(dir, FileName("panel", "F", e))
		if paths[i] != want {
			t.Errorf("path %s, want %s", paths[i], want)
		}
		model, err := render.ReadSTLFile(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if len(model) == 0 {
			t.Fatalf("%s has no triangles", paths[i])
		}
		if e != cfg.Extruders.Arc {
			continue
		}
		// Pattern 1 is a ring about vertex A; its top passes over (r/2, 0).
		idx, err := render.NewMeshIndex(model)
		if err != nil {
			t.Fatal(err)
		}
		top := r3.Vec{X: cfg.Radius / 2, Z: cfg.HexHeight + cfg.ArcHeight}
		if _, d := idx.Nearest(top); d > 0.5 {
			t.Errorf("arc mesh is %g from the top of the arc", d)
		}
	}

	paths, err = Export(m, ExportOptions{Dir: dir, Extruder: 2, MeshCells: 40, ASCII: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "truchet-F-2.stl" {
		t.Fatalf("paths %v", paths)
	}
	b, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "solid") {
		t.Error("ASCII export does not start with solid")
	}

	if _, err := Export(m, ExportOptions{Dir: dir, Extruder: 3}); err == nil {
		t.Error("export of an empty channel succeeded")
	}
}

func TestMeshCellsLargePanel(t *testing.T) {
	cfg := resolve(t, "A", func(b *config.Base) { b.CountX, b.CountY = 10, 12 })
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	feature := cfg.MinFeature()
	if feature != cfg.EdgeHeight {
		t.Fatalf("thinnest feature %g, want edge height %g", feature, cfg.EdgeHeight)
	}
	for _, e := range m.Extruders() {
		s, err := m.Solid(e)
		if err != nil {
			t.Fatal(err)
		}
		// At the default resolution a leaf is thicker than the edge inlay.
		if leaf := leafSize(s, DefaultMeshCells); leaf <= feature {
			t.Errorf("extruder %v: leaf %g already below feature %g", e, leaf, feature)
		}
		cells := MeshCells(s, feature, DefaultMeshCells)
		if leaf := leafSize(s, cells); leaf > feature/leavesPerFeature+1e-9 {
			t.Errorf("extruder %v: %d cells give leaf %g, want at most %g", e, cells, leaf, feature/leavesPerFeature)
		}
	}
	// The minimum is honoured for coarse features.
	if got := MeshCells(plate{size: 10, thick: 5}, 5, 40); got != 40 {
		t.Errorf("got %d cells, want minimum 40", got)
	}
}

func TestExportEdgeSmallLeaf(t *testing.T) {
	// A single cell meshed at 40 cells has a leaf wider than the edge inlay.
	cfg := resolve(t, "F", func(b *config.Base) { b.CountX, b.CountY = 1, 1 })
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := Export(m, ExportOptions{Dir: t.TempDir(), Extruder: cfg.Extruders.Edge, MeshCells: 40, Verify: true})
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.ReadSTLFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("edge channel has no triangles")
	}
}

// plate is a square slab resting on the bed.
type plate struct {
	size, thick float64
}

func (p plate) Evaluate(v r3.Vec) float64 {
	xy := math.Max(math.Abs(v.X), math.Abs(v.Y)) - p.size/2
	return math.Max(xy, math.Abs(v.Z-p.thick/2)-p.thick/2)
}

func (p plate) Bounds() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: -p.size / 2, Y: -p.size / 2},
		Max: r3.Vec{X: p.size / 2, Y: p.size / 2, Z: p.thick},
	}
}

func plateModel(thick float64, cells ...tile.Cell) *Model {
	m := &Model{
		Config: config.Render{HexHeight: 50, Extruders: config.Extruders{Tile: 1}},
		parts:  map[matter.Extruder][]sdf.SDF3{1: {plate{size: 10, thick: thick}}},
	}
	m.Cells = cells
	return m
}

func TestExportEmptyMesh(t *testing.T) {
	m := plateModel(0.01)
	_, err := Export(m, ExportOptions{Dir: t.TempDir(), MeshCells: 4})
	if !errors.Is(err, render.ErrEmptyMesh) {
		t.Fatalf("got %v, want ErrEmptyMesh", err)
	}
	_, err = Export(m, ExportOptions{Dir: t.TempDir(), MeshCells: 4, ASCII: true})
	if !errors.Is(err, render.ErrEmptyMesh) {
		t.Fatalf("ASCII: got %v, want ErrEmptyMesh", err)
	}
}

func TestExportVerify(t *testing.T) {
	square := func(label string, c r2.Vec) tile.Cell {
		return tile.Cell{
			Footprint: layout.Footprint{Label: label, Polygon: []r2.Vec{
				{X: c.X - 1, Y: c.Y - 1}, {X: c.X + 1, Y: c.Y - 1},
				{X: c.X + 1, Y: c.Y + 1}, {X: c.X - 1, Y: c.Y + 1},
			}},
			Parts: []tile.Part{{Role: tile.RoleTile, Extruder: 1}},
		}
	}
	m := plateModel(2, square("on", r2.Vec{}))
	if _, err := Export(m, ExportOptions{Dir: t.TempDir(), MeshCells: 30, Verify: true}); err != nil {
		t.Fatal(err)
	}
	m = plateModel(2, square("on", r2.Vec{}), square("stray", r2.Vec{X: 100}))
	_, err := Export(m, ExportOptions{Dir: t.TempDir(), MeshCells: 30, Verify: true})
	if err == nil || !strings.Contains(err.Error(), "stray") {
		t.Fatalf("got %v, want missing bottom face under stray", err)
	}
}
