package tile

import (
	"fmt"
	"math"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/form2"
	"github.com/jeffbarr/TruchetTilings/form2/textsdf"
	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/layout"
	"github.com/jeffbarr/TruchetTilings/pattern"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Role is the purpose of a part within a cell.
type Role int

const (
	RoleTile Role = iota
	RoleEdge
	RoleArc
	RoleFill
	RoleLabel
)

func (r Role) String() string {
	switch r {
	case RoleTile:
		return "tile"
	case RoleEdge:
		return "edge"
	case RoleArc:
		return "arc"
	case RoleFill:
		return "fill"
	case RoleLabel:
		return "label"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Part is a solid printed with a single extruder, in world coordinates.
type Part struct {
	Role     Role
	Extruder matter.Extruder
	Solid    sdf.SDF3
}

// Cell is the rendered geometry of one interior cell or border piece.
type Cell struct {
	Coord     layout.Coord
	Variant   Variant
	Footprint layout.Footprint
	Parts     []Part
}

// RenderCell builds the parts of an interior cell: the base tile, the edge
// inlay and label carved out of its top, and the arcs and fills standing on
// it. Parts of disabled extruders are omitted. The whole cell is rotated by
// cell.Rotation steps of 60 degrees about its center, then placed.
func RenderCell(cfg config.Render, cell layout.Cell) (Cell, error) {
	out := Cell{Coord: cell.Coord, Variant: Full}
	if cell.Absent {
		return out, nil
	}
	outline := Outline(Full, cfg.Radius)
	center := layout.Place(cfg, cell.Coord)
	out.Footprint = layout.Footprint{Label: cell.Coord.String(), Polygon: translateOutline(outline, center)}
	hex, err := form2.Polygon(outline)
	if err != nil {
		return Cell{}, err
	}
	ex := cfg.Extruders
	top := cfg.HexHeight
	base := sdf.ExtrudeBetween3D(hex, 0, top)
	var parts []Part
	if ex.Edge.Enabled() {
		inner := sdf.Offset2D(hex, -cfg.EdgeWidth)
		ring := sdf.ExtrudeBetween3D(sdf.Difference2D(hex, inner), top-cfg.EdgeHeight, top)
		carve := ring
		var label sdf.SDF3
		if cfg.Labels {
			text, err := labelText(cell.Coord, cfg.LabelSize)
			if err != nil {
				return Cell{}, fmt.Errorf("label %v: %w", cell.Coord, err)
			}
			label = sdf.ExtrudeBetween3D(sdf.Intersect2D(text, inner), top-cfg.EdgeHeight, top)
			carve = sdf.Union3D(ring, label)
		}
		parts = append(parts, Part{Role: RoleTile, Extruder: ex.Tile, Solid: sdf.Difference3D(base, carve)})
		parts = append(parts, Part{Role: RoleEdge, Extruder: ex.Edge, Solid: ring})
		if label != nil {
			parts = append(parts, Part{Role: RoleLabel, Extruder: ex.Edge, Solid: label})
		}
	} else {
		parts = append(parts, Part{Role: RoleTile, Extruder: ex.Tile, Solid: base})
	}

	if cell.Arc != pattern.None && (ex.Arc.Enabled() || ex.Fill.Enabled()) {
		arcs, err := pattern.ArcGeometry(cell.Arc, cfg.Radius, cfg.ArcWidth)
		if err != nil {
			return Cell{}, fmt.Errorf("cell %v: %w", cell.Coord, err)
		}
		bands, fills, err := arcShapes(arcs)
		if err != nil {
			return Cell{}, fmt.Errorf("cell %v: %w", cell.Coord, err)
		}
		z0, z1 := top, top+cfg.ArcHeight
		if ex.Arc.Enabled() {
			parts = append(parts, Part{Role: RoleArc, Extruder: ex.Arc,
				Solid: sdf.ExtrudeBetween3D(sdf.Intersect2D(bands, hex), z0, z1)})
		}
		if ex.Fill.Enabled() && fills != nil {
			parts = append(parts, Part{Role: RoleFill, Extruder: ex.Fill,
				Solid: sdf.ExtrudeBetween3D(sdf.Intersect2D(sdf.Difference2D(fills, bands), hex), z0, z1)})
		}
	}

	m := sdf.Translate3D(r3.Vec{X: center.X, Y: center.Y}).Mul(sdf.RotateZ(float64(cell.Rotation) * math.Pi / 3))
	for i := range parts {
		parts[i].Solid = sdf.Transform3D(parts[i].Solid, m)
	}
	out.Parts = parts
	return out, nil
}

// arcShapes returns the union of the bands of a and the union of its fill
// disks, nil when a has no fills.
func arcShapes(a pattern.Arcs) (bands, fills sdf.SDF2, err error) {
	var bs []sdf.SDF2
	for _, r := range a.Rings {
		s, err := form2.Ring(r.Radius, a.Width)
		if err != nil {
			return nil, nil, err
		}
		bs = append(bs, sdf.Transform2D(s, sdf.Translate2D(r.Center)))
	}
	for _, seg := range a.Segments {
		s, err := form2.Segment(seg.A, seg.B, a.Width)
		if err != nil {
			return nil, nil, err
		}
		bs = append(bs, s)
	}
	if len(bs) == 0 {
		return nil, nil, fmt.Errorf("arc %d has no bands", a.Index)
	}
	var fs []sdf.SDF2
	for _, d := range a.Fills {
		s, err := form2.Circle(d.Radius)
		if err != nil {
			return nil, nil, err
		}
		fs = append(fs, sdf.Transform2D(s, sdf.Translate2D(d.Center)))
	}
	bands = sdf.Union2D(bs...)
	if len(fs) > 0 {
		fills = sdf.Union2D(fs...)
	}
	return bands, fills, nil
}

func labelText(c layout.Coord, size float64) (sdf.SDF2, error) {
	font, err := textsdf.Default()
	if err != nil {
		return nil, err
	}
	return font.Text(c.String(), size)
}
