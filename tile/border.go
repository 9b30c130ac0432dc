package tile

import (
	"fmt"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/form2"
	"github.com/jeffbarr/TruchetTilings/layout"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Piece is a perimeter slot outside the interior grid. Mirrored pieces are
// reflected about the x axis through their center; bottom corners use the
// top corner variants mirrored.
type Piece struct {
	Coord    layout.Coord
	Variant  Variant
	Mirrored bool
}

func (p Piece) String() string {
	s := fmt.Sprintf("%v %v", p.Coord, p.Variant)
	if p.Mirrored {
		s += " mirrored"
	}
	return s
}

// Borders returns the border and corner pieces the mat of cfg asks for.
//
// Rows are measured in half hexagon heights: a cell at (x, y) is centered
// on row y, or y+1 in a shifted column, and spans one row either side. The
// bottom border line is row -1, the top one row TopRow+2. A side slot
// straddling one of those lines is a corner. Corner flags take precedence
// over side flags there. A side flag alone emits the uncut half.
// Pieces next to an absent interior cell are left out.
func Borders(cfg config.Render, g layout.Grid) []Piece {
	m := cfg.Mat
	const bottom = -1
	top := g.TopRow() + 2
	var out []Piece
	add := func(p Piece) {
		if !nearAbsent(g, p.Coord) {
			out = append(out, p)
		}
	}
	if m.BottomBorder {
		for x := 0; x < g.CountX; x++ {
			if layout.Shifted(x, g.Parity) {
				add(Piece{Coord: layout.Coord{X: x, Y: -2}, Variant: TopHalf})
			}
		}
	}
	if m.TopBorder {
		for x := 0; x < g.CountX; x++ {
			if !layout.Shifted(x, g.Parity) {
				add(Piece{Coord: layout.Coord{X: x, Y: top}, Variant: BottomHalf})
			}
		}
	}
	side := func(x int, half, corner Variant, border, bottomCorner, topCorner bool) {
		for y := -2; y <= top; y += 2 {
			c := layout.Coord{X: x, Y: y}
			row := y + shift(x, g.Parity)
			switch {
			case row == bottom && bottomCorner:
				add(Piece{Coord: c, Variant: corner, Mirrored: true})
			case row == top && topCorner:
				add(Piece{Coord: c, Variant: corner})
			case row == bottom, row == top, row-1 >= bottom && row+1 <= top:
				if border {
					add(Piece{Coord: c, Variant: half})
				}
			}
		}
	}
	side(-1, RightHalf, BottomRightCorner, m.LeftBorder, m.BottomLeftCorner, m.TopLeftCorner)
	side(g.CountX, LeftHalf, BottomLeftCorner, m.RightBorder, m.BottomRightCorner, m.TopRightCorner)
	return out
}

// RenderPiece builds the plain base tile of a border or corner piece.
func RenderPiece(cfg config.Render, p Piece) (Cell, error) {
	outline := Outline(p.Variant, cfg.Radius)
	shape, err := form2.Polygon(outline)
	if err != nil {
		return Cell{}, fmt.Errorf("piece %v: %w", p, err)
	}
	center := layout.Place(cfg, p.Coord)
	m := sdf.Translate3D(r3.Vec{X: center.X, Y: center.Y})
	if p.Mirrored {
		m = m.Mul(sdf.MirrorXZ())
		outline = mirrorOutline(outline)
	}
	return Cell{
		Coord:     p.Coord,
		Variant:   p.Variant,
		Footprint: layout.Footprint{Label: p.String(), Polygon: translateOutline(outline, center)},
		Parts: []Part{{
			Role:     RoleTile,
			Extruder: cfg.Extruders.Tile,
			Solid:    sdf.Transform3D(sdf.ExtrudeBetween3D(shape, 0, cfg.HexHeight), m),
		}},
	}, nil
}

func shift(x, parity int) int {
	if layout.Shifted(x, parity) {
		return 1
	}
	return 0
}

// neighbours returns the six lattice positions around c.
func neighbours(c layout.Coord, parity int) []layout.Coord {
	row := c.Y + shift(c.X, parity)
	out := []layout.Coord{{X: c.X, Y: c.Y - 2}, {X: c.X, Y: c.Y + 2}}
	for _, x := range []int{c.X - 1, c.X + 1} {
		s := shift(x, parity)
		out = append(out, layout.Coord{X: x, Y: row - 1 - s}, layout.Coord{X: x, Y: row + 1 - s})
	}
	return out
}

func nearAbsent(g layout.Grid, c layout.Coord) bool {
	for _, n := range neighbours(c, g.Parity) {
		if cell, ok := g.Cell(n); ok && cell.Absent {
			return true
		}
	}
	return false
}
