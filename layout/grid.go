// Package layout assigns arc patterns and rotations to the cells of a
// staggered hexagon grid and places them in the plane.
package layout

import (
	"fmt"
	"math"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/pattern"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Coord is a logical grid position. Interior cells have X, Y >= 0 and only
// even rows are occupied; a shifted column sits one row spacing higher.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Cell is the pattern assignment of one interior grid position.
type Cell struct {
	Coord
	Arc      pattern.Index
	Rotation int
	// Absent cells have no hexagon. Only table driven modes produce them.
	Absent bool
}

// Grid is the result of Assign. Cells are ordered row-major, rows
// 0, 2, 4... outer and columns inner.
type Grid struct {
	CountX, CountY int
	Parity         int
	Cells          []Cell
}

// TopRow returns the highest even row index below CountY.
func (g Grid) TopRow() int {
	return (g.CountY - 1) &^ 1
}

// Cell returns the cell at c. ok is false outside the interior or on odd rows.
func (g Grid) Cell(c Coord) (cell Cell, ok bool) {
	if c.X < 0 || c.X >= g.CountX || c.Y < 0 || c.Y >= g.CountY || c.Y%2 != 0 {
		return Cell{}, false
	}
	return g.Cells[(c.Y/2)*g.CountX+c.X], true
}

// Present reports whether c is an interior cell with a hexagon.
func (g Grid) Present(c Coord) bool {
	cell, ok := g.Cell(c)
	return ok && !cell.Absent
}

// Shifted reports whether column x is raised by one row spacing.
func Shifted(x, parity int) bool {
	return (x+parity)&1 == 1
}

// Sample returns count uniform draws in [min, max] from a generator seeded
// with seed. The sequence depends only on its arguments.
func Sample(seed int64, count, min, max int) []int {
	if max < min {
		panic("layout: empty sample range")
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	out := make([]int, count)
	for i := range out {
		out[i] = rng.Intn(max-min+1) + min
	}
	return out
}

// Assign draws every random sample of the run up front and resolves the
// arc index and rotation of each occupied grid position.
func Assign(cfg config.Render) Grid {
	g := Grid{CountX: cfg.CountX, CountY: cfg.CountY, Parity: cfg.Parity()}
	lo, hi := cfg.Mode.AdmissibleRange()
	samples := Sample(cfg.Seed, cfg.CountX*cfg.CountY, int(lo), int(hi))
	for y := 0; y < cfg.CountY; y += 2 {
		for x := 0; x < cfg.CountX; x++ {
			cell := Cell{Coord: Coord{X: x, Y: y}}
			if cfg.Mode.TableDriven() {
				entry, ok := pattern.LookupTriad(x+g.Parity, y)
				if ok {
					cell.Arc, cell.Rotation = entry.Arc, entry.Rotation
				} else {
					cell.Absent = true
				}
			} else {
				cell.Arc = pattern.Index(samples[y*cfg.CountX+x])
				if cfg.Rotate {
					cell.Rotation = mod(x*cfg.RotateFactor*y, cfg.RotateMod)
				}
			}
			g.Cells = append(g.Cells, cell)
		}
	}
	return g
}

// Place returns the center of the hexagon at c. Coordinates outside the
// interior are valid and used for border pieces.
func Place(cfg config.Render, c Coord) r2.Vec {
	pitch := cfg.Pitch()
	dy := pitch * math.Sqrt(3) / 2
	p := r2.Vec{X: 1.5 * pitch * float64(c.X), Y: dy * float64(c.Y)}
	if Shifted(c.X, cfg.Parity()) {
		p.Y += dy
	}
	return p
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
