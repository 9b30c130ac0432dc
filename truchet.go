// Package truchet generates multi-material, 3D printable panels of
// hexagonal Truchet tiles.
//
// A run resolves a config.Render, assigns an arc pattern and rotation to
// every grid cell, renders interior cells and the border pieces asked for by
// the mat, and exports one mesh per extruder.
package truchet

import (
	"fmt"
	"sort"

	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/layout"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"github.com/jeffbarr/TruchetTilings/tile"
)

// overlapTol is the footprint overlap tolerated between neighbouring
// pieces, relative to the hexagon radius.
const overlapTol = 1e-6

// Model is the geometry of one panel.
type Model struct {
	Config config.Render
	Grid   layout.Grid
	Pieces []tile.Piece
	// Cells holds the interior cells followed by the border pieces.
	Cells []tile.Cell
	parts map[matter.Extruder][]sdf.SDF3
}

// Generate lays out and renders the panel described by cfg.
func Generate(cfg config.Render) (*Model, error) {
	m := &Model{
		Config: cfg,
		Grid:   layout.Assign(cfg),
		parts:  make(map[matter.Extruder][]sdf.SDF3),
	}
	for _, c := range m.Grid.Cells {
		cell, err := tile.RenderCell(cfg, c)
		if err != nil {
			return nil, err
		}
		m.add(cell)
	}
	m.Pieces = tile.Borders(cfg, m.Grid)
	for _, p := range m.Pieces {
		cell, err := tile.RenderPiece(cfg, p)
		if err != nil {
			return nil, err
		}
		m.add(cell)
	}
	if err := layout.CheckFootprints(m.Footprints(), overlapTol*cfg.Radius); err != nil {
		return nil, fmt.Errorf("panel layout: %w", err)
	}
	return m, nil
}

func (m *Model) add(c tile.Cell) {
	m.Cells = append(m.Cells, c)
	for _, p := range c.Parts {
		m.parts[p.Extruder] = append(m.parts[p.Extruder], p.Solid)
	}
}

// Footprints returns the bed outline of every rendered cell and piece.
func (m *Model) Footprints() []layout.Footprint {
	var fps []layout.Footprint
	for _, c := range m.Cells {
		if len(c.Parts) > 0 {
			fps = append(fps, c.Footprint)
		}
	}
	return fps
}

// Extruders returns the extruders that have parts, in increasing order.
func (m *Model) Extruders() []matter.Extruder {
	out := make([]matter.Extruder, 0, len(m.parts))
	for e := range m.parts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Solid returns the union of the parts printed by extruder e, enlarged to
// compensate the shrinkage of the configured material.
func (m *Model) Solid(e matter.Extruder) (sdf.SDF3, error) {
	parts := m.parts[e]
	if len(parts) == 0 {
		return nil, fmt.Errorf("no parts for extruder %v", e)
	}
	return m.Config.Material.Scale(sdf.Union3D(parts...)), nil
}
