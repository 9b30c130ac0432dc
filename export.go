package truchet

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sync"

	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/internal/d3"
	"github.com/jeffbarr/TruchetTilings/render"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMeshCells is the mesh resolution used when ExportOptions leaves it
// unset.
const DefaultMeshCells = 300

// leavesPerFeature is the number of octree leaves that span the thinnest
// feature of a panel.
const leavesPerFeature = 2

// ExportOptions controls Export.
type ExportOptions struct {
	// Dir is the output directory.
	Dir string
	// Prefix starts every file name. Defaults to "truchet".
	Prefix string
	// Extruder selects a single channel. Zero exports all of them.
	Extruder matter.Extruder
	// MeshCells is the minimum number of octree cells along the longest axis
	// of each channel's bounding box. Channels are meshed finer when their
	// thinnest feature would otherwise fall between leaves.
	MeshCells int
	// ASCII writes text STL instead of binary.
	ASCII bool
	// Verify reads every written file back and checks it against the
	// channel's solid.
	Verify bool
}

// FileName returns the STL file name of extruder e for mat matName.
func FileName(prefix, matName string, e matter.Extruder) string {
	return fmt.Sprintf("%s-%s-%d.stl", prefix, matName, int(e))
}

// Export meshes the selected channels of m concurrently and writes one STL
// file per channel. It returns the paths written; errors of every channel
// are joined.
func Export(m *Model, opts ExportOptions) ([]string, error) {
	if opts.Prefix == "" {
		opts.Prefix = "truchet"
	}
	if opts.MeshCells == 0 {
		opts.MeshCells = DefaultMeshCells
	}
	extruders := m.Extruders()
	if opts.Extruder != 0 {
		if _, err := m.Solid(opts.Extruder); err != nil {
			return nil, err
		}
		extruders = []matter.Extruder{opts.Extruder}
	}
	paths := make([]string, len(extruders))
	errs := make([]error, len(extruders))
	var wg sync.WaitGroup
	for i, e := range extruders {
		paths[i] = filepath.Join(opts.Dir, FileName(opts.Prefix, m.Config.Mat.Name, e))
		wg.Add(1)
		go func(i int, e matter.Extruder) {
			defer wg.Done()
			errs[i] = exportChannel(m, e, paths[i], opts)
		}(i, e)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return paths, nil
}

func exportChannel(m *Model, e matter.Extruder, path string, opts ExportOptions) error {
	s, err := m.Solid(e)
	if err != nil {
		return err
	}
	cells := MeshCells(s, m.Config.MinFeature(), opts.MeshCells)
	r := render.NewOctreeRenderer(s, cells)
	if opts.ASCII {
		err = render.CreateASCIISTL(path, fmt.Sprintf("extruder%d", int(e)), r)
	} else {
		err = render.CreateSTL(path, r)
	}
	if err != nil {
		return fmt.Errorf("extruder %v at %d mesh cells: %w", e, cells, err)
	}
	if opts.Verify {
		if err := m.verify(e, s, path, leafSize(s, cells)); err != nil {
			return fmt.Errorf("extruder %v: %s: %w", e, filepath.Base(path), err)
		}
	}
	return nil
}

// MeshCells returns the octree resolution used to mesh s: at least
// minCells, and fine enough that leavesPerFeature leaves span feature.
func MeshCells(s sdf.SDF3, feature float64, minCells int) int {
	n := int(math.Ceil(leavesPerFeature * longAxis(s) / feature))
	if n < minCells {
		return minCells
	}
	return n
}

// leafSize is the side of the smallest octree cube at the given resolution.
func leafSize(s sdf.SDF3, cells int) float64 {
	return longAxis(s) / float64(cells)
}

func longAxis(s sdf.SDF3) float64 {
	// Matches the padding applied by the octree renderer.
	return d3.Max(d3.Box(s.Bounds()).ScaleAboutCenter(1.01).Size())
}

// verify checks that the mesh in path lies within the bounds of s and, for
// the tile channel, that every cell and piece has a bottom face on the bed.
func (m *Model) verify(e matter.Extruder, s sdf.SDF3, path string, leaf float64) error {
	model, err := render.ReadSTLFile(path)
	if err != nil {
		return err
	}
	idx, err := render.NewMeshIndex(model)
	if err != nil {
		return err
	}
	bb := d3.Box(s.Bounds())
	grown := d3.Box{Min: r3.Sub(bb.Min, d3.Elem(leaf)), Max: r3.Add(bb.Max, d3.Elem(leaf))}
	if mb := idx.Bounds(); !grown.Contains(mb.Min) || !grown.Contains(mb.Max) {
		return fmt.Errorf("mesh bounds %v outside solid bounds %v", mb, bb)
	}
	if e != m.Config.Extruders.Tile {
		return nil
	}
	k := m.Config.Material.Factor()
	for _, c := range m.Cells {
		if len(c.Parts) == 0 {
			continue
		}
		var center r3.Vec
		for _, v := range c.Footprint.Polygon {
			center.X += v.X
			center.Y += v.Y
		}
		center = r3.Scale(k/float64(len(c.Footprint.Polygon)), center)
		tri, d := idx.Nearest(center)
		if dc := r3.Norm(r3.Sub(tri.Centroid(), center)); d > leaf || dc > 2*leaf {
			return fmt.Errorf("no bottom face under %s: nearest triangle %g away", c.Footprint.Label, dc)
		}
	}
	return nil
}
