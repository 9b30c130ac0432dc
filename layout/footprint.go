package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r2"
)

// Footprint is the convex outline a printed piece covers on the bed.
type Footprint struct {
	Label   string
	Polygon []r2.Vec
}

type footprintEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *footprintEntry) Bounds() rtreego.Rect { return e.rect }

// CheckFootprints reports every pair of footprints whose interiors overlap
// by more than tol. Shared edges and touching vertices are not overlaps.
func CheckFootprints(fps []Footprint, tol float64) error {
	tree := rtreego.NewTree(2, 4, 16)
	entries := make([]*footprintEntry, len(fps))
	for i, fp := range fps {
		if len(fp.Polygon) < 3 {
			return fmt.Errorf("footprint %s has %d vertices", fp.Label, len(fp.Polygon))
		}
		lo, hi := polygonBounds(fp.Polygon)
		rect, err := rtreego.NewRectFromPoints(rtreego.Point{lo.X, lo.Y}, rtreego.Point{hi.X, hi.Y})
		if err != nil {
			return err
		}
		entries[i] = &footprintEntry{index: i, rect: rect}
		tree.Insert(entries[i])
	}
	var errs []error
	for i, e := range entries {
		for _, hit := range tree.SearchIntersect(e.rect) {
			j := hit.(*footprintEntry).index
			if j <= i {
				continue
			}
			if depth := penetration(fps[i].Polygon, fps[j].Polygon); depth > tol {
				errs = append(errs, fmt.Errorf("footprints %s and %s overlap by %.3g", fps[i].Label, fps[j].Label, depth))
			}
		}
	}
	return errors.Join(errs...)
}

func polygonBounds(poly []r2.Vec) (lo, hi r2.Vec) {
	lo = r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi = r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range poly {
		lo = r2.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = r2.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	return lo, hi
}

// penetration returns the smallest overlap of the projections of two convex
// polygons over the edge normals of both. A value <= 0 means they are
// separated or only touch.
func penetration(a, b []r2.Vec) float64 {
	depth := math.Inf(1)
	for _, poly := range [2][]r2.Vec{a, b} {
		for i := range poly {
			edge := r2.Sub(poly[(i+1)%len(poly)], poly[i])
			if r2.Norm(edge) == 0 {
				continue
			}
			axis := r2.Unit(r2.Vec{X: -edge.Y, Y: edge.X})
			amin, amax := project(a, axis)
			bmin, bmax := project(b, axis)
			overlap := math.Min(amax, bmax) - math.Max(amin, bmin)
			if overlap < depth {
				depth = overlap
			}
		}
	}
	return depth
}

func project(poly []r2.Vec, axis r2.Vec) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := r2.Dot(p, axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}
