package render

import (
	"math"

	"github.com/jeffbarr/TruchetTilings/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface = kdTriangles{}
	_ kdtree.Bounder   = kdTriangles{}
)

// MeshIndex answers nearest triangle queries over a mesh. Triangles are
// compared by centroid, which is close to the true nearest triangle for
// the evenly sized triangles an octree renderer produces.
type MeshIndex struct {
	tree *kdtree.Tree
}

// NewMeshIndex builds an index over model.
func NewMeshIndex(model []r3.Triangle) (*MeshIndex, error) {
	if len(model) == 0 {
		return nil, ErrEmptyMesh
	}
	kd := make(kdTriangles, len(model))
	for i := range kd {
		kd[i] = kdTriangle(model[i])
	}
	return &MeshIndex{tree: kdtree.New(kd, true)}, nil
}

// Nearest returns the triangle whose centroid is closest to p and the
// distance from p to the plane of that triangle.
func (m *MeshIndex) Nearest(p r3.Vec) (r3.Triangle, float64) {
	got, _ := m.tree.Nearest(kdTriangle{p, p, p})
	t := r3.Triangle(got.(kdTriangle))
	n := r3.Unit(t.Normal())
	return t, math.Abs(r3.Dot(n, r3.Sub(p, t[0])))
}

// Bounds returns the box containing every triangle.
func (m *MeshIndex) Bounds() r3.Box {
	bb := m.tree.Root.Bounding
	return r3.Box{
		Min: bb.Min.(kdTriangle)[0],
		Max: bb.Max.(kdTriangle)[0],
	}
}

type kdTriangles []kdTriangle

type kdTriangle r3.Triangle

func (k kdTriangles) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdTriangles) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdTriangles) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), triangles: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdTriangles) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Bounds returns the vertex bounds of k. Min and Max are degenerate
// triangles at the box corners.
func (k kdTriangles) Bounds() *kdtree.Bounding {
	min := d3.Elem(math.MaxFloat64)
	max := d3.Elem(-math.MaxFloat64)
	for _, tri := range k {
		for _, v := range tri {
			min = d3.MinElem(min, v)
			max = d3.MaxElem(max, v)
		}
	}
	return &kdtree.Bounding{
		Min: kdTriangle{min, min, min},
		Max: kdTriangle{max, max, max},
	}
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//
//	c = a_d - b_d
func (a kdTriangle) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdTriangle), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdTriangle) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the centroids of
// the receiver and the parameter.
func (a kdTriangle) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(kdCentroid(a), kdCentroid(b.(kdTriangle))))
}

// c = a.dim - b.dim
func kdComp(a, b kdTriangle, dim int) float64 {
	ac, bc := kdCentroid(a), kdCentroid(b)
	switch dim {
	case 0:
		return ac.X - bc.X
	case 1:
		return ac.Y - bc.Y
	}
	return ac.Z - bc.Z
}

func kdCentroid(a kdTriangle) r3.Vec {
	return r3.Triangle(a).Centroid()
}

type kdPlane struct {
	dim       int
	triangles kdTriangles
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.triangles[i], p.triangles[j], p.dim) < 0
}

func (p kdPlane) Swap(i, j int) {
	p.triangles[i], p.triangles[j] = p.triangles[j], p.triangles[i]
}

func (p kdPlane) Len() int { return len(p.triangles) }

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.triangles = p.triangles[start:end]
	return p
}
