package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// marchingTetMaxTriangles is the most triangles a single cube can produce:
// two for each of its six tetrahedra.
const marchingTetMaxTriangles = 12

// cubeTetrahedra splits a cube into six tetrahedra sharing the 0-6 diagonal.
// Corner indices follow the octree's corner order:
//
//	0 (0,0,0)  1 (1,0,0)  2 (1,1,0)  3 (0,1,0)
//	4 (0,0,1)  5 (1,0,1)  6 (1,1,1)  7 (0,1,1)
//
// Neighbouring cubes split their shared faces along the same diagonal so
// the resulting surface is closed.
var cubeTetrahedra = [6][4]int{
	{0, 1, 2, 6},
	{0, 2, 3, 6},
	{0, 3, 7, 6},
	{0, 7, 4, 6},
	{0, 4, 5, 6},
	{0, 5, 1, 6},
}

// mtToTriangles writes the isosurface triangles of a cube to dst and returns
// how many were written. Values below zero are inside the surface. Triangles
// are wound counter clockwise when seen from outside. Triangles thinner than
// tol are dropped.
func mtToTriangles(dst []r3.Triangle, p [8]r3.Vec, v [8]float64, tol float64) int {
	n := 0
	for _, tet := range cubeTetrahedra {
		var in, out [4]int
		nin, nout := 0, 0
		for _, c := range tet {
			if v[c] < 0 {
				in[nin] = c
				nin++
			} else {
				out[nout] = c
				nout++
			}
		}
		switch nin {
		case 1:
			a := in[0]
			n += emitTriangle(dst[n:], p, v, tol, r3.Triangle{
				edgePoint(p, v, a, out[0]),
				edgePoint(p, v, a, out[1]),
				edgePoint(p, v, a, out[2]),
			}, in[:1], out[:3])
		case 3:
			a := out[0]
			n += emitTriangle(dst[n:], p, v, tol, r3.Triangle{
				edgePoint(p, v, in[0], a),
				edgePoint(p, v, in[1], a),
				edgePoint(p, v, in[2], a),
			}, in[:3], out[:1])
		case 2:
			a, b := in[0], in[1]
			c, d := out[0], out[1]
			ac := edgePoint(p, v, a, c)
			ad := edgePoint(p, v, a, d)
			bc := edgePoint(p, v, b, c)
			bd := edgePoint(p, v, b, d)
			n += emitTriangle(dst[n:], p, v, tol, r3.Triangle{ac, ad, bd}, in[:2], out[:2])
			n += emitTriangle(dst[n:], p, v, tol, r3.Triangle{ac, bd, bc}, in[:2], out[:2])
		}
	}
	return n
}

// edgePoint returns the zero crossing on the edge between corner i
// (inside) and corner o (outside) by linear interpolation.
func edgePoint(p [8]r3.Vec, v [8]float64, i, o int) r3.Vec {
	t := v[i] / (v[i] - v[o])
	return r3.Add(p[i], r3.Scale(t, r3.Sub(p[o], p[i])))
}

// emitTriangle orients t so that its normal points from the inside corners
// towards the outside corners and writes it to dst unless it is degenerate.
func emitTriangle(dst []r3.Triangle, p [8]r3.Vec, v [8]float64, tol float64, t r3.Triangle, in, out []int) int {
	if t.IsDegenerate(tol) {
		return 0
	}
	dir := r3.Sub(centroid(p, out), centroid(p, in))
	if r3.Dot(t.Normal(), dir) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	dst[0] = t
	return 1
}

func centroid(p [8]r3.Vec, idx []int) r3.Vec {
	var c r3.Vec
	for _, i := range idx {
		c = r3.Add(c, p[i])
	}
	return r3.Scale(1/float64(len(idx)), c)
}
