package sdf

import (
	"math"

	"github.com/jeffbarr/TruchetTilings/internal/d2"
	"github.com/jeffbarr/TruchetTilings/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// m33 is a 3x3 row major matrix for 2D homogeneous transforms.
type m33 [9]float64

// m44 is a 4x4 row major matrix for 3D homogeneous transforms.
type m44 [16]float64

func identity2d() m33 {
	return m33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func identity3d() m44 {
	return m44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate2D returns a 3x3 translation matrix.
func Translate2D(v r2.Vec) m33 {
	return m33{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// Scale2D returns a 3x3 scaling matrix.
// Scaling does not preserve distance. See: ScaleUniform2D().
func Scale2D(v r2.Vec) m33 {
	return m33{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, 1,
	}
}

// Rotate returns an orthographic 2x2 rotation matrix (right hand rule) as
// a 3x3 homogeneous matrix.
func Rotate(a float64) m33 {
	s, c := math.Sincos(a)
	return m33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Rotate2D returns a 3x3 rotation matrix about the origin.
func Rotate2D(a float64) m33 { return Rotate(a) }

// MirrorX2D returns a 3x3 matrix that mirrors about the x axis (y -> -y).
func MirrorX2D() m33 {
	return m33{
		1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	}
}

// Translate3D returns a 4x4 translation matrix.
func Translate3D(v r3.Vec) m44 {
	return m44{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale3D returns a 4x4 scaling matrix.
// Scaling does not preserve distance. See: ScaleUniform3D()
func Scale3D(v r3.Vec) m44 {
	return m44{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a 4x4 matrix for a rotation of a radians about the z axis.
func RotateZ(a float64) m44 {
	s, c := math.Sincos(a)
	return m44{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MirrorXZ returns a 4x4 matrix that mirrors about the XZ plane (y -> -y).
func MirrorXZ() m44 {
	return m44{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies 3x3 matrices, a*b.
func (a m33) Mul(b m33) m33 {
	var m m33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}
	return m
}

// Mul multiplies 4x4 matrices, a*b.
func (a m44) Mul(b m44) m44 {
	var m m44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[4*i+j] = a[4*i]*b[j] + a[4*i+1]*b[4+j] + a[4*i+2]*b[8+j] + a[4*i+3]*b[12+j]
		}
	}
	return m
}

// MulPosition multiplies a 2d position by a 3x3 homogeneous matrix.
func (a m33) MulPosition(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2],
		Y: a[3]*b.X + a[4]*b.Y + a[5],
	}
}

// MulPosition multiplies a 3d position by a 4x4 homogeneous matrix.
func (a m44) MulPosition(b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0]*b.X + a[1]*b.Y + a[2]*b.Z + a[3],
		Y: a[4]*b.X + a[5]*b.Y + a[6]*b.Z + a[7],
		Z: a[8]*b.X + a[9]*b.Y + a[10]*b.Z + a[11],
	}
}

// MulBox transforms the corners of a 2d box and returns the axis aligned
// box that contains them.
func (a m33) MulBox(box r2.Box) r2.Box {
	vs := d2.Box(box).Vertices()
	for i := range vs {
		vs[i] = a.MulPosition(vs[i])
	}
	return r2.Box(vs.Bounds())
}

// MulBox transforms the corners of a 3d box and returns the axis aligned
// box that contains them.
func (a m44) MulBox(box r3.Box) r3.Box {
	vs := d3.Box(box).Vertices()
	for i := range vs {
		vs[i] = a.MulPosition(vs[i])
	}
	return r3.Box{Min: vs.Min(), Max: vs.Max()}
}

// Determinant returns the determinant of a 3x3 matrix.
func (a m33) Determinant() float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Inverse returns the inverse of a 3x3 matrix.
func (a m33) Inverse() m33 {
	d := a.Determinant()
	if d == 0 {
		panic("singular matrix")
	}
	d = 1 / d
	return m33{
		(a[4]*a[8] - a[5]*a[7]) * d,
		(a[2]*a[7] - a[1]*a[8]) * d,
		(a[1]*a[5] - a[2]*a[4]) * d,
		(a[5]*a[6] - a[3]*a[8]) * d,
		(a[0]*a[8] - a[2]*a[6]) * d,
		(a[2]*a[3] - a[0]*a[5]) * d,
		(a[3]*a[7] - a[4]*a[6]) * d,
		(a[1]*a[6] - a[0]*a[7]) * d,
		(a[0]*a[4] - a[1]*a[3]) * d,
	}
}

// Inverse returns the inverse of an affine 4x4 matrix. The bottom row
// is assumed to be (0, 0, 0, 1).
func (a m44) Inverse() m44 {
	r := m33{
		a[0], a[1], a[2],
		a[4], a[5], a[6],
		a[8], a[9], a[10],
	}.Inverse()
	t := r3.Vec{X: a[3], Y: a[7], Z: a[11]}
	return m44{
		r[0], r[1], r[2], -(r[0]*t.X + r[1]*t.Y + r[2]*t.Z),
		r[3], r[4], r[5], -(r[3]*t.X + r[4]*t.Y + r[5]*t.Z),
		r[6], r[7], r[8], -(r[6]*t.X + r[7]*t.Y + r[8]*t.Z),
		0, 0, 0, 1,
	}
}
