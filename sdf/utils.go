package sdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// MinFunc is a minimum functions for SDF blending.
type MinFunc func(a, b float64) float64

// MaxFunc is a maximum function for SDF blending.
type MaxFunc func(a, b float64) float64

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Sign returns the sign of x
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Normal3 returns the normal of an SDF3 at a point (doesn't need to be on the surface).
// Computed by sampling it 6 times inside a box of side 2*eps centered on p.
func Normal3(s SDF3, p r3.Vec, eps float64) r3.Vec {
	e := eps
	x := s.Evaluate(r3.Add(p, r3.Vec{X: e})) - s.Evaluate(r3.Add(p, r3.Vec{X: -e}))
	y := s.Evaluate(r3.Add(p, r3.Vec{Y: e})) - s.Evaluate(r3.Add(p, r3.Vec{Y: -e}))
	z := s.Evaluate(r3.Add(p, r3.Vec{Z: e})) - s.Evaluate(r3.Add(p, r3.Vec{Z: -e}))
	return r3.Unit(r3.Vec{X: x, Y: y, Z: z})
}

// Normal2 returns the normal of an SDF2 at a point (doesn't need to be on the surface).
// Computed by sampling it 4 times inside a box of side 2*eps centered on p.
func Normal2(s SDF2, p r2.Vec, eps float64) r2.Vec {
	e := eps
	x := s.Evaluate(r2.Add(p, r2.Vec{X: e})) - s.Evaluate(r2.Add(p, r2.Vec{X: -e}))
	y := s.Evaluate(r2.Add(p, r2.Vec{Y: e})) - s.Evaluate(r2.Add(p, r2.Vec{Y: -e}))
	return r2.Unit(r2.Vec{X: x, Y: y})
}

func r2Of(p r3.Vec) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}
