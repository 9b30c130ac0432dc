package matter

import (
	"fmt"
	"strings"

	"github.com/jeffbarr/TruchetTilings/sdf"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "PLA", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG is glycol modified PET, tougher than PLA and slightly more prone to shrink.
	PETG = ViscousMaterial{name: "PETG", shrink: 0.4e-2, pullShrink: .45}
	// ABS shrinks noticeably once it cools.
	ABS = ViscousMaterial{name: "ABS", shrink: 0.7e-2, pullShrink: .5}
	// Exact applies no compensation.
	Exact = ViscousMaterial{name: "none"}
)

type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Material returns the material with the given name. The empty name and
// "none" select Exact.
func Material(name string) (ViscousMaterial, error) {
	switch strings.ToUpper(name) {
	case "", "NONE":
		return Exact, nil
	case "PLA":
		return PLA, nil
	case "PETG":
		return PETG, nil
	case "ABS":
		return ABS, nil
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

func (m ViscousMaterial) String() string { return m.name }

// Factor is the enlargement applied by Scale.
func (m ViscousMaterial) Factor() float64 { return 1 / (1 - m.shrink) }

// Scale enlarges s about the origin so that it cools down to its modelled size.
func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	if m.shrink == 0 {
		return s
	}
	return sdf.ScaleUniform3D(s, m.Factor())
}

// InternalDimScale returns the modelled size of a hole or slot that should
// measure real once printed.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
