package matter

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

type cube struct{}

func (cube) Evaluate(p r3.Vec) float64 {
	return math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z))) - 1
}

func (cube) Bounds() r3.Box {
	return r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
}

func TestMaterialLookup(t *testing.T) {
	for _, tc := range []struct {
		name string
		want ViscousMaterial
	}{
		{"", Exact},
		{"none", Exact},
		{"pla", PLA},
		{"PETG", PETG},
		{"abs", ABS},
	} {
		got, err := Material(tc.name)
		if err != nil {
			t.Errorf("%q: %s", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.name, got, tc.want)
		}
	}
	if _, err := Material("wood"); err == nil {
		t.Error("unknown material accepted")
	}
}

func TestScale(t *testing.T) {
	if s := Exact.Scale(cube{}); s != (cube{}) {
		t.Error("exact material should not wrap the shape")
	}
	s := PLA.Scale(cube{})
	want := 1 / (1 - PLA.shrink)
	if got := s.Bounds().Max.X; math.Abs(got-want) > 1e-12 {
		t.Errorf("scaled bound %g, want %g", got, want)
	}
	if PLA.Factor() != want || Exact.Factor() != 1 {
		t.Errorf("factors %g, %g", PLA.Factor(), Exact.Factor())
	}
}

func TestExtruder(t *testing.T) {
	for e := Extruder(-1); e <= MaxExtruders+1; e++ {
		valid := e >= 0 && e <= MaxExtruders
		if e.Valid() != valid {
			t.Errorf("Extruder(%d).Valid() = %v", e, e.Valid())
		}
	}
	if Extruder(0).Enabled() || !Extruder(3).Enabled() {
		t.Error("Enabled mismatch")
	}
	if Extruder(0).String() != "off" || Extruder(2).String() != "2" {
		t.Error("String mismatch")
	}
}
