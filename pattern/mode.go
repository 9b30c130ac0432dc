// Package pattern is the catalog of Truchet arc layouts and the modes that
// choose between them.
package pattern

import (
	"fmt"
)

// Index selects one of the arc layouts. None draws no decoration.
type Index int

const (
	None     Index = 0
	MaxIndex Index = 6
)

// Mode is a tiling mode. It bounds the random draw of arc indices or, for
// ModeCircledTriad, defers to a fixed table.
type Mode int

const (
	Mode1 Mode = iota + 1
	Mode2
	Mode3
	Mode4
	Mode5
	Mode6
	Mode12
	Mode3456
	ModeCircledTriad
)

var modeNames = map[Mode]string{
	Mode1:            "1",
	Mode2:            "2",
	Mode3:            "3",
	Mode4:            "4",
	Mode5:            "5",
	Mode6:            "6",
	Mode12:           "1-2",
	Mode3456:         "3-4-5-6",
	ModeCircledTriad: "CircledTriad",
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown truchet mode %q", s)
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{Mode1, Mode2, Mode3, Mode4, Mode5, Mode6, Mode12, Mode3456, ModeCircledTriad}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AdmissibleRange returns the inclusive range of arc indices the mode draws
// from. ModeCircledTriad only ever uses index 1.
func (m Mode) AdmissibleRange() (min, max Index) {
	switch m {
	case Mode1, Mode2, Mode3, Mode4, Mode5, Mode6:
		return Index(m), Index(m)
	case Mode12:
		return 1, 2
	case Mode3456:
		return 3, 6
	case ModeCircledTriad:
		return 1, 1
	}
	panic("invalid mode " + m.String())
}

// TableDriven reports whether arc index and rotation come from the
// CircledTriad table instead of the random draw.
func (m Mode) TableDriven() bool { return m == ModeCircledTriad }

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
