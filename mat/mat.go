// Package mat holds the border and corner presets ("mats") that let several
// printed panels be assembled into a larger mosaic.
package mat

import (
	"fmt"
)

// ManualName selects the flags given by the user instead of a preset.
const ManualName = "Manual"

// Preset is a named set of perimeter flags. StartColumnParity shifts which
// columns are raised: with parity false odd columns are shifted up by half
// a hexagon, with parity true even columns are.
type Preset struct {
	Name              string `yaml:"name" json:"name"`
	StartColumnParity bool   `yaml:"startColumnParity" json:"startColumnParity"`
	LeftBorder        bool   `yaml:"leftBorder" json:"leftBorder"`
	RightBorder       bool   `yaml:"rightBorder" json:"rightBorder"`
	TopBorder         bool   `yaml:"topBorder" json:"topBorder"`
	BottomBorder      bool   `yaml:"bottomBorder" json:"bottomBorder"`
	BottomLeftCorner  bool   `yaml:"bottomLeftCorner" json:"bottomLeftCorner"`
	TopLeftCorner     bool   `yaml:"topLeftCorner" json:"topLeftCorner"`
	BottomRightCorner bool   `yaml:"bottomRightCorner" json:"bottomRightCorner"`
	TopRightCorner    bool   `yaml:"topRightCorner" json:"topRightCorner"`
}

// Presets ending a panel on its right hand side set StartColumnParity. With
// an odd column count this leaves the last column unshifted, matching the
// first column of a neighbouring panel that starts with parity false.
var presets = [...]Preset{
	{Name: "A", LeftBorder: true, RightBorder: true, TopBorder: true, BottomBorder: true,
		BottomLeftCorner: true, TopLeftCorner: true, BottomRightCorner: true, TopRightCorner: true},
	{Name: "B", LeftBorder: true, TopBorder: true, TopLeftCorner: true},
	{Name: "C", StartColumnParity: true, RightBorder: true, TopBorder: true, TopRightCorner: true},
	{Name: "D", LeftBorder: true, BottomBorder: true, BottomLeftCorner: true},
	{Name: "E", StartColumnParity: true, RightBorder: true, BottomBorder: true, BottomRightCorner: true},
	{Name: "F"},
	{Name: "G", LeftBorder: true},
	{Name: "H", StartColumnParity: true, RightBorder: true},
	{Name: "I", TopBorder: true},
	{Name: "J", BottomBorder: true},
	{Name: "K", LeftBorder: true, TopBorder: true, BottomBorder: true,
		TopLeftCorner: true, BottomLeftCorner: true},
	{Name: "L", StartColumnParity: true, RightBorder: true, TopBorder: true, BottomBorder: true,
		TopRightCorner: true, BottomRightCorner: true},
	{Name: "M", TopBorder: true, LeftBorder: true, RightBorder: true,
		TopLeftCorner: true, TopRightCorner: true},
	{Name: "N", BottomBorder: true, LeftBorder: true, RightBorder: true,
		BottomLeftCorner: true, BottomRightCorner: true},
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown mat %q", name)
}

// Names returns the preset names in order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Manual returns a copy of flags named ManualName.
func Manual(flags Preset) Preset {
	flags.Name = ManualName
	return flags
}

// HasBorder reports whether any border or corner flag is set.
func (p Preset) HasBorder() bool {
	return p.LeftBorder || p.RightBorder || p.TopBorder || p.BottomBorder ||
		p.BottomLeftCorner || p.TopLeftCorner || p.BottomRightCorner || p.TopRightCorner
}
