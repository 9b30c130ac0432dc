// Package config resolves user options and a mat preset into the immutable
// record the tiling pipeline consumes.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/mat"
	"github.com/jeffbarr/TruchetTilings/pattern"
)

// Extruders assigns material channels to the parts of a cell. Zero
// disables a part. Tile is always required.
type Extruders struct {
	Tile matter.Extruder `yaml:"tile" json:"tile"`
	Arc  matter.Extruder `yaml:"arc" json:"arc"`
	Fill matter.Extruder `yaml:"fill" json:"fill"`
	Edge matter.Extruder `yaml:"edge" json:"edge"`
}

// Base holds the user facing options. Lengths are in millimetres.
type Base struct {
	CountX     int     `yaml:"countX" json:"countX"`
	CountY     int     `yaml:"countY" json:"countY"`
	Radius     float64 `yaml:"radius" json:"radius"`
	HexHeight  float64 `yaml:"hexHeight" json:"hexHeight"`
	ArcHeight  float64 `yaml:"arcHeight" json:"arcHeight"`
	ArcWidth   float64 `yaml:"arcWidth" json:"arcWidth"`
	EdgeHeight float64 `yaml:"edgeHeight" json:"edgeHeight"`
	EdgeWidth  float64 `yaml:"edgeWidth" json:"edgeWidth"`
	Gap        float64 `yaml:"gap" json:"gap"`
	Seed       int64   `yaml:"seed" json:"seed"`
	Mode       string  `yaml:"mode" json:"mode"`
	// Rotate turns cells by (x*RotateFactor*y) mod RotateMod steps of 60 degrees.
	Rotate       bool      `yaml:"rotate" json:"rotate"`
	RotateFactor int       `yaml:"rotateFactor" json:"rotateFactor"`
	RotateMod    int       `yaml:"rotateMod" json:"rotateMod"`
	Extruders    Extruders `yaml:"extruders" json:"extruders"`
	Labels       bool      `yaml:"labels" json:"labels"`
	// LabelSize is the label text height. Zero picks Radius/4.
	LabelSize float64 `yaml:"labelSize" json:"labelSize"`
	// Material names the filament whose shrinkage is compensated.
	Material string `yaml:"material" json:"material"`
	// Manual flags are used when the mat is mat.ManualName.
	Manual mat.Preset `yaml:"manual" json:"manual"`
}

// Default returns the default options.
func Default() Base {
	return Base{
		CountX:       5,
		CountY:       6,
		Radius:       20,
		HexHeight:    2,
		ArcHeight:    1,
		ArcWidth:     3,
		EdgeHeight:   0.6,
		EdgeWidth:    1.5,
		Gap:          0.2,
		Seed:         1,
		Mode:         pattern.Mode12.String(),
		Rotate:       true,
		RotateFactor: 1,
		RotateMod:    6,
		Extruders:    Extruders{Tile: 1, Arc: 2, Fill: 3, Edge: 4},
	}
}

// Render is the merged, validated configuration of one run.
type Render struct {
	CountX, CountY int
	Radius         float64
	HexHeight      float64
	ArcHeight      float64
	ArcWidth       float64
	EdgeHeight     float64
	EdgeWidth      float64
	Gap            float64
	Seed           int64
	Mode           pattern.Mode
	Rotate         bool
	RotateFactor   int
	RotateMod      int
	Extruders      Extruders
	Labels         bool
	LabelSize      float64
	Material       matter.ViscousMaterial
	Mat            mat.Preset
}

// Resolve overlays the mat named matName onto base and validates the
// result. Every problem found is reported.
func Resolve(base Base, matName string) (Render, error) {
	var errs []error
	var preset mat.Preset
	if matName == mat.ManualName {
		preset = mat.Manual(base.Manual)
	} else {
		p, err := mat.Lookup(matName)
		if err != nil {
			errs = append(errs, err)
		}
		preset = p
	}
	mode, err := pattern.ParseMode(base.Mode)
	if err != nil {
		errs = append(errs, err)
	}
	material, err := matter.Material(base.Material)
	if err != nil {
		errs = append(errs, err)
	}
	cfg := Render{
		CountX:       base.CountX,
		CountY:       base.CountY,
		Radius:       base.Radius,
		HexHeight:    base.HexHeight,
		ArcHeight:    base.ArcHeight,
		ArcWidth:     base.ArcWidth,
		EdgeHeight:   base.EdgeHeight,
		EdgeWidth:    base.EdgeWidth,
		Gap:          base.Gap,
		Seed:         base.Seed,
		Mode:         mode,
		Rotate:       base.Rotate,
		RotateFactor: base.RotateFactor,
		RotateMod:    base.RotateMod,
		Extruders:    base.Extruders,
		Labels:       base.Labels,
		LabelSize:    base.LabelSize,
		Material:     material,
		Mat:          preset,
	}
	if cfg.LabelSize == 0 {
		cfg.LabelSize = cfg.Radius / 4
	}
	errs = append(errs, cfg.validate()...)
	if len(errs) > 0 {
		return Render{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func (c *Render) validate() (errs []error) {
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	if !(c.Radius > 0) {
		fail("radius must be positive, got %g", c.Radius)
	}
	if c.CountX < 1 || c.CountY < 1 {
		fail("grid must be at least 1x1, got %dx%d", c.CountX, c.CountY)
	}
	if !(c.HexHeight > 0) {
		fail("hexHeight must be positive, got %g", c.HexHeight)
	}
	if c.Gap < 0 {
		fail("gap must not be negative, got %g", c.Gap)
	}
	ex := c.Extruders
	for _, e := range []struct {
		name string
		e    matter.Extruder
	}{{"tile", ex.Tile}, {"arc", ex.Arc}, {"fill", ex.Fill}, {"edge", ex.Edge}} {
		if !e.e.Valid() {
			fail("%s extruder %d outside 0..%d", e.name, e.e, matter.MaxExtruders)
		}
	}
	if !ex.Tile.Enabled() {
		fail("tile extruder is required")
	}
	if ex.Arc.Enabled() || ex.Fill.Enabled() {
		if !(c.ArcWidth > 0) || c.ArcWidth >= c.Radius/2 {
			fail("arcWidth %g must lie in (0, radius/2)", c.ArcWidth)
		}
		if !(c.ArcHeight > 0) {
			fail("arcHeight must be positive, got %g", c.ArcHeight)
		}
	}
	if ex.Edge.Enabled() {
		if !(c.EdgeWidth > 0) || c.EdgeWidth >= c.Apothem() {
			fail("edgeWidth %g must lie in (0, %g)", c.EdgeWidth, c.Apothem())
		}
		if !(c.EdgeHeight > 0) || c.EdgeHeight > c.HexHeight {
			fail("edgeHeight %g must lie in (0, hexHeight]", c.EdgeHeight)
		}
	}
	if c.Labels {
		if !ex.Edge.Enabled() {
			fail("labels require an edge extruder")
		}
		if !(c.LabelSize > 0) {
			fail("labelSize must be positive, got %g", c.LabelSize)
		}
	}
	if c.Rotate && c.RotateMod < 1 {
		fail("rotateMod must be at least 1, got %d", c.RotateMod)
	}
	return errs
}

// Pitch is the distance from a cell center to the vertex of the lattice
// hexagon it occupies, radius plus gap.
func (c Render) Pitch() float64 { return c.Radius + c.Gap }

// Apothem is the distance from the cell center to the middle of an edge.
func (c Render) Apothem() float64 { return c.Radius * math.Sqrt(3) / 2 }

// Parity is 1 when StartColumnParity is set, else 0.
func (c Render) Parity() int {
	if c.Mat.StartColumnParity {
		return 1
	}
	return 0
}

// MinFeature returns the thinnest dimension of any enabled part: the base
// height, the arc height and width, and the edge inlay height and width.
func (c Render) MinFeature() float64 {
	feature := c.HexHeight
	ex := c.Extruders
	if ex.Arc.Enabled() || ex.Fill.Enabled() {
		feature = math.Min(feature, math.Min(c.ArcHeight, c.ArcWidth))
	}
	if ex.Edge.Enabled() {
		feature = math.Min(feature, math.Min(c.EdgeHeight, c.EdgeWidth))
	}
	return feature
}
