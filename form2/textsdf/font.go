// Package textsdf converts lines of text into SDF2 shapes using
// TrueType glyph outlines.
package textsdf

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode"

	"github.com/golang/freetype/truetype"
	"github.com/jeffbarr/TruchetTilings/form2"
	"github.com/jeffbarr/TruchetTilings/internal/d2"
	"github.com/jeffbarr/TruchetTilings/sdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// quadSamples is the number of line segments each quadratic curve
// of a glyph outline is split into.
const quadSamples = 6

// Font implements font parsing and glyph outline generation.
// A Font is safe for concurrent use.
type Font struct {
	mu     sync.Mutex
	ttf    *truetype.Font
	gb     truetype.GlyphBuf
	glyphs map[rune][][]r2.Vec // contours in em units
}

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// Default returns the Go Regular font.
func Default() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = LoadTTFBytes(goregular.TTF)
	})
	return defaultFont, defaultErr
}

// LoadTTFBytes parses a TTF file blob.
func LoadTTFBytes(ttf []byte) (*Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return &Font{ttf: f, glyphs: make(map[rune][][]r2.Vec)}, nil
}

// Text returns s as a single line of text scaled so that its bounding
// box is height tall and centered on the origin.
func (f *Font) Text(s string, height float64) (sdf.SDF2, error) {
	if height <= 0 {
		return nil, errors.New("text height must be positive")
	}
	contours, err := f.lineContours(s)
	if err != nil {
		return nil, err
	}
	bb := d2.Box{Min: d2.Elem(math.Inf(1)), Max: d2.Elem(math.Inf(-1))}
	for _, c := range contours {
		for _, v := range c {
			bb = bb.Include(v)
		}
	}
	if bb.Size().Y <= 0 {
		return nil, fmt.Errorf("text %q has no height", s)
	}
	k := height / bb.Size().Y
	center := bb.Center()
	for _, c := range contours {
		for i := range c {
			c[i] = r2.Scale(k, r2.Sub(c[i], center))
		}
	}
	return form2.MultiPolygon(contours)
}

// lineContours returns the outlines of every glyph of s laid out on a
// line starting at x=0. Kerning and advance widths set letter spacing.
// The returned contours are copies owned by the caller.
func (f *Font) lineContours(s string) ([][]r2.Vec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	scale := f.scale()
	em := float64(f.ttf.FUnitsPerEm())
	var (
		out     [][]r2.Vec
		idxPrev truetype.Index
		xOfs    int64
		first   = true
	)
	for _, c := range s {
		if !unicode.IsGraphic(c) {
			return nil, fmt.Errorf("char %q not graphic", c)
		}
		idx := f.ttf.Index(c)
		hm := f.ttf.HMetric(scale, idx)
		if unicode.IsSpace(c) {
			xOfs += int64(hm.AdvanceWidth)
			continue
		}
		if !first {
			xOfs += int64(f.ttf.Kern(scale, idxPrev, idx))
		}
		first = false
		idxPrev = idx
		g, err := f.glyph(c, idx)
		if err != nil {
			return nil, fmt.Errorf("char %q: %w", c, err)
		}
		dx := float64(xOfs) / em
		for _, contour := range g {
			cp := make([]r2.Vec, len(contour))
			for i, v := range contour {
				cp[i] = r2.Vec{X: v.X + dx, Y: v.Y}
			}
			out = append(out, cp)
		}
		xOfs += int64(hm.AdvanceWidth)
	}
	if len(out) == 0 {
		return nil, errors.New("no text provided")
	}
	return out, nil
}

// glyph returns the cached contours of c. Must be called with f.mu held.
func (f *Font) glyph(c rune, idx truetype.Index) ([][]r2.Vec, error) {
	if g, ok := f.glyphs[c]; ok {
		return g, nil
	}
	gb := &f.gb
	err := gb.Load(f.ttf, f.scale(), idx, font.HintingNone)
	if err != nil {
		return nil, err
	}
	em := float64(f.ttf.FUnitsPerEm())
	var contours [][]r2.Vec
	start := 0
	for _, end := range gb.Ends {
		c := glyphContour(gb.Points[start:end], 1/em)
		start = end
		if len(c) >= 3 {
			contours = append(contours, c)
		}
	}
	if len(contours) == 0 {
		return nil, errors.New("glyph has no outline")
	}
	f.glyphs[c] = contours
	return contours, nil
}

func (f *Font) scale() fixed.Int26_6 {
	return fixed.Int26_6(f.ttf.FUnitsPerEm())
}

type contourPoint struct {
	v  r2.Vec
	on bool
}

// glyphContour flattens a closed TrueType contour of on-curve and
// off-curve (quadratic control) points into a polyline.
func glyphContour(points []truetype.Point, k float64) []r2.Vec {
	n := len(points)
	if n < 2 {
		return nil
	}
	start := -1
	for i, p := range points {
		if p.Flags&1 != 0 {
			start = i
			break
		}
	}
	seq := make([]contourPoint, 0, n+2)
	if start >= 0 {
		for j := 0; j <= n; j++ {
			p := points[(start+j)%n]
			seq = append(seq, contourPoint{v: p2v(p, k), on: p.Flags&1 != 0})
		}
	} else {
		// All points off-curve: begin on the implicit point between
		// the last and first controls.
		m := mid(p2v(points[n-1], k), p2v(points[0], k))
		seq = append(seq, contourPoint{v: m, on: true})
		for _, p := range points {
			seq = append(seq, contourPoint{v: p2v(p, k)})
		}
		seq = append(seq, contourPoint{v: m, on: true})
	}

	out := []r2.Vec{seq[0].v}
	prev := seq[0].v
	for i := 1; i < len(seq); i++ {
		c := seq[i]
		if c.on {
			out = append(out, c.v)
			prev = c.v
			continue
		}
		next := seq[i+1]
		end := next.v
		if !next.on {
			end = mid(c.v, next.v)
		} else {
			i++
		}
		out = appendQuad(out, prev, c.v, end)
		prev = end
	}
	return out
}

// appendQuad samples the quadratic bezier p0-p1-p2, excluding p0.
func appendQuad(dst []r2.Vec, p0, p1, p2 r2.Vec) []r2.Vec {
	for i := 1; i <= quadSamples; i++ {
		t := float64(i) / quadSamples
		u := 1 - t
		dst = append(dst, r2.Add(r2.Add(r2.Scale(u*u, p0), r2.Scale(2*u*t, p1)), r2.Scale(t*t, p2)))
	}
	return dst
}

func p2v(p truetype.Point, k float64) r2.Vec {
	return r2.Vec{
		X: float64(p.X) * k,
		Y: float64(p.Y) * k,
	}
}

func mid(a, b r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}
