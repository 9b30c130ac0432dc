// Package preview draws quick looks at a panel: an SVG map of the layout
// and a shaded PNG of the exported meshes.
package preview

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/layout"
	"github.com/jeffbarr/TruchetTilings/pattern"
	"github.com/jeffbarr/TruchetTilings/tile"
	"gonum.org/v1/gonum/spatial/r2"
)

// svgScale is the number of SVG user units per millimetre.
const svgScale = 10

var arcFill = [...]string{
	pattern.None: "#ffffff",
	1:            "#468966",
	2:            "#ffb03b",
	3:            "#b64926",
	4:            "#8e2800",
	5:            "#3e606f",
	6:            "#91aa9d",
}

// SVG writes a map of the panel: interior cells colored by arc pattern and
// labelled with their coordinate and rotation, absent cells dashed, border
// pieces grey.
func SVG(w io.Writer, cfg config.Render, g layout.Grid, pieces []tile.Piece) error {
	type shape struct {
		poly  []r2.Vec
		style string
		text  string
	}
	var shapes []shape
	full := tile.Outline(tile.Full, cfg.Radius)
	for _, c := range g.Cells {
		s := shape{poly: offset(full, layout.Place(cfg, c.Coord))}
		switch {
		case c.Absent:
			s.style = "fill:none;stroke:#999999;stroke-dasharray:20,10;stroke-width:4"
		default:
			s.style = fmt.Sprintf("fill:%s;stroke:#333333;stroke-width:4", arcFill[c.Arc])
			s.text = fmt.Sprintf("%v r%d", c.Coord, c.Rotation)
		}
		shapes = append(shapes, s)
	}
	for _, p := range pieces {
		poly := tile.Outline(p.Variant, cfg.Radius)
		if p.Mirrored {
			for i := range poly {
				poly[i].Y = -poly[i].Y
			}
		}
		shapes = append(shapes, shape{
			poly:  offset(poly, layout.Place(cfg, p.Coord)),
			style: "fill:#cccccc;stroke:#333333;stroke-width:4",
		})
	}
	if len(shapes) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range shapes {
		for _, v := range s.poly {
			lo = r2.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y)}
			hi = r2.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y)}
		}
	}
	margin := cfg.Radius / 4
	lo = r2.Sub(lo, r2.Vec{X: margin, Y: margin})
	hi = r2.Add(hi, r2.Vec{X: margin, Y: margin})
	// SVG y grows downwards.
	px := func(v r2.Vec) (int, int) {
		return int(math.Round((v.X - lo.X) * svgScale)), int(math.Round((hi.Y - v.Y) * svgScale))
	}
	width, height := px(r2.Vec{X: hi.X, Y: lo.Y})

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#fff8e3")
	fontSize := int(cfg.Radius / 4 * svgScale)
	for _, s := range shapes {
		xs := make([]int, len(s.poly))
		ys := make([]int, len(s.poly))
		for i, v := range s.poly {
			xs[i], ys[i] = px(v)
		}
		canvas.Polygon(xs, ys, s.style)
		if s.text != "" {
			x, y := px(centroid(s.poly))
			canvas.Text(x, y, s.text, fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx", fontSize))
		}
	}
	canvas.End()
	return nil
}

func offset(poly []r2.Vec, d r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(poly))
	for i, v := range poly {
		out[i] = r2.Add(v, d)
	}
	return out
}

func centroid(poly []r2.Vec) r2.Vec {
	var c r2.Vec
	for _, v := range poly {
		c = r2.Add(c, v)
	}
	return r2.Scale(1/float64(len(poly)), c)
}
