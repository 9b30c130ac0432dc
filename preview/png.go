package preview

import (
	"errors"
	"image"
	"math"
	"sort"

	"github.com/fogleman/fauxgl"
	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View is a camera looking at meshes fitted inside the bi-unit cube.
type View struct {
	Eye, LookAt, Up r3.Vec
	Near, Far       float64
	// Fovy is the vertical field of view in degrees.
	Fovy float64
}

// DefaultView looks down at a panel from the front, slightly tilted.
var DefaultView = View{
	Eye:  r3.Vec{X: 0, Y: -2.2, Z: 3.2},
	Up:   r3.Vec{Z: 1},
	Near: 1,
	Far:  10,
	Fovy: 30,
}

// PNGOptions sets the output size of Image and PNG.
type PNGOptions struct {
	Width, Height int
	// Supersample renders at this multiple of the output size before
	// downsampling. Values below 1 are treated as 1.
	Supersample int
	View        View
}

// DefaultPNGOptions is 0.4 times Full HD with 2x supersampling.
var DefaultPNGOptions = PNGOptions{Width: 768, Height: 432, Supersample: 2, View: DefaultView}

var extruderColors = [...]string{
	"#468966", // unused, extruder 0
	"#e8e2cf",
	"#b64926",
	"#3e606f",
	"#ffb03b",
	"#8e2800",
}

// Image renders the meshes of every extruder together, each in its own
// color, with Phong shading.
func Image(meshes map[matter.Extruder][]r3.Triangle, opts PNGOptions) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("image size must be positive")
	}
	scale := opts.Supersample
	if scale < 1 {
		scale = 1
	}
	var extruders []matter.Extruder
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Scale(-1, lo)
	for e, model := range meshes {
		if len(model) == 0 {
			continue
		}
		extruders = append(extruders, e)
		for _, t := range model {
			for _, v := range t {
				lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
				hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
			}
		}
	}
	if len(extruders) == 0 {
		return nil, errors.New("no triangles to render")
	}
	sort.Slice(extruders, func(i, j int) bool { return extruders[i] < extruders[j] })
	// fit every mesh in the same bi-unit cube centered at the origin
	size := r3.Sub(hi, lo)
	k := 2 / math.Max(size.X, math.Max(size.Y, size.Z))
	center := r3.Scale(0.5, r3.Add(lo, hi))
	fit := func(v r3.Vec) fauxgl.Vector {
		v = r3.Scale(k, r3.Sub(v, center))
		return fauxgl.V(v.X, v.Y, v.Z)
	}

	view := opts.View
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		lookat = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(opts.Width*scale, opts.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(opts.Width) / float64(opts.Height)
	matrix := fauxgl.LookAt(eye, lookat, up).Perspective(view.Fovy, aspect, view.Near, view.Far)
	for _, e := range extruders {
		model := meshes[e]
		triangles := make([]*fauxgl.Triangle, len(model))
		for i, t := range model {
			triangles[i] = fauxgl.NewTriangleForPoints(fit(t[0]), fit(t[1]), fit(t[2]))
		}
		shader := fauxgl.NewPhongShader(matrix, light, eye)
		shader.ObjectColor = fauxgl.HexColor(extruderColors[int(e)%len(extruderColors)])
		context.Shader = shader
		context.DrawMesh(fauxgl.NewTriangleMesh(triangles))
	}
	// downsample image for antialiasing
	img := context.Image()
	return resize.Resize(uint(opts.Width), uint(opts.Height), img, resize.Bilinear), nil
}

// PNG renders meshes with Image and saves the result to path.
func PNG(path string, meshes map[matter.Extruder][]r3.Triangle, opts PNGOptions) error {
	img, err := Image(meshes, opts)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}
