package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeffbarr/TruchetTilings/form2"
	"github.com/jeffbarr/TruchetTilings/render"
	"github.com/jeffbarr/TruchetTilings/sdf"
)

func hexPrism(t *testing.T) sdf.SDF3 {
	hex, err := form2.Hexagon(5)
	if err != nil {
		t.Fatal(err)
	}
	return sdf.ExtrudeBetween3D(hex, 0, 2)
}

func TestSTLCreateWriteRead(t *testing.T) {
	const quality = 30
	prism := hexPrism(t)
	path := filepath.Join(t.TempDir(), "hex.stl")
	err := render.CreateSTL(path, render.NewOctreeRenderer(prism, quality))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewOctreeRenderer(prism, quality))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestASCIISTLReadback(t *testing.T) {
	prism := hexPrism(t)
	model, err := render.RenderAll(render.NewOctreeRenderer(prism, 20))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "hex_ascii.stl")
	fp, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	err = render.WriteASCIISTL(fp, "hex", model)
	fp.Close()
	if err != nil {
		t.Fatal(err)
	}
	head := make([]byte, 5)
	fp, err = os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = fp.Read(head)
	fp.Close()
	if err != nil {
		t.Fatal(err)
	}
	if string(head) != "solid" {
		t.Errorf("ASCII STL starts with %q", head)
	}
	got, err := render.ReadSTLFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Errorf("read %d triangles, wrote %d", len(got), len(model))
	}
}

func TestReadSTLFileBinary(t *testing.T) {
	prism := hexPrism(t)
	path := filepath.Join(t.TempDir(), "hex_bin.stl")
	oct := render.NewOctreeRenderer(prism, 20)
	if err := render.CreateSTL(path, oct); err != nil {
		t.Fatal(err)
	}
	got, err := render.ReadSTLFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Error("no triangles read back")
	}
}
