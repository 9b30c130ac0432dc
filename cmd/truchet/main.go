// Command truchet writes the STL files of hexagonal Truchet tile panels,
// one per extruder, ready for a multi-material slicer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	truchet "github.com/jeffbarr/TruchetTilings"
	"github.com/jeffbarr/TruchetTilings/config"
	"github.com/jeffbarr/TruchetTilings/helpers/matter"
	"github.com/jeffbarr/TruchetTilings/mat"
	"github.com/jeffbarr/TruchetTilings/preview"
	"github.com/jeffbarr/TruchetTilings/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	var (
		configPath = flag.String("config", "", "options file (.yaml, .yml, .json or .json5)")
		matName    = flag.String("mat", "A", fmt.Sprintf("mat preset %v or %s", mat.Names(), mat.ManualName))
		extruder   = flag.Int("extruder", 0, "export only this extruder, 0 exports all")
		outDir     = flag.String("out", ".", "output directory")
		prefix     = flag.String("prefix", "truchet", "output file name prefix")
		meshCells  = flag.Int("resolution", truchet.DefaultMeshCells, "minimum mesh cells along the longest axis")
		ascii      = flag.Bool("ascii", false, "write ASCII STL")
		verify     = flag.Bool("verify", false, "read every STL back and check it against the model")
		writeSVG   = flag.Bool("svg", false, "write an SVG layout map per mat")
		writePNG   = flag.Bool("png", false, "write a PNG preview per mat")
		batch      = flag.Bool("batch", false, "generate every mat preset")
		countX     = flag.Int("countx", 0, "override grid columns")
		countY     = flag.Int("county", 0, "override grid rows")
		radius     = flag.Float64("radius", 0, "override hexagon radius in mm")
		seed       = flag.Int64("seed", 0, "override random seed")
		mode       = flag.String("mode", "", "override truchet mode")
	)
	flag.Parse()

	base := config.Default()
	if *configPath != "" {
		var err error
		base, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading options")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "countx":
			base.CountX = *countX
		case "county":
			base.CountY = *countY
		case "radius":
			base.Radius = *radius
		case "seed":
			base.Seed = *seed
		case "mode":
			base.Mode = *mode
		}
	})

	names := []string{*matName}
	if *batch {
		names = mat.Names()
	}
	// Every configuration is checked before anything is written.
	cfgs := make([]config.Render, len(names))
	for i, name := range names {
		cfg, err := config.Resolve(base, name)
		if err != nil {
			log.Fatal().Err(err).Str("mat", name).Msg("bad configuration")
		}
		cfgs[i] = cfg
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating output directory")
	}

	for _, cfg := range cfgs {
		start := time.Now()
		model, err := truchet.Generate(cfg)
		if err != nil {
			log.Fatal().Err(err).Str("mat", cfg.Mat.Name).Msg("generating panel")
		}
		log.Info().Str("mat", cfg.Mat.Name).Int("cells", len(model.Grid.Cells)).
			Int("pieces", len(model.Pieces)).Str("mode", cfg.Mode.String()).Msg("laid out panel")
		if *writeSVG {
			path := filepath.Join(*outDir, fmt.Sprintf("%s-%s.svg", *prefix, cfg.Mat.Name))
			if err := createSVG(path, model); err != nil {
				log.Fatal().Err(err).Msg("writing layout map")
			}
			log.Info().Str("file", path).Msg("wrote layout map")
		}
		paths, err := truchet.Export(model, truchet.ExportOptions{
			Dir:       *outDir,
			Prefix:    *prefix,
			Extruder:  matter.Extruder(*extruder),
			MeshCells: *meshCells,
			ASCII:     *ascii,
			Verify:    *verify,
		})
		if err != nil {
			log.Fatal().Err(err).Str("mat", cfg.Mat.Name).Msg("exporting meshes")
		}
		for _, p := range paths {
			log.Info().Str("file", p).Msg("wrote mesh")
		}
		if *writePNG {
			path := filepath.Join(*outDir, fmt.Sprintf("%s-%s.png", *prefix, cfg.Mat.Name))
			if err := createPNG(path, model, *outDir, *prefix, paths); err != nil {
				log.Fatal().Err(err).Msg("writing preview")
			}
			log.Info().Str("file", path).Msg("wrote preview")
		}
		log.Info().Str("mat", cfg.Mat.Name).Dur("elapsed", time.Since(start)).Msg("done")
	}
}

func createSVG(path string, m *truchet.Model) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = preview.SVG(fp, m.Config, m.Grid, m.Pieces)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// createPNG renders the STL files just written for m.
func createPNG(path string, m *truchet.Model, dir, prefix string, written []string) error {
	exported := make(map[string]bool)
	for _, p := range written {
		exported[p] = true
	}
	meshes := make(map[matter.Extruder][]r3.Triangle)
	for _, e := range m.Extruders() {
		stl := filepath.Join(dir, truchet.FileName(prefix, m.Config.Mat.Name, e))
		if !exported[stl] {
			continue
		}
		model, err := render.ReadSTLFile(stl)
		if err != nil {
			return err
		}
		meshes[e] = model
	}
	return preview.PNG(path, meshes, preview.DefaultPNGOptions)
}
