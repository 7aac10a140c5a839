// terraintool generates terrain meshes without a window and exports them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(args)
	case "heightmap", "hm":
		err = cmdHeightmap(args)
	case "obj":
		err = cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - procedural terrain generator

Usage:
  terraintool <command> [options]

Commands:
  stats                  Print vertex, index and height statistics
  heightmap -o out.png   Write the height field as a 16-bit grayscale PNG
  obj -o out.obj         Write the mesh as Wavefront OBJ

Common options:
  -config file.yaml      Read the terrain section from a config file
  -size N -seed S        Override grid resolution and noise seed
  -strip bridged         Use the bridged strip layout
  -from in.png           Build from a heightmap instead of noise (-lo/-hi scale it)
  -v                     Log generation details

Examples:
  terraintool stats -size 128
  terraintool heightmap -seed 7 -o seed7.png
  terraintool obj -from seed7.png -hi 25 -o seed7.obj`)
}

// source holds the flags shared by every subcommand.
type source struct {
	configPath string
	size       int
	seed       int64
	seedSet    bool
	strip      string
	from       string
	lo, hi     float64
	verbose    bool
}

func newFlagSet(name string, src *source) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&src.configPath, "config", "", "config file")
	fs.IntVar(&src.size, "size", 0, "grid resolution")
	fs.Func("seed", "noise seed", func(s string) error {
		_, err := fmt.Sscan(s, &src.seed)
		src.seedSet = err == nil
		return err
	})
	fs.StringVar(&src.strip, "strip", "", "strip layout: reference or bridged")
	fs.StringVar(&src.from, "from", "", "heightmap PNG to build from")
	fs.Float64Var(&src.lo, "lo", 0, "height of black heightmap pixels")
	fs.Float64Var(&src.hi, "hi", terrain.DefaultAmplitude, "height of white heightmap pixels")
	fs.BoolVar(&src.verbose, "v", false, "verbose logging")
	return fs
}

// options resolves defaults, the config file and flags into generator options.
func (s *source) options() (terrain.Options, error) {
	cfg, err := config.LoadFile(s.configPath)
	if err != nil {
		return terrain.Options{}, err
	}
	if s.size > 0 {
		cfg.Terrain.Size = s.size
	}
	if s.seedSet {
		cfg.Terrain.Seed = s.seed
	}
	if s.strip != "" {
		cfg.Terrain.Strip = s.strip
	}
	return cfg.TerrainOptions()
}

// heightField returns the field either decoded from -from or generated.
func (s *source) heightField(opts terrain.Options) (*terrain.HeightField, error) {
	if s.from == "" {
		tr, err := terrain.New(opts)
		if err != nil {
			return nil, err
		}
		return tr.HeightField()
	}

	f, err := os.Open(s.from)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	size, values, err := formats.DecodeHeightmap(f, float32(s.lo), float32(s.hi))
	if err != nil {
		return nil, err
	}
	return terrain.NewHeightField(size, values)
}

func (s *source) mesh() (*terrain.Mesh, error) {
	if s.verbose {
		if err := logger.Init("debug", ""); err != nil {
			return nil, err
		}
	}
	opts, err := s.options()
	if err != nil {
		return nil, err
	}
	hf, err := s.heightField(opts)
	if err != nil {
		return nil, err
	}
	logger.Sugar.Debugf("building %dx%d mesh, strip %v", hf.Size(), hf.Size(), opts.Layout)
	return terrain.BuildMesh(hf, opts.Layout), nil
}

func cmdStats(args []string) error {
	var src source
	if err := newFlagSet("stats", &src).Parse(args); err != nil {
		return err
	}
	mesh, err := src.mesh()
	if err != nil {
		return err
	}
	printStats(os.Stdout, mesh)
	return nil
}

func printStats(w io.Writer, mesh *terrain.Mesh) {
	s := mesh.Stats()
	fmt.Fprintf(w, "Grid:        %d x %d\n", mesh.Size, mesh.Size)
	fmt.Fprintf(w, "Vertices:    %d\n", s.Vertices)
	fmt.Fprintf(w, "Indices:     %d\n", s.Indices)
	fmt.Fprintf(w, "Triangles:   %d (%d degenerate, %d collinear)\n", s.Triangles, s.Degenerate, s.Slivers)
	fmt.Fprintf(w, "Height:      %.3f .. %.3f\n", s.MinHeight, s.MaxHeight)
	fmt.Fprintf(w, "Min normal Y: %.4f\n", s.MinNormalY)
	b := mesh.Bounds
	fmt.Fprintf(w, "Bounds:      (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func cmdHeightmap(args []string) error {
	var src source
	fs := newFlagSet("heightmap", &src)
	out := fs.String("o", "heightmap.png", "output PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := src.options()
	if err != nil {
		return err
	}
	hf, err := src.heightField(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	lo, hi, err := formats.EncodeHeightmap(f, hf.Size(), heightValues(hf))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d, heights %.3f .. %.3f)\n", *out, hf.Size(), hf.Size(), lo, hi)
	return nil
}

func heightValues(hf *terrain.HeightField) []float32 {
	n := hf.Size()
	values := make([]float32, 0, n*n)
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			values = append(values, hf.At(x, z))
		}
	}
	return values
}

func cmdOBJ(args []string) error {
	var src source
	fs := newFlagSet("obj", &src)
	out := fs.String("o", "terrain.obj", "output OBJ")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mesh, err := src.mesh()
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	err = writeOBJ(f, mesh)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d vertices)\n", *out, len(mesh.Vertices))
	return nil
}

func writeOBJ(w io.Writer, mesh *terrain.Mesh) error {
	vertices := make([]formats.OBJVertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		vertices[i] = formats.OBJVertex{
			Position: v.Position.Array(),
			Normal:   v.Normal.Array(),
			TexCoord: [2]float32{v.TexCoord.X, v.TexCoord.Y},
		}
	}
	return formats.WriteOBJ(w, "terrain", vertices, mesh.Triangles())
}
