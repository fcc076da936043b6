// tilemesh is a CLI utility for building and inspecting DEM terrain tile meshes.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/aurora3d/terratile/internal/config"
	"github.com/aurora3d/terratile/internal/logger"
	"github.com/aurora3d/terratile/pkg/picking"
	"github.com/aurora3d/terratile/pkg/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	config.ParseArgs(os.Args[2:])
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()

	switch command {
	case "info":
		cmdInfo(args)
	case "gen":
		cmdGen(cfg, args)
	case "build":
		cmdBuild(cfg, args)
	case "pick":
		cmdPick(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tilemesh - DEM terrain tile mesh utility

Usage:
  tilemesh <command> [options] [args]

Commands:
  info <file.dem>                        Show tile information
  gen <file.dem>                         Generate a demo tile (see -resolution)
  build <file.dem>                       Build vertex/index buffers (see -out, -obj)
  pick <file.dem> ox oy oz dx dy dz [d]  Cast a ray at the tile mesh

Options:
  -config path    Config file (default ./terratile.yaml)
  -resolution n   Heightmap grid side length
  -skirt h        Skirt drop in world units
  -out dir        Output directory
  -obj            Also write a Wavefront OBJ dump
  -debug          Enable debug logging

Examples:
  tilemesh gen -resolution 128 hills.dem
  tilemesh build -obj -out ./meshes hills.dem
  tilemesh pick hills.dem 0 5 0 0 -1 0`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tilemesh info <file.dem>")
		os.Exit(1)
	}

	dem, err := terrain.ReadDEM(args[0])
	if err != nil {
		logger.Error("failed to read DEM", zap.Error(err))
		os.Exit(1)
	}

	min := float32(math.MaxFloat32)
	max := float32(-math.MaxFloat32)
	noData := 0
	for _, s := range dem.Samples {
		if math.IsNaN(float64(s)) {
			noData++
			continue
		}
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	fmt.Printf("Tile:       %s\n", args[0])
	fmt.Printf("Resolution: %d x %d\n", dem.Resolution, dem.Resolution)
	fmt.Printf("No data:    %d of %d samples\n", noData, len(dem.Samples))
	if noData < len(dem.Samples) {
		fmt.Printf("Elevation:  [%g, %g]\n", min, max)
	}
	fmt.Printf("Vertices:   %d (%d bytes)\n",
		terrain.VertexCount(dem.Resolution),
		terrain.VertexCount(dem.Resolution)*terrain.VertexStride)
	fmt.Printf("Indices:    %d (%d triangles)\n",
		terrain.IndexCount(dem.Resolution),
		terrain.IndexCount(dem.Resolution)/3)
}

// cmdGen writes a synthetic rolling-hills tile, handy for trying the other
// commands without real DEM data.
func cmdGen(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tilemesh gen <file.dem>")
		os.Exit(1)
	}

	res := cfg.Build.Resolution
	samples := make([]float32, res*res)
	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			fx := float64(i) / float64(res-1)
			fz := float64(j) / float64(res-1)
			samples[j*res+i] = float32(0.1 * (math.Sin(fx*4*math.Pi) * math.Cos(fz*4*math.Pi)))
		}
	}

	hm := terrain.NewHeightmap(res, samples)
	if err := terrain.WriteDEM(args[0], hm, cfg.Build.NoData); err != nil {
		logger.Error("failed to write DEM", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("generated tile", zap.String("path", args[0]), zap.Int("resolution", res))
}

func cmdBuild(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tilemesh build <file.dem>")
		os.Exit(1)
	}

	geom, err := buildGeometry(cfg, args[0])
	if err != nil {
		logger.Error("build failed", zap.Error(err))
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	outBase := filepath.Join(cfg.Output.Dir, base)

	if err := os.WriteFile(outBase+".vtx", geom.VertexBytes(), 0o644); err != nil {
		logger.Error("writing vertex buffer", zap.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(outBase+".idx", geom.IndexBytes(), 0o644); err != nil {
		logger.Error("writing index buffer", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("built tile mesh",
		zap.String("vertexBuffer", outBase+".vtx"),
		zap.String("indexBuffer", outBase+".idx"),
		zap.Int("triangles", geom.TriangleCount()))

	if cfg.Output.WriteOBJ {
		f, err := os.Create(outBase + ".obj")
		if err != nil {
			logger.Error("creating OBJ file", zap.Error(err))
			os.Exit(1)
		}
		defer f.Close()
		if err := geom.WriteOBJ(f); err != nil {
			logger.Error("writing OBJ file", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("wrote OBJ dump", zap.String("path", outBase+".obj"))
	}
}

func cmdPick(cfg *config.Config, args []string) {
	if len(args) < 7 {
		fmt.Fprintln(os.Stderr, "Usage: tilemesh pick <file.dem> ox oy oz dx dy dz [distance]")
		os.Exit(1)
	}

	geom, err := buildGeometry(cfg, args[0])
	if err != nil {
		logger.Error("build failed", zap.Error(err))
		os.Exit(1)
	}

	var v [6]float32
	for i := 0; i < 6; i++ {
		f, err := strconv.ParseFloat(args[i+1], 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad ray component %q: %v\n", args[i+1], err)
			os.Exit(1)
		}
		v[i] = float32(f)
	}
	distance := float32(100)
	if len(args) > 7 {
		f, err := strconv.ParseFloat(args[7], 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad distance %q: %v\n", args[7], err)
			os.Exit(1)
		}
		distance = float32(f)
	}

	ray := picking.NewRay(mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, distance)

	// Coarse reject against the tile bounds before walking triangles.
	if _, hit := ray.IntersectAABB(geom.Bounds()); !hit {
		fmt.Println("no hit (outside tile bounds)")
		return
	}

	pt, found := geom.RayIntersection(ray, mgl32.Ident4())
	if !found {
		fmt.Println("no hit")
		return
	}
	fmt.Printf("hit at (%g, %g, %g)\n", pt.X(), pt.Y(), pt.Z())
}

func buildGeometry(cfg *config.Config, path string) (*terrain.TileGeometry, error) {
	dem, err := terrain.ReadDEM(path)
	if err != nil {
		return nil, err
	}
	return terrain.NewTileGeometry(dem.Resolution, cfg.Build.SkirtHeight, dem.Samples), nil
}
