// Command bvhtraverse builds a BVH over a synthetic 3D triangle grid
// or a PLY mesh file, runs a point-intersection query batch against
// it, and reports the result count alongside basic tree statistics.
package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/benjaminfaber/bvhtraverse/pkg/build"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvhlog"
	"github.com/benjaminfaber/bvhtraverse/pkg/bvol"
	"github.com/benjaminfaber/bvhtraverse/pkg/meshio"
	"github.com/benjaminfaber/bvhtraverse/pkg/traverse"
)

func main() {
	app := &cli.App{
		Name:  "bvhtraverse",
		Usage: "build a BVH over a synthetic triangle grid or PLY mesh and run a point-query batch against it",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "grid-size", Value: 10, Usage: "triangles per axis (grid-size^3 total triangles), ignored if --mesh-file is set"},
			&cli.StringFlag{Name: "mesh-file", Usage: "load triangles from a binary little-endian PLY file instead of the synthetic grid"},
			&cli.IntFlag{Name: "num-threads", Value: 0, Usage: "traversal parallelism (0 = auto-detect CPU count)"},
			&cli.IntFlag{Name: "min-traversals-per-thread", Value: 100, Usage: "minimum BVTT pairs per task"},
			&cli.StringFlag{Name: "cpu-profile", Usage: "write CPU profile to file"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := bvhlog.New()
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if profPath := c.String("cpu-profile"); profPath != "" {
		f, err := os.Create(profPath)
		if err != nil {
			return fmt.Errorf("creating CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	var triangles [][3]bvol.Vec3[float64]
	var points []bvol.Vec3[float64]

	if meshFile := c.String("mesh-file"); meshFile != "" {
		triangles, err = meshio.LoadPLYTriangles(meshFile)
		if err != nil {
			return fmt.Errorf("loading mesh file: %w", err)
		}
		points = triangleCentroids(triangles)
	} else {
		gridSize := c.Int("grid-size")
		triangles = buildGrid(gridSize)
		points = gridCellCenters(gridSize)
	}

	opts := traverse.DefaultOptions()
	if n := c.Int("num-threads"); n > 0 {
		opts.NumThreads = n
	}
	if m := c.Int("min-traversals-per-thread"); m > 0 {
		opts.MinTraversalsPerThread = m
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	buildStart := time.Now()
	bvh, err := build.BuildBVH3[float64](triangles)
	if err != nil {
		return fmt.Errorf("building BVH: %w", err)
	}
	logger.Infow("built BVH",
		"triangles", len(triangles),
		"levels", bvh.Meta.Levels,
		"virtualLeaves", bvh.Meta.VirtualLeaves,
		"buildTime", time.Since(buildStart))

	queryStart := time.Now()
	pairs, err := traverse.IntersectPoints3(bvh, points, opts)
	if err != nil {
		return fmt.Errorf("running query: %w", err)
	}
	logger.Infow("ran point query",
		"points", len(points),
		"numThreads", opts.NumThreads,
		"hits", len(pairs),
		"queryTime", time.Since(queryStart))

	return nil
}

func buildGrid(size int) [][3]bvol.Vec3[float64] {
	tris := make([][3]bvol.Vec3[float64], 0, size*size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				fx, fy, fz := float64(x), float64(y), float64(z)
				tris = append(tris, [3]bvol.Vec3[float64]{
					{X: fx, Y: fy, Z: fz},
					{X: fx + 0.2, Y: fy, Z: fz},
					{X: fx, Y: fy + 0.2, Z: fz},
				})
			}
		}
	}
	return tris
}

func triangleCentroids(tris [][3]bvol.Vec3[float64]) []bvol.Vec3[float64] {
	centroids := make([]bvol.Vec3[float64], len(tris))
	for i, tri := range tris {
		sum := tri[0].Add(tri[1]).Add(tri[2])
		centroids[i] = sum.Scale(1.0 / 3.0)
	}
	return centroids
}

func gridCellCenters(size int) []bvol.Vec3[float64] {
	points := make([]bvol.Vec3[float64], 0, size*size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				points = append(points, bvol.Vec3[float64]{
					X: float64(x) + 0.05, Y: float64(y) + 0.05, Z: float64(z),
				})
			}
		}
	}
	return points
}
