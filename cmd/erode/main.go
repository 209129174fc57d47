package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"terrain-erosion/internal/config"
	"terrain-erosion/internal/erosion"
	"terrain-erosion/internal/export"
	"terrain-erosion/internal/profiling"
	"terrain-erosion/internal/terrain"

	"github.com/xlab/closer"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(func() {
		cancel()
		if summary := profiling.TopN(5); summary != "" {
			log.Printf("timings: %s", summary)
		}
	})
	closer.Checked(func() error { return run(ctx, os.Args[1:]) }, true)
	closer.Close()
}

func run(ctx context.Context, args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("erode", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gen, err := cfg.Terrain.NewGenerator()
	if err != nil {
		return err
	}
	grid := cfg.Terrain.NewGrid()
	gen.GenerateTerrain(grid, float32(cfg.Terrain.MaxHeight))
	lo, hi := grid.Bounds()
	log.Printf("generated %dx%d %s terrain, heights %.2f..%.2f", grid.Width(), grid.Depth(), gen.Name(), lo, hi)

	eroder := erosion.New(
		erosion.WithParameters(cfg.ErosionParameters()),
		erosion.WithSeed(cfg.Terrain.Seed),
		erosion.WithLogger(log.Default()),
		erosion.WithTrail(cfg.Trail != ""),
	)
	if err := erodeInBatches(ctx, eroder, grid, cfg); err != nil {
		return err
	}

	if cfg.Out != "" {
		if err := writeFile(cfg.Out, func(f *os.File) error { return export.WriteHeightmapPNG(f, grid, cfg.Scale) }); err != nil {
			return err
		}
		log.Printf("wrote heightmap to %s", cfg.Out)
	}
	if cfg.Trail != "" {
		points := eroder.TrailPoints()
		if err := writeFile(cfg.Trail, func(f *os.File) error { return export.WriteTrailCSV(f, points) }); err != nil {
			return err
		}
		log.Printf("wrote %d trail points to %s", len(points), cfg.Trail)
	}
	return nil
}

// erodeInBatches runs the droplets in slices so progress can be reported and
// an interrupt lands between batches.
func erodeInBatches(ctx context.Context, eroder *erosion.Eroder, grid *terrain.HeightGrid, cfg *config.Config) error {
	var total erosion.Stats
	for done := 0; done < cfg.Droplets; {
		n := min(cfg.Batch, cfg.Droplets-done)
		if err := eroder.ErodeContext(ctx, grid, n, cfg.Lifetime); err != nil {
			return fmt.Errorf("erosion interrupted after %d droplets: %w", done+eroder.Stats().Droplets, err)
		}
		total.Add(eroder.Stats())
		done += n
		log.Printf("eroded %d/%d droplets", done, cfg.Droplets)
	}
	log.Printf("erosion: %v", total)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
