package config

import (
	"flag"
	"fmt"
	"slices"

	"terrain-erosion/internal/terrain"
)

// TerrainSettings holds heightfield and generator configuration.
type TerrainSettings struct {
	Width     int
	Depth     int
	Spacing   float64
	MaxHeight float64
	Generator string
	Frequency float64
	Octaves   int
	Seed      int64
	Workers   int
}

func defaultTerrainSettings() TerrainSettings {
	return TerrainSettings{
		Width:     256,
		Depth:     256,
		Spacing:   1,
		MaxHeight: 90,
		Generator: "perlin",
		Frequency: terrain.DefaultFrequency,
		Octaves:   terrain.DefaultOctaves,
		Seed:      123456,
	}
}

func (s *TerrainSettings) bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "grid samples along X")
	fs.IntVar(&s.Depth, "depth", s.Depth, "grid samples along Z")
	fs.Float64Var(&s.Spacing, "spacing", s.Spacing, "world distance between samples")
	fs.Float64Var(&s.MaxHeight, "max-height", s.MaxHeight, "elevation of the highest noise value")
	fs.StringVar(&s.Generator, "generator", s.Generator, fmt.Sprintf("terrain generator %v", terrain.GeneratorNames()))
	fs.Float64Var(&s.Frequency, "frequency", s.Frequency, "noise frequency across the grid")
	fs.IntVar(&s.Octaves, "octaves", s.Octaves, "noise octaves")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "seed for terrain and droplet spawns")
	fs.IntVar(&s.Workers, "workers", s.Workers, "goroutines filling terrain rows (0 = GOMAXPROCS)")
}

func (s TerrainSettings) validate() error {
	switch {
	case s.Width <= 0 || s.Depth <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", s.Width, s.Depth)
	case s.Spacing <= 0:
		return fmt.Errorf("spacing %v must be positive", s.Spacing)
	case s.MaxHeight < 0:
		return fmt.Errorf("max height %v is negative", s.MaxHeight)
	case s.Octaves < 1:
		return fmt.Errorf("octaves %d must be at least 1", s.Octaves)
	case !slices.Contains(terrain.GeneratorNames(), s.Generator):
		return fmt.Errorf("unknown generator %q", s.Generator)
	}
	return nil
}

// NewGenerator builds the configured terrain generator.
func (s TerrainSettings) NewGenerator() (terrain.TerrainGenerator, error) {
	g, err := terrain.NewGenerator(s.Generator, s.Seed)
	if err != nil {
		return nil, err
	}
	g.SetFrequency(s.Frequency)
	g.SetOctaves(s.Octaves)
	g.SetWorkers(s.Workers)
	return g, nil
}

// NewGrid allocates the configured heightfield.
func (s TerrainSettings) NewGrid() *terrain.HeightGrid {
	return terrain.NewHeightGrid(s.Width, s.Depth, float32(s.Spacing))
}
