package terrain

import (
	"fmt"
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// TerrainGenerator fills the elevations of a pre-sized grid without resizing
// or reordering it. Tuning methods are part of the interface for every variant.
type TerrainGenerator interface {
	GenerateTerrain(grid *HeightGrid, maxHeight float32)
	Name() string
	Frequency() float64
	SetFrequency(freq float64)
	Octaves() int
	SetOctaves(octaves int)
	Seed() int64
	SetWorkers(n int)
}

const (
	DefaultFrequency   = 3.0
	DefaultOctaves     = 6
	defaultPersistence = 0.5
	defaultLacunarity  = 2.0
)

// noiseSettings carries the tunables shared by all noise generators.
type noiseSettings struct {
	seed      int64
	frequency float64
	octaves   int
	workers   int
}

func newNoiseSettings(seed int64) noiseSettings {
	return noiseSettings{seed: seed, frequency: DefaultFrequency, octaves: DefaultOctaves}
}

func (s *noiseSettings) Frequency() float64        { return s.frequency }
func (s *noiseSettings) SetFrequency(freq float64) { s.frequency = freq }
func (s *noiseSettings) Octaves() int              { return s.octaves }
func (s *noiseSettings) SetOctaves(octaves int)    { s.octaves = octaves }
func (s *noiseSettings) Seed() int64               { return s.seed }

// SetWorkers bounds the number of goroutines used to fill rows. Zero means GOMAXPROCS.
func (s *noiseSettings) SetWorkers(n int) { s.workers = n }

// scaled clamps a [0,1] noise value and scales it to maxHeight.
func scaled(n float64, maxHeight float32) float32 {
	return float32(clamp01(n)) * maxHeight
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ValueNoiseGenerator produces terrain from octaves of hashed value noise.
type ValueNoiseGenerator struct {
	noiseSettings
}

// NewValueNoiseGenerator creates a value noise generator with default tuning.
func NewValueNoiseGenerator(seed int64) *ValueNoiseGenerator {
	return &ValueNoiseGenerator{noiseSettings: newNoiseSettings(seed)}
}

func (g *ValueNoiseGenerator) Name() string { return "value" }

// GenerateTerrain implements TerrainGenerator.
func (g *ValueNoiseGenerator) GenerateTerrain(grid *HeightGrid, maxHeight float32) {
	fillRows(grid, g.workers, func(u, v float64) float32 {
		n := octaveNoise2D(u*g.frequency, v*g.frequency, g.seed, g.octaves, defaultPersistence, defaultLacunarity)
		return scaled(n, maxHeight)
	})
}

// PerlinGenerator produces terrain from aquilax/go-perlin. The library bakes
// the octave count into the noise instance, so it is rebuilt on SetOctaves.
type PerlinGenerator struct {
	noiseSettings
	noise *perlin.Perlin
}

// NewPerlinGenerator creates a Perlin generator with default tuning.
func NewPerlinGenerator(seed int64) *PerlinGenerator {
	g := &PerlinGenerator{noiseSettings: newNoiseSettings(seed)}
	g.rebuild()
	return g
}

func (g *PerlinGenerator) Name() string { return "perlin" }

// SetOctaves changes the octave count and rebuilds the noise source.
func (g *PerlinGenerator) SetOctaves(octaves int) {
	g.octaves = octaves
	g.rebuild()
}

func (g *PerlinGenerator) rebuild() {
	// alpha is the amplitude divisor per octave, beta the frequency multiplier.
	g.noise = perlin.NewPerlin(1/defaultPersistence, defaultLacunarity, int32(max(g.octaves, 1)), g.seed)
}

// GenerateTerrain implements TerrainGenerator.
func (g *PerlinGenerator) GenerateTerrain(grid *HeightGrid, maxHeight float32) {
	fillRows(grid, g.workers, func(u, v float64) float32 {
		n := g.noise.Noise2D(u*g.frequency, v*g.frequency)
		return scaled((n+1)/2, maxHeight)
	})
}

// SimplexGenerator produces terrain from normalized OpenSimplex noise.
type SimplexGenerator struct {
	noiseSettings
	noise opensimplex.Noise
}

// NewSimplexGenerator creates an OpenSimplex generator with default tuning.
func NewSimplexGenerator(seed int64) *SimplexGenerator {
	return &SimplexGenerator{
		noiseSettings: newNoiseSettings(seed),
		noise:         opensimplex.NewNormalized(seed),
	}
}

func (g *SimplexGenerator) Name() string { return "simplex" }

// GenerateTerrain implements TerrainGenerator.
func (g *SimplexGenerator) GenerateTerrain(grid *HeightGrid, maxHeight float32) {
	fillRows(grid, g.workers, func(u, v float64) float32 {
		return scaled(g.octaveNoise(u*g.frequency, v*g.frequency), maxHeight)
	})
}

func (g *SimplexGenerator) octaveNoise(x, z float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	norm := 0.0
	for range g.octaves {
		total += g.noise.Eval2(x*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= defaultPersistence
		frequency *= defaultLacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

var generators = map[string]func(seed int64) TerrainGenerator{
	"value":   func(seed int64) TerrainGenerator { return NewValueNoiseGenerator(seed) },
	"perlin":  func(seed int64) TerrainGenerator { return NewPerlinGenerator(seed) },
	"simplex": func(seed int64) TerrainGenerator { return NewSimplexGenerator(seed) },
}

// NewGenerator returns the generator registered under name.
func NewGenerator(name string, seed int64) (TerrainGenerator, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown terrain generator %q (have %v)", name, GeneratorNames())
	}
	return f(seed), nil
}

// GeneratorNames lists the registered generator names in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
