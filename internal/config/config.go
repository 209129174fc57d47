package config

import (
	"flag"
	"fmt"

	"terrain-erosion/internal/erosion"
)

// Config is the full set of command-line options for an erosion run.
type Config struct {
	Terrain TerrainSettings

	Droplets int
	Lifetime int
	Batch    int

	InertiaFactor          float64
	SedimentCapacityFactor float64
	MinSedimentCapacity    float64
	ErosionRate            float64
	DepositionRate         float64
	EvaporationRate        float64
	Gravity                float64
	InitialWaterAmount     float64
	InitialSpeed           float64
	ErosionRadius          int

	Out   string
	Scale int
	Trail string
}

// Default returns a Config populated with the stock erosion tuning.
func Default() *Config {
	p := erosion.DefaultParameters()
	return &Config{
		Terrain:  defaultTerrainSettings(),
		Droplets: 40000,
		Lifetime: 30,
		Batch:    1000,

		InertiaFactor:          float64(p.InertiaFactor),
		SedimentCapacityFactor: float64(p.SedimentCapacityFactor),
		MinSedimentCapacity:    float64(p.MinSedimentCapacity),
		ErosionRate:            float64(p.ErosionRate),
		DepositionRate:         float64(p.DepositionRate),
		EvaporationRate:        float64(p.EvaporationRate),
		Gravity:                float64(p.Gravity),
		InitialWaterAmount:     float64(p.InitialWaterAmount),
		InitialSpeed:           float64(p.InitialSpeed),
		ErosionRadius:          p.ErosionRadius,

		Out:   "heightmap.png",
		Scale: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Terrain.bind(fs)

	fs.IntVar(&c.Droplets, "droplets", c.Droplets, "total droplets to simulate")
	fs.IntVar(&c.Lifetime, "lifetime", c.Lifetime, "maximum steps per droplet")
	fs.IntVar(&c.Batch, "batch", c.Batch, "droplets per progress report")

	fs.Float64Var(&c.InertiaFactor, "inertia", c.InertiaFactor, "how much a droplet keeps its previous direction [0,1]")
	fs.Float64Var(&c.SedimentCapacityFactor, "capacity", c.SedimentCapacityFactor, "sediment capacity multiplier")
	fs.Float64Var(&c.MinSedimentCapacity, "min-capacity", c.MinSedimentCapacity, "sediment capacity floor")
	fs.Float64Var(&c.ErosionRate, "erosion-rate", c.ErosionRate, "fraction of free capacity eroded per step [0,1]")
	fs.Float64Var(&c.DepositionRate, "deposition-rate", c.DepositionRate, "fraction of surplus sediment deposited per step [0,1]")
	fs.Float64Var(&c.EvaporationRate, "evaporation", c.EvaporationRate, "fraction of water evaporated per step [0,1]")
	fs.Float64Var(&c.Gravity, "gravity", c.Gravity, "acceleration gained per unit of descent")
	fs.Float64Var(&c.InitialWaterAmount, "water", c.InitialWaterAmount, "initial droplet water")
	fs.Float64Var(&c.InitialSpeed, "speed", c.InitialSpeed, "initial droplet speed")
	fs.IntVar(&c.ErosionRadius, "radius", c.ErosionRadius, "erosion brush radius in cells")

	fs.StringVar(&c.Out, "out", c.Out, "heightmap PNG output path (empty to skip)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "upscale factor for the PNG preview")
	fs.StringVar(&c.Trail, "trail", c.Trail, "droplet trail CSV output path (empty to skip)")
}

// ErosionParameters converts the flag values into simulator tuning.
func (c *Config) ErosionParameters() erosion.Parameters {
	return erosion.Parameters{
		InertiaFactor:          float32(c.InertiaFactor),
		SedimentCapacityFactor: float32(c.SedimentCapacityFactor),
		MinSedimentCapacity:    float32(c.MinSedimentCapacity),
		ErosionRate:            float32(c.ErosionRate),
		DepositionRate:         float32(c.DepositionRate),
		EvaporationRate:        float32(c.EvaporationRate),
		Gravity:                float32(c.Gravity),
		InitialWaterAmount:     float32(c.InitialWaterAmount),
		InitialSpeed:           float32(c.InitialSpeed),
		ErosionRadius:          c.ErosionRadius,
	}
}

// Validate rejects configurations the tool cannot run.
func (c *Config) Validate() error {
	if err := c.Terrain.validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	switch {
	case c.Droplets < 0:
		return fmt.Errorf("droplets %d is negative", c.Droplets)
	case c.Lifetime < 1:
		return fmt.Errorf("lifetime %d must be at least 1", c.Lifetime)
	case c.Batch < 1:
		return fmt.Errorf("batch %d must be at least 1", c.Batch)
	case c.Scale < 1:
		return fmt.Errorf("scale %d must be at least 1", c.Scale)
	}
	if err := c.ErosionParameters().Validate(); err != nil {
		return fmt.Errorf("erosion: %w", err)
	}
	return nil
}
