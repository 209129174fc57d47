package erosion

import "fmt"

// Parameters tunes the droplet simulation. The core never validates them;
// Validate is offered to configuration layers that want range checks.
type Parameters struct {
	InertiaFactor          float32
	SedimentCapacityFactor float32
	MinSedimentCapacity    float32
	ErosionRate            float32
	DepositionRate         float32
	EvaporationRate        float32
	Gravity                float32
	InitialWaterAmount     float32
	InitialSpeed           float32
	ErosionRadius          int
}

// DefaultParameters returns the stock tuning.
func DefaultParameters() Parameters {
	return Parameters{
		InertiaFactor:          0.05,
		SedimentCapacityFactor: 4.0,
		MinSedimentCapacity:    0.01,
		ErosionRate:            0.2,
		DepositionRate:         0.1,
		EvaporationRate:        0.1,
		Gravity:                4.0,
		InitialWaterAmount:     1.0,
		InitialSpeed:           1.0,
		ErosionRadius:          3,
	}
}

// Validate reports the first parameter outside its physically meaningful range.
func (p Parameters) Validate() error {
	unit := []struct {
		name  string
		value float32
	}{
		{"inertia factor", p.InertiaFactor},
		{"erosion rate", p.ErosionRate},
		{"deposition rate", p.DepositionRate},
		{"evaporation rate", p.EvaporationRate},
	}
	for _, u := range unit {
		if u.value < 0 || u.value > 1 {
			return fmt.Errorf("%s %v outside [0,1]", u.name, u.value)
		}
	}
	switch {
	case p.SedimentCapacityFactor < 0:
		return fmt.Errorf("sediment capacity factor %v is negative", p.SedimentCapacityFactor)
	case p.MinSedimentCapacity < 0:
		return fmt.Errorf("min sediment capacity %v is negative", p.MinSedimentCapacity)
	case p.Gravity < 0:
		return fmt.Errorf("gravity %v is negative", p.Gravity)
	case p.InitialWaterAmount < 0:
		return fmt.Errorf("initial water amount %v is negative", p.InitialWaterAmount)
	case p.InitialSpeed < 0:
		return fmt.Errorf("initial speed %v is negative", p.InitialSpeed)
	case p.ErosionRadius < 1:
		return fmt.Errorf("erosion radius %d must be at least 1", p.ErosionRadius)
	}
	return nil
}
