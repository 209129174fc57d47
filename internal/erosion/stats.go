package erosion

import "fmt"

// Stats summarizes one erosion run. Totals are accumulated in float64.
//
// Sediment is accounted for exactly once: terrain change equals
// Deposited - Eroded, and Eroded equals Deposited + Discarded + Carried.
type Stats struct {
	Droplets  int
	Steps     int
	Eroded    float64 // removed from the terrain
	Deposited float64 // returned to the terrain
	Discarded float64 // released on the last row or column and lost
	Carried   float64 // still held by droplets when they ended
}

func (s *Stats) record(o stepOutcome) {
	s.Eroded += float64(o.eroded)
	s.Deposited += float64(o.deposited)
	s.Discarded += float64(o.discarded)
}

// Add accumulates another run's totals.
func (s *Stats) Add(o Stats) {
	s.Droplets += o.Droplets
	s.Steps += o.Steps
	s.Eroded += o.Eroded
	s.Deposited += o.Deposited
	s.Discarded += o.Discarded
	s.Carried += o.Carried
}

// TerrainDelta is the net change in total terrain height.
func (s Stats) TerrainDelta() float64 { return s.Deposited - s.Eroded }

func (s Stats) String() string {
	return fmt.Sprintf("droplets=%d steps=%d eroded=%.3f deposited=%.3f discarded=%.3f carried=%.3f",
		s.Droplets, s.Steps, s.Eroded, s.Deposited, s.Discarded, s.Carried)
}
