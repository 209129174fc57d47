package erosion

import (
	"context"
	"log"
	"math/rand/v2"

	"terrain-erosion/internal/profiling"
	"terrain-erosion/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// RandSource picks spawn cells. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Eroder runs droplet hydraulic erosion over a caller-owned heightfield.
// It is not safe for concurrent use; droplets share the grid and are
// simulated one after another.
type Eroder struct {
	params Parameters
	rng    RandSource
	logger *log.Logger

	brush *Brush
	trail trailRecorder
	stats Stats
}

// Option configures an Eroder.
type Option func(*Eroder)

// WithParameters replaces the default tuning.
func WithParameters(p Parameters) Option {
	return func(e *Eroder) { e.params = p }
}

// WithRand sets the spawn-cell source.
func WithRand(r RandSource) Option {
	return func(e *Eroder) { e.rng = r }
}

// WithSeed seeds the default PCG spawn-cell source.
func WithSeed(seed int64) Option {
	return func(e *Eroder) { e.rng = rand.New(rand.NewPCG(uint64(seed), 0)) }
}

// WithLogger enables progress logging. A nil logger keeps the Eroder silent.
func WithLogger(l *log.Logger) Option {
	return func(e *Eroder) { e.logger = l }
}

// WithTrail toggles trail recording. It is on by default.
func WithTrail(enabled bool) Option {
	return func(e *Eroder) { e.trail.enabled = enabled }
}

// New returns an Eroder with default parameters and a seed of zero.
func New(opts ...Option) *Eroder {
	e := &Eroder{
		params: DefaultParameters(),
		trail:  trailRecorder{enabled: true},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(0, 0))
	}
	return e
}

// Erode simulates numDroplets droplets, each for at most maxLifetime steps,
// mutating grid in place. An empty grid is left alone.
func (e *Eroder) Erode(grid *terrain.HeightGrid, numDroplets, maxLifetime int) {
	_ = e.ErodeContext(context.Background(), grid, numDroplets, maxLifetime)
}

// ErodeContext is Erode with cancellation. The context is only checked
// between droplets, so a cancelled run never leaves a droplet half applied.
func (e *Eroder) ErodeContext(ctx context.Context, grid *terrain.HeightGrid, numDroplets, maxLifetime int) error {
	e.stats = Stats{}
	if grid.Len() == 0 {
		return nil
	}
	defer profiling.Track("erosion.Erode")()

	e.ensureBrush(grid)

	width, depth := grid.Width(), grid.Depth()
	spacing := grid.Spacing()
	for range numDroplets {
		if err := ctx.Err(); err != nil {
			return err
		}
		x := e.rng.IntN(width)
		z := e.rng.IntN(depth)
		d := newDroplet(mgl32.Vec2{float32(x) * spacing, float32(z) * spacing}, e.params, maxLifetime)
		e.run(grid, &d, maxLifetime)
	}
	return nil
}

// run steps one droplet until it terminates.
func (e *Eroder) run(grid *terrain.HeightGrid, d *Droplet, maxLifetime int) {
	e.stats.Droplets++
	for range maxLifetime {
		out := e.step(grid, d)
		e.stats.Steps++
		e.stats.record(out)
		if !out.alive {
			break
		}
	}
	e.stats.Carried += float64(d.Sediment)
}

// ensureBrush rebuilds the area of influence when the grid size or radius changed.
func (e *Eroder) ensureBrush(grid *terrain.HeightGrid) {
	w, d, r := grid.Width(), grid.Depth(), e.params.ErosionRadius
	if e.brush.Matches(w, d, r) {
		return
	}
	stop := profiling.Track("erosion.NewBrush")
	e.brush = NewBrush(w, d, r)
	stop()
	if e.logger != nil {
		e.logger.Printf("erosion: rebuilt brush for %dx%d grid, radius %d", w, d, r)
	}
}

// Stats returns the statistics of the most recent run.
func (e *Eroder) Stats() Stats { return e.stats }

// TrailPoints returns every recorded path sample in order.
func (e *Eroder) TrailPoints() []mgl32.Vec4 { return e.trail.snapshot() }

// ClearTrailPoints drops all recorded path samples.
func (e *Eroder) ClearTrailPoints() { e.trail.clear() }

// Parameters returns the current tuning.
func (e *Eroder) Parameters() Parameters { return e.params }

// SetParameters replaces the whole tuning.
func (e *Eroder) SetParameters(p Parameters) { e.params = p }

func (e *Eroder) InertiaFactor() float32              { return e.params.InertiaFactor }
func (e *Eroder) SetInertiaFactor(v float32)          { e.params.InertiaFactor = v }
func (e *Eroder) SedimentCapacityFactor() float32     { return e.params.SedimentCapacityFactor }
func (e *Eroder) SetSedimentCapacityFactor(v float32) { e.params.SedimentCapacityFactor = v }
func (e *Eroder) MinSedimentCapacity() float32        { return e.params.MinSedimentCapacity }
func (e *Eroder) SetMinSedimentCapacity(v float32)    { e.params.MinSedimentCapacity = v }
func (e *Eroder) ErosionRate() float32                { return e.params.ErosionRate }
func (e *Eroder) SetErosionRate(v float32)            { e.params.ErosionRate = v }
func (e *Eroder) DepositionRate() float32             { return e.params.DepositionRate }
func (e *Eroder) SetDepositionRate(v float32)         { e.params.DepositionRate = v }
func (e *Eroder) EvaporationRate() float32            { return e.params.EvaporationRate }
func (e *Eroder) SetEvaporationRate(v float32)        { e.params.EvaporationRate = v }
func (e *Eroder) Gravity() float32                    { return e.params.Gravity }
func (e *Eroder) SetGravity(v float32)                { e.params.Gravity = v }
func (e *Eroder) InitialWaterAmount() float32         { return e.params.InitialWaterAmount }
func (e *Eroder) SetInitialWaterAmount(v float32)     { e.params.InitialWaterAmount = v }
func (e *Eroder) InitialSpeed() float32               { return e.params.InitialSpeed }
func (e *Eroder) SetInitialSpeed(v float32)           { e.params.InitialSpeed = v }
func (e *Eroder) ErosionRadius() int                  { return e.params.ErosionRadius }

// SetErosionRadius changes the brush radius; the brush is rebuilt on the next run.
func (e *Eroder) SetErosionRadius(r int) { e.params.ErosionRadius = r }
