package erosion

import (
	"fmt"
	"math"

	"terrain-erosion/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// minWater ends a droplet once evaporation leaves it with this much water or less.
const minWater = 0.1

// Droplet is a single water parcel. It lives for one run of the step loop.
type Droplet struct {
	Pos      mgl32.Vec2 // world X, world Z
	Dir      mgl32.Vec2
	Speed    float32
	Water    float32
	Sediment float32
	Lifetime int
}

func newDroplet(pos mgl32.Vec2, p Parameters, lifetime int) Droplet {
	return Droplet{
		Pos:      pos,
		Speed:    p.InitialSpeed,
		Water:    p.InitialWaterAmount,
		Lifetime: lifetime,
	}
}

// stepOutcome records what one step did to the droplet and the terrain.
type stepOutcome struct {
	alive       bool
	deltaHeight float32
	eroded      float32 // removed from the terrain into the droplet
	deposited   float32 // moved from the droplet onto the terrain
	discarded   float32 // released by the droplet outside the deposit area
}

// step advances d by one unit along the downhill flow and transfers sediment
// between it and the grid.
func (e *Eroder) step(grid *terrain.HeightGrid, d *Droplet) stepOutcome {
	p := e.params
	spacing := grid.Spacing()
	width, depth := grid.Width(), grid.Depth()

	before := SampleHeightAndGradient(grid, d.Pos[0], d.Pos[1])
	originalHeight := before.Height

	dir := d.Dir.Mul(p.InertiaFactor).Sub(before.Gradient.Mul(1 - p.InertiaFactor))
	if l := dir.Len(); l != 0 {
		dir = dir.Mul(1 / l)
	}
	d.Dir = dir
	d.Pos = d.Pos.Add(dir)

	e.trail.append(mgl32.Vec4{d.Pos[0], originalHeight, d.Pos[1], float32(d.Lifetime)})

	d.Lifetime--
	if d.Lifetime <= 0 || d.Water <= minWater {
		return stepOutcome{}
	}
	if d.Pos[0] < 0 || d.Pos[0] >= float32(width)*spacing || d.Pos[1] < 0 || d.Pos[1] >= float32(depth)*spacing {
		return stepOutcome{}
	}

	out := stepOutcome{alive: true}
	newHeight := SampleHeightAndGradient(grid, d.Pos[0], d.Pos[1]).Height
	deltaHeight := newHeight - originalHeight
	out.deltaHeight = deltaHeight

	// Capacity only grows while moving downhill.
	capacity := max(-deltaHeight*d.Speed*d.Water*p.SedimentCapacityFactor, p.MinSedimentCapacity)

	if d.Sediment > capacity || deltaHeight > 0 {
		var amount float32
		if deltaHeight > 0 {
			amount = min(deltaHeight, d.Sediment) * p.DepositionRate
		} else {
			amount = (d.Sediment - capacity) * p.DepositionRate
		}
		amount = min(max(amount, 0), d.Sediment)
		d.Sediment -= amount
		if e.depositBilinear(grid, d.Pos, amount) {
			out.deposited = amount
		} else {
			out.discarded = amount
		}
	} else {
		// Never dig deeper than the drop just taken.
		amount := min((capacity-d.Sediment)*p.ErosionRate, -deltaHeight)
		out.eroded = e.erodeBrush(grid, d, amount)
	}

	d.Speed = float32(math.Sqrt(math.Max(0, float64(d.Speed*d.Speed+(-deltaHeight)*p.Gravity))))
	d.Water *= 1 - p.EvaporationRate
	return out
}

// depositBilinear spreads amount over the four corners of the cell under pos.
// Cells on the last row or column do not receive deposits; it reports false
// when the sediment could not be placed.
func (e *Eroder) depositBilinear(grid *terrain.HeightGrid, pos mgl32.Vec2, amount float32) bool {
	gx := pos[0] / grid.Spacing()
	gz := pos[1] / grid.Spacing()
	nx, nz := int(gx), int(gz)
	if nx < 0 || nx >= grid.Width()-1 || nz < 0 || nz >= grid.Depth()-1 {
		return false
	}
	ox := gx - float32(nx)
	oz := gz - float32(nz)

	nw := grid.Index(nx, nz)
	ne := nw + 1
	sw := nw + grid.Width()
	se := sw + 1
	grid.AddHeight(nw, amount*(1-ox)*(1-oz))
	grid.AddHeight(ne, amount*ox*(1-oz))
	grid.AddHeight(sw, amount*(1-ox)*oz)
	grid.AddHeight(se, amount*ox*oz)
	return true
}

// erodeBrush removes up to amount from the cells around the droplet, moving it
// into the droplet's sediment. It returns what was actually removed.
func (e *Eroder) erodeBrush(grid *terrain.HeightGrid, d *Droplet, amount float32) float32 {
	cx := clampInt(int(d.Pos[0]/grid.Spacing()), 0, grid.Width()-1)
	cz := clampInt(int(d.Pos[1]/grid.Spacing()), 0, grid.Depth()-1)
	indices, weights, ok := e.brush.Entry(grid.Index(cx, cz))
	if !ok {
		if debugAsserts {
			panic(fmt.Sprintf("erosion: brush has %d cells, grid is %dx%d", e.brush.Len(), grid.Width(), grid.Depth()))
		}
		return 0
	}
	var removed float32
	for i, idx := range indices {
		actual := min(grid.Height(idx), amount*weights[i])
		grid.AddHeight(idx, -actual)
		d.Sediment += actual
		removed += actual
	}
	return removed
}
