package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// HeightGrid is a rectangular heightfield stored row-major (index = z*width + x).
// Each sample keeps its lattice position in X/Z; only Y changes after creation.
type HeightGrid struct {
	width   int
	depth   int
	spacing float32
	samples []mgl32.Vec3
}

// NewHeightGrid allocates a flat grid with samples spacing apart.
func NewHeightGrid(width, depth int, spacing float32) *HeightGrid {
	if width <= 0 {
		width = 1
	}
	if depth <= 0 {
		depth = 1
	}
	if spacing <= 0 {
		spacing = 1
	}
	g := &HeightGrid{
		width:   width,
		depth:   depth,
		spacing: spacing,
		samples: make([]mgl32.Vec3, width*depth),
	}
	for z := range depth {
		for x := range width {
			g.samples[z*width+x] = mgl32.Vec3{float32(x) * spacing, 0, float32(z) * spacing}
		}
	}
	return g
}

func (g *HeightGrid) Width() int       { return g.width }
func (g *HeightGrid) Depth() int       { return g.depth }
func (g *HeightGrid) Spacing() float32 { return g.spacing }

// Len returns the number of samples. A zero-value grid has none.
func (g *HeightGrid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.samples)
}

// Index returns the linear index for lattice coordinates (x, z).
func (g *HeightGrid) Index(x, z int) int { return z*g.width + x }

// Height returns the elevation of sample i.
func (g *HeightGrid) Height(i int) float32 { return g.samples[i][1] }

// HeightAt returns the elevation at lattice coordinates (x, z).
func (g *HeightGrid) HeightAt(x, z int) float32 { return g.samples[z*g.width+x][1] }

// SetHeight overwrites the elevation of sample i.
func (g *HeightGrid) SetHeight(i int, y float32) { g.samples[i][1] = y }

// AddHeight adds dy to the elevation of sample i.
func (g *HeightGrid) AddHeight(i int, dy float32) { g.samples[i][1] += dy }

// Position returns the full (x, y, z) of sample i.
func (g *HeightGrid) Position(i int) mgl32.Vec3 { return g.samples[i] }

// Samples returns a copy of every sample, suitable for meshing.
func (g *HeightGrid) Samples() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(g.samples))
	copy(out, g.samples)
	return out
}

// Heights returns a copy of the elevations in grid order.
func (g *HeightGrid) Heights() []float32 {
	out := make([]float32, len(g.samples))
	for i, s := range g.samples {
		out[i] = s[1]
	}
	return out
}

// Bounds returns the lowest and highest elevation.
func (g *HeightGrid) Bounds() (lo, hi float32) {
	if len(g.samples) == 0 {
		return 0, 0
	}
	lo, hi = g.samples[0][1], g.samples[0][1]
	for _, s := range g.samples[1:] {
		lo = min(lo, s[1])
		hi = max(hi, s[1])
	}
	return lo, hi
}

// TotalHeight sums every elevation, accumulated in float64.
func (g *HeightGrid) TotalHeight() float64 {
	sum := 0.0
	for _, s := range g.samples {
		sum += float64(s[1])
	}
	return sum
}

// Clone returns an independent copy of the grid.
func (g *HeightGrid) Clone() *HeightGrid {
	c := *g
	c.samples = g.Samples()
	return &c
}
