package erosion

import (
	"math"

	"terrain-erosion/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightAndGradient is the bilinear height under a world position and the
// gradient of ascent across its cell.
type HeightAndGradient struct {
	Height   float32
	Gradient mgl32.Vec2 // X along world X, Y along world Z
}

// SampleHeightAndGradient interpolates the grid at world (x, z). Corners
// falling outside the grid clamp to the nearest edge row or column.
func SampleHeightAndGradient(grid *terrain.HeightGrid, worldX, worldZ float32) HeightAndGradient {
	gx := worldX / grid.Spacing()
	gz := worldZ / grid.Spacing()

	cx := int(math.Floor(float64(gx)))
	cz := int(math.Floor(float64(gz)))

	// (0,0) is the NW corner, (1,1) the SE corner
	ox := gx - float32(cx)
	oz := gz - float32(cz)

	w, d := grid.Width(), grid.Depth()
	x0 := clampInt(cx, 0, w-1)
	z0 := clampInt(cz, 0, d-1)
	x1 := clampInt(cx+1, 0, w-1)
	z1 := clampInt(cz+1, 0, d-1)

	hNW := grid.HeightAt(x0, z0)
	hNE := grid.HeightAt(x1, z0)
	hSW := grid.HeightAt(x0, z1)
	hSE := grid.HeightAt(x1, z1)

	var r HeightAndGradient
	r.Gradient[0] = (hNE-hNW)*(1-oz) + (hSE-hSW)*oz
	r.Gradient[1] = (hSW-hNW)*(1-ox) + (hSE-hNE)*ox

	north := hNW*(1-ox) + hNE*ox
	south := hSW*(1-ox) + hSE*ox
	r.Height = north*(1-oz) + south*oz
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
