//go:build !erosiondebug

package erosion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-erosion/internal/terrain"
)

// TestBrushMissSkipsErosion verifies a brush built for another grid size is
// tolerated: the erosion step is skipped rather than indexing out of range.
func TestBrushMissSkipsErosion(t *testing.T) {
	g := terrain.NewHeightGrid(10, 10, 1)
	for i := 0; i < g.Len(); i++ {
		g.SetHeight(i, 5)
	}
	e := New()
	e.brush = NewBrush(2, 2, 1)
	d := Droplet{Pos: mgl32.Vec2{5.5, 5.5}}
	if removed := e.erodeBrush(g, &d, 1); removed != 0 {
		t.Errorf("expected no erosion on a brush miss, removed %f", removed)
	}
	if d.Sediment != 0 || g.TotalHeight() != 500 {
		t.Errorf("brush miss changed state: sediment %f total %f", d.Sediment, g.TotalHeight())
	}
}
