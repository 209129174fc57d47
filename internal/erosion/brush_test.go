package erosion

import (
	"math"
	"testing"
)

func TestBrushInteriorWeightsSumToOne(t *testing.T) {
	const w, d = 24, 18
	for _, r := range []int{1, 2, 3, 5} {
		b := NewBrush(w, d, r)
		for z := 0; z < d; z++ {
			for x := 0; x < w; x++ {
				sum := b.WeightSum(z*w + x)
				interior := x >= r && x < w-r && z >= r && z < d-r
				if interior && math.Abs(sum-1) > 1e-5 {
					t.Errorf("radius %d: interior cell (%d,%d) weight sum %f", r, x, z, sum)
				}
				if sum > 1+1e-5 {
					t.Errorf("radius %d: cell (%d,%d) weight sum %f exceeds 1", r, x, z, sum)
				}
			}
		}
	}
}

// TestBrushEdgesAreNotRenormalized verifies clipped cells keep their reduced weight
func TestBrushEdgesAreNotRenormalized(t *testing.T) {
	b := NewBrush(10, 10, 3)
	corner := b.WeightSum(0)
	edge := b.WeightSum(5)
	if corner >= edge || edge >= 1 {
		t.Errorf("expected corner < edge < 1, got corner=%f edge=%f", corner, edge)
	}
	idx, wts, ok := b.Entry(0)
	if !ok || len(idx) != len(wts) {
		t.Fatalf("corner entry malformed: ok=%v %d indices %d weights", ok, len(idx), len(wts))
	}
	center, _, _ := b.Entry(55)
	if len(idx) >= len(center) {
		t.Errorf("corner entry (%d) should be smaller than interior (%d)", len(idx), len(center))
	}
}

func TestBrushDiscIsStrict(t *testing.T) {
	// radius 2: offsets with dx^2+dz^2 < 4 are the 3x3 block plus none of the axis points at distance 2
	b := NewBrush(9, 9, 2)
	idx, _, _ := b.Entry(4*9 + 4)
	if len(idx) != 9 {
		t.Errorf("expected 9 cells in a radius-2 disc, got %d", len(idx))
	}
	for _, i := range idx {
		dx, dz := i%9-4, i/9-4
		if dx*dx+dz*dz >= 4 {
			t.Errorf("offset (%d,%d) lies outside the disc", dx, dz)
		}
	}
}

func TestBrushWeightsFallOffFromCenter(t *testing.T) {
	b := NewBrush(11, 11, 4)
	centerIdx := 5*11 + 5
	idx, wts, _ := b.Entry(centerIdx)
	var centerWeight float32
	for i, n := range idx {
		if n == centerIdx {
			centerWeight = wts[i]
		}
	}
	for i, n := range idx {
		if n != centerIdx && wts[i] >= centerWeight {
			t.Errorf("neighbor %d weight %f not below center weight %f", n, wts[i], centerWeight)
		}
	}
}

func TestBrushRadiusOne(t *testing.T) {
	b := NewBrush(3, 3, 1)
	idx, wts, ok := b.Entry(4)
	if !ok || len(idx) != 1 || idx[0] != 4 || wts[0] != 1 {
		t.Errorf("radius 1 brush should hit only the center with weight 1, got %v %v", idx, wts)
	}
}

func TestBrushEntryOutOfRange(t *testing.T) {
	b := NewBrush(4, 4, 2)
	if _, _, ok := b.Entry(-1); ok {
		t.Errorf("expected miss for index -1")
	}
	if _, _, ok := b.Entry(b.Len()); ok {
		t.Errorf("expected miss for index %d", b.Len())
	}
	if b.WeightSum(99) != 0 {
		t.Errorf("weight sum of a miss should be 0")
	}
}

func TestBrushMatches(t *testing.T) {
	var nilBrush *Brush
	if nilBrush.Matches(4, 4, 2) {
		t.Errorf("nil brush should never match")
	}
	b := NewBrush(4, 5, 2)
	if !b.Matches(4, 5, 2) {
		t.Errorf("brush should match its own dimensions")
	}
	if b.Matches(5, 4, 2) || b.Matches(4, 5, 3) {
		t.Errorf("brush matched different dimensions")
	}
}
