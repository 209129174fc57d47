package terrain

import "testing"

func TestNewHeightGridLatticePositions(t *testing.T) {
	g := NewHeightGrid(4, 3, 2.5)
	if g.Len() != 12 {
		t.Fatalf("expected 12 samples, got %d", g.Len())
	}
	for z := 0; z < 3; z++ {
		for x := 0; x < 4; x++ {
			p := g.Position(g.Index(x, z))
			if p[0] != float32(x)*2.5 || p[2] != float32(z)*2.5 || p[1] != 0 {
				t.Errorf("sample (%d,%d) = %v", x, z, p)
			}
		}
	}
}

func TestNewHeightGridClampsDimensions(t *testing.T) {
	g := NewHeightGrid(0, -3, 0)
	if g.Width() != 1 || g.Depth() != 1 || g.Spacing() != 1 {
		t.Errorf("expected 1x1 grid with spacing 1, got %dx%d spacing %f", g.Width(), g.Depth(), g.Spacing())
	}
}

func TestZeroValueGridIsEmpty(t *testing.T) {
	var g HeightGrid
	if g.Len() != 0 {
		t.Errorf("zero value grid should be empty, got %d samples", g.Len())
	}
	var nilGrid *HeightGrid
	if nilGrid.Len() != 0 {
		t.Errorf("nil grid should be empty")
	}
}

func TestHeightMutation(t *testing.T) {
	g := NewHeightGrid(3, 3, 1)
	i := g.Index(1, 2)
	g.SetHeight(i, 4)
	g.AddHeight(i, -1.5)
	if h := g.HeightAt(1, 2); h != 2.5 {
		t.Errorf("expected 2.5, got %f", h)
	}
	lo, hi := g.Bounds()
	if lo != 0 || hi != 2.5 {
		t.Errorf("bounds = (%f,%f), expected (0,2.5)", lo, hi)
	}
	if total := g.TotalHeight(); total != 2.5 {
		t.Errorf("total = %f, expected 2.5", total)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewHeightGrid(2, 2, 1)
	c := g.Clone()
	c.SetHeight(0, 9)
	if g.Height(0) != 0 {
		t.Errorf("clone shares storage with original")
	}
	if c.Width() != 2 || c.Depth() != 2 {
		t.Errorf("clone lost dimensions")
	}
}
