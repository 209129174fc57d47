package export

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"testing"

	"terrain-erosion/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

func rampGrid() *terrain.HeightGrid {
	g := terrain.NewHeightGrid(4, 3, 1)
	for i := 0; i < g.Len(); i++ {
		g.SetHeight(i, float32(i))
	}
	return g
}

func TestHeightmapImageNormalizes(t *testing.T) {
	img := HeightmapImage(rampGrid())
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("image is %v", b)
	}
	if y := img.Gray16At(0, 0).Y; y != 0 {
		t.Errorf("lowest sample should be black, got %d", y)
	}
	if y := img.Gray16At(3, 2).Y; y != 0xFFFF {
		t.Errorf("highest sample should be white, got %d", y)
	}
	if a, b := img.Gray16At(1, 0).Y, img.Gray16At(0, 1).Y; a >= b {
		t.Errorf("expected row-major ramp, got %d >= %d", a, b)
	}
}

func TestHeightmapImageFlatGrid(t *testing.T) {
	img := HeightmapImage(terrain.NewHeightGrid(3, 3, 1))
	if y := img.Gray16At(1, 1).Y; y != 0 {
		t.Errorf("flat grid should render black, got %d", y)
	}
}

func TestWriteHeightmapPNGScales(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeightmapPNG(&buf, rampGrid(), 3); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("scaled image is %v, want 12x9", b)
	}
	if err := WriteHeightmapPNG(&buf, &terrain.HeightGrid{}, 1); err == nil {
		t.Errorf("expected error for empty grid")
	}
}

func TestWriteTrailCSV(t *testing.T) {
	var buf bytes.Buffer
	points := []mgl32.Vec4{{1.5, 2, 3, 30}, {2.5, 1.75, 3, 29}}
	if err := WriteTrailCSV(&buf, points); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "1.5" || rows[2][1] != "1.75" || rows[2][3] != "29" {
		t.Errorf("unexpected rows %v", rows[1:])
	}
}
