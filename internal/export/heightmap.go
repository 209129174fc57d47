package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"terrain-erosion/internal/terrain"

	"golang.org/x/image/draw"
)

// HeightmapImage renders the grid as 16-bit grayscale, black at the lowest
// sample and white at the highest. Row z of the grid is image row z.
func HeightmapImage(grid *terrain.HeightGrid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, grid.Width(), grid.Depth()))
	lo, hi := grid.Bounds()
	span := hi - lo
	for z := range grid.Depth() {
		for x := range grid.Width() {
			var v float32
			if span > 0 {
				v = (grid.HeightAt(x, z) - lo) / span
			}
			img.SetGray16(x, z, color.Gray16{Y: uint16(math.Round(float64(v) * math.MaxUint16))})
		}
	}
	return img
}

// WriteHeightmapPNG encodes the grid as a PNG, upscaled by scale with
// Catmull-Rom filtering when scale > 1.
func WriteHeightmapPNG(w io.Writer, grid *terrain.HeightGrid, scale int) error {
	if grid.Len() == 0 {
		return fmt.Errorf("heightmap: empty grid")
	}
	var img image.Image = HeightmapImage(grid)
	if scale > 1 {
		src := img.Bounds()
		dst := image.NewGray16(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("heightmap: encode png: %w", err)
	}
	return nil
}
