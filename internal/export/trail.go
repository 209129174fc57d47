package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

var trailHeader = []string{"x", "height", "z", "lifetime"}

// WriteTrailCSV writes droplet trail points, one per row, under a header.
func WriteTrailCSV(w io.Writer, points []mgl32.Vec4) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trailHeader); err != nil {
		return fmt.Errorf("trail: write header: %w", err)
	}
	row := make([]string, 4)
	for _, p := range points {
		for i := range row {
			row[i] = strconv.FormatFloat(float64(p[i]), 'g', -1, 32)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("trail: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("trail: flush: %w", err)
	}
	return nil
}
