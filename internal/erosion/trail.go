package erosion

import "github.com/go-gl/mathgl/mgl32"

// trailRecorder accumulates droplet path samples as
// (worldX, heightAtStepStart, worldZ, remainingLifetime).
type trailRecorder struct {
	enabled bool
	points  []mgl32.Vec4
}

func (t *trailRecorder) append(p mgl32.Vec4) {
	if t.enabled {
		t.points = append(t.points, p)
	}
}

func (t *trailRecorder) snapshot() []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(t.points))
	copy(out, t.points)
	return out
}

func (t *trailRecorder) clear() { t.points = t.points[:0] }
