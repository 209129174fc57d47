package erosion

import "math"

// Brush is the precomputed area of influence: for each cell, the neighbor
// indices within the erosion radius and their weights. Weights come from one
// normalized disc pattern; cells near the edge keep only the in-grid part, so
// their weights sum to less than one.
type Brush struct {
	width, depth int
	radius       int
	indices      [][]int
	weights      [][]float32
}

type brushOffset struct {
	dx, dz int
	weight float32
}

// discPattern returns every offset strictly inside radius with linear falloff,
// normalized to sum to one.
func discPattern(radius int) []brushOffset {
	r := float64(radius)
	var pattern []brushOffset
	var raw []float64
	sum := 0.0
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dz*dz)
			if d2 >= r*r {
				continue
			}
			w := 1 - math.Sqrt(d2)/r
			pattern = append(pattern, brushOffset{dx: dx, dz: dz})
			raw = append(raw, w)
			sum += w
		}
	}
	for i := range pattern {
		pattern[i].weight = float32(raw[i] / sum)
	}
	return pattern
}

// NewBrush builds the area of influence for a width x depth grid.
func NewBrush(width, depth, radius int) *Brush {
	b := &Brush{
		width:   width,
		depth:   depth,
		radius:  radius,
		indices: make([][]int, width*depth),
		weights: make([][]float32, width*depth),
	}
	pattern := discPattern(radius)
	for z := range depth {
		for x := range width {
			center := z*width + x
			idx := make([]int, 0, len(pattern))
			wts := make([]float32, 0, len(pattern))
			for _, o := range pattern {
				nx, nz := x+o.dx, z+o.dz
				if nx < 0 || nx >= width || nz < 0 || nz >= depth {
					continue
				}
				idx = append(idx, nz*width+nx)
				wts = append(wts, o.weight)
			}
			b.indices[center] = idx
			b.weights[center] = wts
		}
	}
	return b
}

// Matches reports whether the brush was built for these dimensions and radius.
func (b *Brush) Matches(width, depth, radius int) bool {
	return b != nil && b.width == width && b.depth == depth && b.radius == radius
}

// Len returns the number of cells covered.
func (b *Brush) Len() int { return len(b.indices) }

// Entry returns the neighbors and weights for cell index. ok is false when the
// index lies outside the table.
func (b *Brush) Entry(index int) (indices []int, weights []float32, ok bool) {
	if index < 0 || index >= len(b.indices) {
		return nil, nil, false
	}
	return b.indices[index], b.weights[index], true
}

// WeightSum totals the weights at cell index.
func (b *Brush) WeightSum(index int) float64 {
	_, wts, ok := b.Entry(index)
	if !ok {
		return 0
	}
	sum := 0.0
	for _, w := range wts {
		sum += float64(w)
	}
	return sum
}
