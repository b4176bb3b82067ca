package gui

import "math"

// viewport is the screen-space rectangle an Axes draws into, in pixels
// with the origin at the top left.
type viewport struct {
	x, y, w, h float64
}

// dataRange is an inclusive axis interval in data coordinates.
type dataRange struct {
	min, max float64
}

func (r *dataRange) extend(v float64) {
	if v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
}

// padded widens the range by frac on both ends so markers at the edge
// are not clipped by the axes frame. A zero-span range is widened to a
// unit interval around its value.
func (r dataRange) padded(frac float64) dataRange {
	span := r.max - r.min
	if span == 0 {
		return dataRange{r.min - 0.5, r.max + 0.5}
	}
	return dataRange{r.min - span*frac, r.max + span*frac}
}

// project maps v from the range onto [lo, hi] screen pixels.
func (r dataRange) project(v, lo, hi float64) float64 {
	span := r.max - r.min
	if span == 0 {
		return (lo + hi) / 2
	}
	return lo + (v-r.min)/span*(hi-lo)
}

// ticks places up to n round-numbered tick values inside the range,
// stepping by 1, 2 or 5 times a power of ten.
func ticks(r dataRange, n int) []float64 {
	span := r.max - r.min
	if span <= 0 || n < 2 {
		return []float64{r.min}
	}

	raw := span / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag

	var step float64
	switch {
	case norm <= 1:
		step = mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	var out []float64
	for v := math.Ceil(r.min/step) * step; v <= r.max+step*1e-9; v += step {
		// snap values like 0.30000000000000004 back onto the grid
		out = append(out, math.Round(v/step)*step)
	}
	return out
}
