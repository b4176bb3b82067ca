// Package plot builds the geometry and color data for a magnetization
// figure: scatter points, quiver directions and the shared color scale.
// It is pure data manipulation; drawing happens in internal/gui.
package plot

import (
	"errors"
	"math"

	"github.com/magtools/magplot/internal/field"
)

// ErrNoSites indicates that every site in the field is fully
// demagnetized, leaving nothing to draw.
var ErrNoSites = errors.New("plot: no magnetized sites to draw")

// Plot holds one scatter+quiver layer, ready for drawing. All slices are
// index-aligned per site.
type Plot struct {
	X, Y []float64 // site positions, XY projection
	U, V []float64 // unit in-plane magnetization direction
	C    []float64 // color scalar, 2*Mz normalized by the Mz range

	// CMin and CMax bound the color scale shared by the scatter, the
	// quiver and the colorbar.
	CMin, CMax float64
}

// Sites returns the number of drawn sites.
func (p *Plot) Sites() int {
	return len(p.X)
}

// Magnetization prepares a plot layer from a loaded field.
//
// Fully demagnetized sites are dropped. The Z position is discarded: the
// figure is a 2D projection. The color scalar per site is
//
//	c = 2*Mz / (max(Mz) - min(Mz))
//
// mapping the observed out-of-plane range onto a symmetric scale. When
// every remaining Mz is equal the denominator vanishes; rather than
// emitting non-finite values the scalar collapses to a uniform zero.
func Magnetization(f *field.Field) (*Plot, error) {
	m := f.Magnetized()
	n := m.Sites()
	if n == 0 {
		return nil, ErrNoSites
	}

	p := &Plot{
		X: make([]float64, n),
		Y: make([]float64, n),
		U: make([]float64, n),
		V: make([]float64, n),
		C: make([]float64, n),
	}

	mzMin, mzMax := m.MzRange()
	span := mzMax - mzMin

	for i := 0; i < n; i++ {
		p.X[i] = m.Pos[i][0]
		p.Y[i] = m.Pos[i][1]

		mx, my, mz := m.Mag[i][0], m.Mag[i][1], m.Mag[i][2]

		// Uniform arrow convention: direction only, magnitude
		// discarded. Purely out-of-plane sites keep a zero arrow.
		if l := math.Hypot(mx, my); l > 0 {
			p.U[i] = mx / l
			p.V[i] = my / l
		}

		if span > 0 {
			p.C[i] = 2 * mz / span
		}
	}

	if span > 0 {
		p.CMin = 2 * mzMin / span
		p.CMax = 2 * mzMax / span
	}

	return p, nil
}

// Normalize maps a color scalar onto [0, 1] within the plot's scale.
// A degenerate scale pins every site to the midpoint.
func (p *Plot) Normalize(c float64) float64 {
	span := p.CMax - p.CMin
	if span == 0 {
		return 0.5
	}
	t := (c - p.CMin) / span
	return math.Min(1, math.Max(0, t))
}
