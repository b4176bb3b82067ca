package plot

import (
	"math"
	"testing"

	"github.com/magtools/magplot/internal/field"
)

func TestMagnetizationFiltersZeroSites(t *testing.T) {
	f := field.New(
		[]field.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[]field.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}},
	)

	p, err := Magnetization(f)
	if err != nil {
		t.Fatal(err)
	}
	if p.Sites() != 1 {
		t.Fatalf("expected 1 rendered site, got %d", p.Sites())
	}
	if p.X[0] != 1 {
		t.Errorf("filter kept wrong site: x=%g", p.X[0])
	}
}

func TestMagnetizationColorScale(t *testing.T) {
	f := field.New(
		[]field.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[]field.Vec3{{0, 0, 1}, {0, 0, 3}, {0, 0, 5}},
	)

	p, err := Magnetization(f)
	if err != nil {
		t.Fatal(err)
	}

	// color = 2*Mz/(5-1)
	want := []float64{0.5, 1.5, 2.5}
	for i, w := range want {
		if math.Abs(p.C[i]-w) > 1e-12 {
			t.Errorf("color[%d] = %g, want %g", i, p.C[i], w)
		}
	}
	if p.CMin != 0.5 || p.CMax != 2.5 {
		t.Errorf("scale [%g, %g], want [0.5, 2.5]", p.CMin, p.CMax)
	}
}

func TestMagnetizationConstantMz(t *testing.T) {
	// max(Mz) == min(Mz): the scale is degenerate. The guarded policy
	// emits a uniform zero color rather than non-finite values.
	f := field.New(
		[]field.Vec3{{0, 0, 0}, {1, 0, 0}},
		[]field.Vec3{{1, 0, 2}, {0, 1, 2}},
	)

	p, err := Magnetization(f)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range p.C {
		if c != 0 {
			t.Errorf("color[%d] = %g, want 0", i, c)
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("color[%d] is non-finite", i)
		}
	}
	if got := p.Normalize(p.C[0]); got != 0.5 {
		t.Errorf("degenerate scale should normalize to midpoint, got %g", got)
	}
}

func TestMagnetizationUnitArrows(t *testing.T) {
	f := field.New(
		[]field.Vec3{{0, 0, 0}, {1, 0, 0}},
		[]field.Vec3{{3, 4, 0}, {0, 0, 7}},
	)

	p, err := Magnetization(f)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(p.U[0]-0.6) > 1e-12 || math.Abs(p.V[0]-0.8) > 1e-12 {
		t.Errorf("arrow not normalized: (%g, %g)", p.U[0], p.V[0])
	}
	// purely out-of-plane: no in-plane direction
	if p.U[1] != 0 || p.V[1] != 0 {
		t.Errorf("out-of-plane site should have zero arrow, got (%g, %g)", p.U[1], p.V[1])
	}
}

func TestMagnetizationAllZero(t *testing.T) {
	f := field.New(
		[]field.Vec3{{0, 0, 0}},
		[]field.Vec3{{0, 0, 0}},
	)
	if _, err := Magnetization(f); err != ErrNoSites {
		t.Errorf("expected ErrNoSites, got %v", err)
	}
}

func TestNormalizeClamps(t *testing.T) {
	p := &Plot{CMin: -1, CMax: 1}

	tests := []struct {
		c, want float64
	}{
		{-1, 0},
		{0, 0.5},
		{1, 1},
		{-5, 0},
		{5, 1},
	}
	for _, tt := range tests {
		if got := p.Normalize(tt.c); got != tt.want {
			t.Errorf("Normalize(%g) = %g, want %g", tt.c, got, tt.want)
		}
	}
}
