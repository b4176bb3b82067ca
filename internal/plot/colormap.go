package plot

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Colormap is a diverging colormap: low endpoint through a neutral
// midpoint to a high endpoint, blended in Lab space so the perceived
// lightness ramps evenly.
type Colormap struct {
	low, mid, high colorful.Color
}

// NewColormap builds a colormap from three hex colors. Invalid hex
// strings fall back to a blue-white-red map.
func NewColormap(low, mid, high string) *Colormap {
	cm := &Colormap{
		low:  mustHex(low, "#3b4cc0"),
		mid:  mustHex(mid, "#f7f7f7"),
		high: mustHex(high, "#b40426"),
	}
	return cm
}

func mustHex(s, fallback string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}
	return c
}

// At maps t in [0, 1] to a color; t is clamped. 0.5 hits the neutral
// midpoint.
func (cm *Colormap) At(t float64) colorful.Color {
	switch {
	case t <= 0:
		return cm.low
	case t >= 1:
		return cm.high
	case t < 0.5:
		return cm.low.BlendLab(cm.mid, t*2).Clamped()
	default:
		return cm.mid.BlendLab(cm.high, (t-0.5)*2).Clamped()
	}
}

// RGBA returns the 8-bit channels of the color at t.
func (cm *Colormap) RGBA(t float64) (r, g, b uint8) {
	return cm.At(t).RGB255()
}
