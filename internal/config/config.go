package config

const (
	// DefaultFilename is the input loaded when no --filename flag is
	// given; simulation runs drop their export next to the tool under
	// this name.
	DefaultFilename = "test"

	DefaultWidth  = 1000
	DefaultHeight = 720
	DefaultTheme  = "coolwarm"

	// DefaultMarkerRadius is the scatter marker radius in pixels;
	// markers are kept minimal so the quiver stays readable.
	DefaultMarkerRadius = 1.5

	// DefaultArrowLength is the uniform quiver arrow length in pixels.
	// Arrows encode direction only, never magnitude.
	DefaultArrowLength = 14.0
)

// Settings collects the figure parameters, passed explicitly from the
// CLI layer down to the renderer.
type Settings struct {
	Filename     string
	Width        int
	Height       int
	Theme        string
	MarkerRadius float64
	ArrowLength  float64
}

func Defaults() Settings {
	return Settings{
		Filename:     DefaultFilename,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Theme:        DefaultTheme,
		MarkerRadius: DefaultMarkerRadius,
		ArrowLength:  DefaultArrowLength,
	}
}
