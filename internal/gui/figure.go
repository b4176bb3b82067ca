// Package gui displays magnetization plots in a raylib window: a
// scatter layer, a quiver overlay and a shared colorbar.
package gui

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/magtools/magplot/internal/config"
	"github.com/magtools/magplot/internal/plot"
)

const (
	fontSize   = 10
	titleSize  = 16
	tickLen    = 5
	barWidth   = 18
	numTicks   = 6
	windowFPS  = 30
	windowName = "magplot"
)

// Figure is a window-backed drawing target. It owns one or more Axes
// and is shown once; the window is torn down when Show returns.
type Figure struct {
	Width  int
	Height int
	Title  string
	Theme  config.Theme

	axes []*Axes
}

// Axes is a plotting region inside a Figure. Layers added to the same
// Axes share its data bounds, so plots can be overlaid.
type Axes struct {
	layers []*layer
	xr, yr dataRange
	view   viewport
}

type layer struct {
	plot   *plot.Plot
	cmap   *plot.Colormap
	marker float64
	arrow  float64
}

// NewFigure creates an empty figure sized and themed per the settings.
func NewFigure(s config.Settings) *Figure {
	return &Figure{
		Width:  s.Width,
		Height: s.Height,
		Title:  s.Filename,
		Theme:  config.GetTheme(s.Theme),
	}
}

// AddAxes appends a fresh plotting region to the figure.
func (f *Figure) AddAxes() *Axes {
	ax := &Axes{
		xr: dataRange{math.Inf(1), math.Inf(-1)},
		yr: dataRange{math.Inf(1), math.Inf(-1)},
	}
	f.axes = append(f.axes, ax)
	return ax
}

// Magnetization draws a prepared plot as scatter + quiver layers. When
// fig and ax are nil a new figure and axes are created; passing an
// existing pair overlays the plot on the same axes instead. The figure
// and axes are returned for further composition.
func Magnetization(p *plot.Plot, s config.Settings, fig *Figure, ax *Axes) (*Figure, *Axes) {
	if fig == nil {
		fig = NewFigure(s)
	}
	if ax == nil {
		ax = fig.AddAxes()
	}

	th := fig.Theme
	ax.layers = append(ax.layers, &layer{
		plot:   p,
		cmap:   plot.NewColormap(th.Low, th.Mid, th.High),
		marker: s.MarkerRadius,
		arrow:  s.ArrowLength,
	})
	for i := range p.X {
		ax.xr.extend(p.X[i])
		ax.yr.extend(p.Y[i])
	}

	return fig, ax
}

// TightLayout sizes each axes viewport to the window, leaving just
// enough margin for tick labels, the title and the colorbar.
func (f *Figure) TightLayout() {
	left := 64.0
	right := float64(barWidth) + 72
	top := 40.0
	bottom := 42.0

	// axes stack vertically when there is more than one
	n := len(f.axes)
	if n == 0 {
		return
	}
	per := (float64(f.Height) - top - bottom) / float64(n)
	for i, ax := range f.axes {
		ax.view = viewport{
			x: left,
			y: top + per*float64(i),
			w: float64(f.Width) - left - right,
			h: per - 8,
		}
	}
}

// Show opens the window and blocks until it is closed (window close
// button, ESC or Q). The window is a display-only surface; the figure
// content is static.
func (f *Figure) Show() {
	if len(f.axes) > 0 && f.axes[0].view.w == 0 {
		f.TightLayout()
	}

	rl.InitWindow(int32(f.Width), int32(f.Height), windowName)
	defer rl.CloseWindow()
	rl.SetTargetFPS(windowFPS)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(hexColor(f.Theme.Background))
		f.draw()
		rl.EndDrawing()
	}
}

func (f *Figure) draw() {
	rl.DrawText(f.Title, 14, 12, titleSize, hexColor(f.Theme.Text))
	for _, ax := range f.axes {
		ax.draw(f.Theme)
	}
}

func (ax *Axes) draw(th config.Theme) {
	if len(ax.layers) == 0 {
		return
	}

	axCol := hexColor(th.Axes)
	txtCol := hexColor(th.Text)
	gridCol := hexColor(th.Grid)

	xr := ax.xr.padded(0.05)
	yr := ax.yr.padded(0.05)
	v := ax.view

	// frame, grid and tick labels
	rl.DrawRectangleLines(int32(v.x), int32(v.y), int32(v.w), int32(v.h), axCol)
	for _, t := range ticks(xr, numTicks) {
		sx := xr.project(t, v.x, v.x+v.w)
		rl.DrawLineEx(
			rl.NewVector2(float32(sx), float32(v.y+v.h)),
			rl.NewVector2(float32(sx), float32(v.y+v.h+tickLen)),
			1, axCol)
		rl.DrawLineEx(
			rl.NewVector2(float32(sx), float32(v.y)),
			rl.NewVector2(float32(sx), float32(v.y+v.h)),
			1, gridCol)
		label := formatTick(t)
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(sx)-w/2, int32(v.y+v.h)+tickLen+3, fontSize, txtCol)
	}
	for _, t := range ticks(yr, numTicks) {
		sy := yr.project(t, v.y+v.h, v.y) // screen y grows downward
		rl.DrawLineEx(
			rl.NewVector2(float32(v.x-tickLen), float32(sy)),
			rl.NewVector2(float32(v.x), float32(sy)),
			1, axCol)
		rl.DrawLineEx(
			rl.NewVector2(float32(v.x), float32(sy)),
			rl.NewVector2(float32(v.x+v.w), float32(sy)),
			1, gridCol)
		label := formatTick(t)
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(v.x-tickLen)-w-4, int32(sy)-fontSize/2, fontSize, txtCol)
	}

	for _, l := range ax.layers {
		l.drawScatter(xr, yr, v)
	}
	for _, l := range ax.layers {
		l.drawQuiver(xr, yr, v)
	}

	// colorbar keyed to the first layer's scale; overlays share it
	ax.layers[0].drawColorbar(v, axCol, txtCol)
}

func (l *layer) drawScatter(xr, yr dataRange, v viewport) {
	p := l.plot
	for i := range p.X {
		sx := xr.project(p.X[i], v.x, v.x+v.w)
		sy := yr.project(p.Y[i], v.y+v.h, v.y)
		r, g, b := l.cmap.RGBA(p.Normalize(p.C[i]))
		rl.DrawCircleV(rl.NewVector2(float32(sx), float32(sy)),
			float32(l.marker), rl.NewColor(r, g, b, 255))
	}
}

func (l *layer) drawQuiver(xr, yr dataRange, v viewport) {
	p := l.plot
	for i := range p.X {
		if p.U[i] == 0 && p.V[i] == 0 {
			continue
		}
		sx := xr.project(p.X[i], v.x, v.x+v.w)
		sy := yr.project(p.Y[i], v.y+v.h, v.y)
		r, g, b := l.cmap.RGBA(p.Normalize(p.C[i]))
		drawArrow(sx, sy, p.U[i], -p.V[i], l.arrow, rl.NewColor(r, g, b, 255))
	}
}

// drawArrow draws a uniform-length arrow from (x, y) along the unit
// direction (u, v) in screen coordinates.
func drawArrow(x, y, u, v, length float64, col rl.Color) {
	tipX := x + u*length
	tipY := y + v*length

	from := rl.NewVector2(float32(x), float32(y))
	tip := rl.NewVector2(float32(tipX), float32(tipY))
	rl.DrawLineEx(from, tip, 1.2, col)

	// two barbs swept back 150 degrees from the shaft
	const barb = 0.35
	sin, cos := math.Sincos(150 * math.Pi / 180)
	bx := u*cos - v*sin
	by := u*sin + v*cos
	cx := u*cos + v*sin
	cy := -u*sin + v*cos
	rl.DrawLineEx(tip, rl.NewVector2(
		float32(tipX+bx*length*barb), float32(tipY+by*length*barb)), 1.2, col)
	rl.DrawLineEx(tip, rl.NewVector2(
		float32(tipX+cx*length*barb), float32(tipY+cy*length*barb)), 1.2, col)
}

func (l *layer) drawColorbar(v viewport, axCol, txtCol rl.Color) {
	p := l.plot
	x := int32(v.x + v.w + 24)
	y := int32(v.y)
	h := int32(v.h)

	for i := int32(0); i < h; i++ {
		t := 1 - float64(i)/float64(h-1)
		r, g, b := l.cmap.RGBA(t)
		rl.DrawRectangle(x, y+i, barWidth, 1, rl.NewColor(r, g, b, 255))
	}
	rl.DrawRectangleLines(x, y, barWidth, h, axCol)

	cr := dataRange{p.CMin, p.CMax}
	for _, t := range ticks(cr, numTicks) {
		sy := cr.project(t, float64(y+h), float64(y))
		rl.DrawLineEx(
			rl.NewVector2(float32(x+barWidth), float32(sy)),
			rl.NewVector2(float32(x+barWidth+tickLen), float32(sy)),
			1, axCol)
		rl.DrawText(formatTick(t), x+barWidth+tickLen+4, int32(sy)-fontSize/2, fontSize, txtCol)
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func hexColor(s string) rl.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return rl.White
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
