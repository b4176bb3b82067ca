// Package viz prints the terminal-side summary of a loaded field before
// the figure window opens.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/magtools/magplot/internal/field"
)

// Summary renders a styled overview of a loaded field: site counts, the
// out-of-plane range and a quick Mz-per-site preview graph.
func Summary(filename string, f *field.Field) string {
	var sb strings.Builder

	magnetized := f.Magnetized()
	dropped := f.Sites() - magnetized.Sites()

	sb.WriteString(Header.Render(filename) + "\n")
	sb.WriteString(fmt.Sprintf("%s %s\n",
		Label.Render("sites:"),
		Value.Render(fmt.Sprintf("%d", f.Sites()))))
	if dropped > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			Label.Render("demagnetized (hidden):"),
			Value.Render(fmt.Sprintf("%d", dropped))))
	}

	if magnetized.Sites() > 0 {
		min, max := magnetized.MzRange()
		sb.WriteString(fmt.Sprintf("%s %s\n",
			Label.Render("Mz range:"),
			Value.Render(fmt.Sprintf("[%.4g, %.4g]", min, max))))
		sb.WriteString("\n" + MzPreview(magnetized) + "\n")
	}

	return sb.String()
}

// MzPreview plots the out-of-plane component against site index. The
// graph is only a sanity check on the loaded data; the figure window is
// the real visualization.
func MzPreview(f *field.Field) string {
	data := make([]float64, f.Sites())
	for i, m := range f.Mag {
		data[i] = m[2]
	}

	// asciigraph cannot plot a single sample
	if len(data) < 2 {
		return ""
	}

	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("Mz vs site index"),
	)
}
