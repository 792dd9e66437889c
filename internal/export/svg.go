package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/fibsphere/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one circle per dot, coloured
// by the layer that owns the dot's cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	cw, ch := canvas.Dots()
	width := float64(cw) * scale
	height := float64(ch) * scale

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, string(theme.Background))

	dotRadius := scale * 0.4

	byLayer := make(map[viz.Layer][]string)
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			l := canvas.Layers[y/4][x/2]
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			byLayer[l] = append(byLayer[l], fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`, cx, cy, dotRadius))
		}
	}

	// back to front so points and the origin stay on top
	for _, l := range []viz.Layer{viz.LayerNone, viz.LayerSphere, viz.LayerBox, viz.LayerRay, viz.LayerPoint, viz.LayerOrigin} {
		dots := byLayer[l]
		if len(dots) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "<g class=%q fill=%q>\n", l.String(), string(theme.LayerColor(l)))
		for _, d := range dots {
			sb.WriteString(d + "\n")
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes CanvasToSVG output to w.
func WriteSVG(w io.Writer, canvas *viz.Canvas, scale float64, theme viz.Theme) error {
	_, err := io.WriteString(w, CanvasToSVG(canvas, scale, theme))
	return err
}
