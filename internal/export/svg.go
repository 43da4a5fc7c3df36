// Package export writes one-shot artifacts of a computed path: an SVG
// snapshot of the rendered canvas, CSV/JSON sample tables, and a PNG chart.
// Nothing here is a run store; every writer produces a single file or
// stream from the in-memory path.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
	"github.com/robolab/ddrive/internal/viz"
)

// braille dot bit layout, matching the canvas cells
var svgDotBits = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasSVG renders a Braille canvas as an SVG dot field. scale is the
// pixel pitch of one canvas sub-pixel.
func CanvasSVG(c *viz.Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	w := float64(c.PixelWidth()) * scale
	h := float64(c.PixelHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#474747"/>
<g fill="#c8c896">
`, w, h, w, h))

	dotRadius := scale * 0.4
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			pattern := c.CellBits(col, row)
			if pattern == 0 {
				continue
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&svgDotBits[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG paints the full path onto an offscreen canvas, framed to its
// bounding box, and writes the SVG to file.
func WriteSVG(file string, path *kinematics.Path, cfg *config.Config) error {
	canvas := viz.NewCanvas(160, 48)

	opts := cfg.PlaybackOptions()
	opts.Width = float64(canvas.PixelWidth())
	opts.Height = float64(canvas.PixelHeight())
	ctrl := playback.NewController(path, opts)
	ctrl.Apply(playback.EvResetView)
	for range path.Samples {
		ctrl.Apply(playback.EvStepForward)
	}

	viz.Paint(canvas, path, ctrl.Frame(), cfg)
	return os.WriteFile(file, []byte(CanvasSVG(canvas, 4)), 0644)
}
