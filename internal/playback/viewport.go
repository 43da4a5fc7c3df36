package playback

import (
	"math"

	"github.com/robolab/ddrive/internal/kinematics"
)

// Viewport maps world coordinates onto a screen of Width x Height units.
// Center is the world point at the middle of the screen; Zoom is screen
// units per world unit. World +y maps to screen up.
type Viewport struct {
	Center kinematics.Point
	Zoom   float64
	Width  float64
	Height float64
}

// WorldToScreen projects a world point into screen coordinates with the
// origin at the top-left corner.
func (v Viewport) WorldToScreen(p kinematics.Point) (float64, float64) {
	sx := v.Width/2 + (p.X-v.Center.X)*v.Zoom
	sy := v.Height/2 - (p.Y-v.Center.Y)*v.Zoom
	return sx, sy
}

// ScreenToWorld inverts WorldToScreen.
func (v Viewport) ScreenToWorld(sx, sy float64) kinematics.Point {
	return kinematics.Point{
		X: v.Center.X + (sx-v.Width/2)/v.Zoom,
		Y: v.Center.Y - (sy-v.Height/2)/v.Zoom,
	}
}

// Visible reports whether a world point projects inside the screen.
func (v Viewport) Visible(p kinematics.Point) bool {
	sx, sy := v.WorldToScreen(p)
	return sx >= 0 && sx <= v.Width && sy >= 0 && sy <= v.Height
}

// pan shifts the center by a screen-space delta so panning feels uniform at
// any zoom level.
func (v *Viewport) pan(dx, dy float64) {
	v.Center.X += dx / v.Zoom
	v.Center.Y += dy / v.Zoom
}

// zoomBy scales the zoom factor and clamps it into [min, max]. The lower
// clamp keeps the projection from degenerating or inverting.
func (v *Viewport) zoomBy(factor, min, max float64) {
	v.Zoom = clampF(v.Zoom*factor, min, max)
}

// fit recenters and rescales so the box [min, max] is fully visible with
// the given relative margin, subject to the zoom limits.
func (v *Viewport) fit(min, max kinematics.Point, margin, zmin, zmax float64) {
	w := max.X - min.X
	h := max.Y - min.Y
	pad := math.Max(w, h) * margin
	w += pad
	h += pad

	zoom := zmax
	if w > 0 {
		zoom = math.Min(zoom, v.Width/w)
	}
	if h > 0 {
		zoom = math.Min(zoom, v.Height/h)
	}
	v.Zoom = clampF(zoom, zmin, zmax)
	v.Center = kinematics.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
