package viz

import (
	"math"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

// headingRayLength is the heading indicator length in world units.
const headingRayLength = 15.0

// Paint renders one playback frame onto the canvas: grid, trail up to the
// current frame, markers and the robot itself, all through the snapshot's
// view transform. The canvas is cleared first.
func Paint(c *Canvas, path *kinematics.Path, snap playback.Snapshot, cfg *config.Config) {
	c.Clear()
	view := snap.View

	if cfg.Display.ShowGrid {
		paintGrid(c, view, cfg.Display.GridSpacing)
	}

	if cfg.Display.ShowPath {
		paintTrail(c, path, snap.Index, view)
	}

	if cfg.Display.ShowTurns {
		for _, t := range visibleTurns(path, snap.Index) {
			x, y := project(view, t)
			c.Circle(x, y, 2)
		}
	}

	if cfg.Display.ShowOrigin {
		x, y := project(view, kinematics.Point{})
		c.Circle(x, y, 3)
	}

	if cfg.Display.ShowInitial {
		x, y := project(view, path.Initial.Position())
		c.Circle(x, y, 2)
	}

	s := snap.Sample
	if cfg.Display.ShowAxle {
		half := cfg.Robot.AxleTrack / 2
		rx, ry := math.Cos(s.Heading), -math.Sin(s.Heading)
		left := kinematics.Point{X: s.Axle.X - half*rx, Y: s.Axle.Y - half*ry}
		right := kinematics.Point{X: s.Axle.X + half*rx, Y: s.Axle.Y + half*ry}
		lx, ly := project(view, left)
		qx, qy := project(view, right)
		ax, ay := project(view, s.Axle)
		c.Line(lx, ly, qx, qy)
		c.Marker(lx, ly)
		c.Marker(qx, qy)
		c.Marker(ax, ay)
	}

	px, py := project(view, s.Position())
	c.Marker(px, py)

	if cfg.Display.ShowHeading {
		tip := kinematics.Point{
			X: s.X + headingRayLength*math.Sin(s.Heading),
			Y: s.Y + headingRayLength*math.Cos(s.Heading),
		}
		tx, ty := project(view, tip)
		c.Line(px, py, tx, ty)
	}
}

// visibleTurns returns the turn markers opened up to and including frame.
func visibleTurns(path *kinematics.Path, frame int) []kinematics.Point {
	n := 0
	for i := 0; i <= frame && i < len(path.Samples); i++ {
		if path.Samples[i].Turn {
			n++
		}
	}
	if n > len(path.Turns) {
		n = len(path.Turns)
	}
	return path.Turns[:n]
}

func paintTrail(c *Canvas, path *kinematics.Path, frame int, view playback.Viewport) {
	if path.Len() == 0 {
		return
	}
	x0, y0 := project(view, path.Initial.Position())
	for i := 0; i <= frame && i < len(path.Samples); i++ {
		x1, y1 := project(view, path.Samples[i].Position())
		c.Line(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

func paintGrid(c *Canvas, view playback.Viewport, spacing float64) {
	if spacing <= 0 {
		return
	}
	topLeft := view.ScreenToWorld(0, 0)
	bottomRight := view.ScreenToWorld(view.Width, view.Height)

	for gx := math.Floor(topLeft.X/spacing) * spacing; gx <= bottomRight.X; gx += spacing {
		sx, _ := view.WorldToScreen(kinematics.Point{X: gx})
		c.Line(int(math.Round(sx)), 0, int(math.Round(sx)), int(view.Height))
	}
	for gy := math.Floor(bottomRight.Y/spacing) * spacing; gy <= topLeft.Y; gy += spacing {
		_, sy := view.WorldToScreen(kinematics.Point{Y: gy})
		c.Line(0, int(math.Round(sy)), int(view.Width), int(math.Round(sy)))
	}
}

func project(view playback.Viewport, p kinematics.Point) (int, int) {
	sx, sy := view.WorldToScreen(p)
	return int(math.Round(sx)), int(math.Round(sy))
}
