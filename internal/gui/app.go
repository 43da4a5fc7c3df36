// Package gui is the raylib frontend for trajectory playback. Unlike the
// terminal viewer it receives real key-release events, so scrubbing runs
// while [ or ] is physically held.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/robolab/ddrive/internal/config"
	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

const (
	windowWidth  = 1280
	windowHeight = 800

	// a bracket press shorter than this is a single-frame step
	holdThreshold = 0.30
)

var (
	colBg      = rl.NewColor(71, 71, 71, 255)
	colPath    = rl.NewColor(200, 200, 150, 255)
	colTurn    = rl.NewColor(150, 130, 50, 255)
	colLeft    = rl.NewColor(255, 0, 0, 255)
	colRight   = rl.NewColor(0, 200, 0, 255)
	colRobot   = rl.NewColor(255, 240, 60, 255)
	colOrigin  = rl.NewColor(50, 50, 50, 255)
	colInitial = rl.NewColor(100, 90, 20, 255)
	colGrid    = rl.NewColor(100, 100, 100, 255)
	colText    = rl.NewColor(220, 220, 220, 255)
)

type app struct {
	path *kinematics.Path
	cfg  *config.Config
	ctrl *playback.Controller

	// bracket hold timers, seconds
	holdBack    float32
	holdForward float32
}

// Run opens the window and plays back an already-computed path until the
// user exits. The window handle lives entirely within this call.
func Run(path *kinematics.Path, cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "ddrive - differential drive playback")
	defer rl.CloseWindow()

	fps := cfg.Playback.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	rl.SetTargetFPS(int32(fps))

	opts := cfg.PlaybackOptions()
	opts.Width = windowWidth
	opts.Height = windowHeight

	a := &app{
		path: path,
		cfg:  cfg,
		ctrl: playback.NewController(path, opts),
	}

	for !rl.WindowShouldClose() && !a.ctrl.Done() {
		if rl.IsWindowResized() {
			a.ctrl.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		}
		a.input()
		a.ctrl.Tick()

		snap := a.ctrl.Frame()
		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		a.draw(snap)
		rl.EndDrawing()
	}
}

func (a *app) input() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.ctrl.Apply(playback.EvPlayPause)
	}
	if rl.IsKeyPressed(rl.KeyZero) || rl.IsKeyPressed(rl.KeyKp0) {
		a.ctrl.Apply(playback.EvResetView)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.cfg.Display.ShowGrid = !a.cfg.Display.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.ctrl.Apply(playback.EvExit)
	}

	// Pan and zoom repeat while held, matching the original key-state polling.
	if rl.IsKeyDown(rl.KeyLeft) {
		a.ctrl.Apply(playback.EvPanLeft)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.ctrl.Apply(playback.EvPanRight)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.ctrl.Apply(playback.EvPanUp)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.ctrl.Apply(playback.EvPanDown)
	}
	if rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd) {
		a.ctrl.Apply(playback.EvZoomIn)
	}
	if rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract) {
		a.ctrl.Apply(playback.EvZoomOut)
	}

	a.bracket(rl.KeyLeftBracket, &a.holdBack, playback.EvStepBack, playback.EvScrubBackHeld)
	a.bracket(rl.KeyRightBracket, &a.holdForward, playback.EvStepForward, playback.EvScrubForwardHeld)
}

// bracket turns a short press into a single step and a long hold into a
// continuous scrub that releases with the key.
func (a *app) bracket(key int32, hold *float32, step, scrub playback.Event) {
	switch {
	case rl.IsKeyDown(key):
		*hold += rl.GetFrameTime()
		if *hold >= holdThreshold {
			a.ctrl.Apply(scrub)
		}
	case rl.IsKeyReleased(key):
		if *hold < holdThreshold {
			a.ctrl.Apply(step)
		} else {
			a.ctrl.Apply(playback.EvScrubRelease)
		}
		*hold = 0
	}
}

func (a *app) draw(snap playback.Snapshot) {
	view := snap.View
	disp := a.cfg.Display

	if disp.ShowGrid {
		a.drawGrid(view)
	}

	if disp.ShowPath {
		a.drawTrail(snap, view)
	}

	if disp.ShowTurns {
		for _, t := range turnsUpTo(a.path, snap.Index) {
			drawDot(view, t, 4, colTurn)
		}
	}
	if disp.ShowOrigin {
		drawDot(view, kinematics.Point{}, 5, colOrigin)
	}
	if disp.ShowInitial {
		drawDot(view, a.path.Initial.Position(), 5, colInitial)
	}

	s := snap.Sample
	if disp.ShowAxle {
		half := a.cfg.Robot.AxleTrack / 2
		rx, ry := math.Cos(s.Heading), -math.Sin(s.Heading)
		left := kinematics.Point{X: s.Axle.X - half*rx, Y: s.Axle.Y - half*ry}
		right := kinematics.Point{X: s.Axle.X + half*rx, Y: s.Axle.Y + half*ry}
		rl.DrawLineEx(vec(view, left), vec(view, right), 1.5, colGrid)
		drawDot(view, left, 5, colLeft)
		drawDot(view, right, 5, colRight)
		drawDot(view, s.Axle, 5, colRobot)
	}

	drawDot(view, s.Position(), 5, colRobot)

	if disp.ShowHeading {
		tip := kinematics.Point{
			X: s.X + 15*math.Sin(s.Heading),
			Y: s.Y + 15*math.Cos(s.Heading),
		}
		rl.DrawLineEx(vec(view, s.Position()), vec(view, tip), 2, rl.White)
	}

	a.drawHUD(snap)
}

func (a *app) drawTrail(snap playback.Snapshot, view playback.Viewport) {
	prev := vec(view, a.path.Initial.Position())
	for i := 0; i <= snap.Index && i < a.path.Len(); i++ {
		cur := vec(view, a.path.Samples[i].Position())
		rl.DrawLineEx(prev, cur, 2, colPath)
		prev = cur
	}
}

func (a *app) drawGrid(view playback.Viewport) {
	spacing := a.cfg.Display.GridSpacing
	if spacing <= 0 {
		return
	}
	topLeft := view.ScreenToWorld(0, 0)
	bottomRight := view.ScreenToWorld(view.Width, view.Height)

	for gx := math.Floor(topLeft.X/spacing) * spacing; gx <= bottomRight.X; gx += spacing {
		sx, _ := view.WorldToScreen(kinematics.Point{X: gx})
		rl.DrawLine(int32(sx), 0, int32(sx), int32(view.Height), colGrid)
	}
	for gy := math.Floor(bottomRight.Y/spacing) * spacing; gy <= topLeft.Y; gy += spacing {
		_, sy := view.WorldToScreen(kinematics.Point{Y: gy})
		rl.DrawLine(0, int32(sy), int32(view.Width), int32(sy), colGrid)
	}
}

func (a *app) drawHUD(snap playback.Snapshot) {
	s := snap.Sample
	status := snap.Mode.String()
	if snap.AtEnd && snap.Mode == playback.Paused {
		status = "finished"
	}
	text := fmt.Sprintf("%s  frame %d/%d  x %.1f  y %.1f  heading %.1f°  zoom %.2f",
		status, snap.Index+1, snap.Total, s.X, s.Y, s.Heading*180/math.Pi, snap.View.Zoom)
	rl.DrawText(text, 12, 12, 18, colText)
	rl.DrawText("space play  [ ] step/scrub  arrows pan  +/- zoom  0 fit  g grid  q quit",
		12, int32(snap.View.Height)-28, 16, colGrid)
}

func turnsUpTo(path *kinematics.Path, frame int) []kinematics.Point {
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

func vec(view playback.Viewport, p kinematics.Point) rl.Vector2 {
	sx, sy := view.WorldToScreen(p)
	return rl.Vector2{X: float32(sx), Y: float32(sy)}
}

func drawDot(view playback.Viewport, p kinematics.Point, r float32, c rl.Color) {
	rl.DrawCircleV(vec(view, p), r, c)
}
