package playback

import (
	"github.com/robolab/ddrive/internal/kinematics"
)

// Mode is the controller's playback state.
type Mode int

const (
	Paused Mode = iota
	Playing
	Scrubbing
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "playing"
	case Scrubbing:
		return "scrubbing"
	default:
		return "paused"
	}
}

// Policy selects what playback does when it reaches the last frame.
type Policy int

const (
	// Hold parks on the last frame and pauses.
	Hold Policy = iota
	// Loop wraps playback back to frame zero.
	Loop
)

// Event is a discrete control input.
type Event int

const (
	EvPlayPause Event = iota
	EvStepBack
	EvStepForward
	EvScrubBackHeld
	EvScrubForwardHeld
	EvScrubRelease
	EvPanUp
	EvPanDown
	EvPanLeft
	EvPanRight
	EvZoomIn
	EvZoomOut
	EvResetView
	EvExit
)

// Options configures a Controller. Zero fields are replaced by defaults.
type Options struct {
	Policy     Policy
	ScrubSpeed int     // frames advanced per tick while scrubbing
	PanSpeed   float64 // screen units per pan event
	ZoomStep   float64 // multiplicative zoom factor per event, > 1
	ZoomMin    float64
	ZoomMax    float64
	Zoom       float64 // initial zoom
	Width      float64 // viewport size in screen units
	Height     float64
	FitMargin  float64 // relative margin used by reset-view
}

func (o Options) withDefaults() Options {
	if o.ScrubSpeed <= 0 {
		o.ScrubSpeed = 1
	}
	if o.PanSpeed <= 0 {
		o.PanSpeed = 5
	}
	if o.ZoomStep <= 1 {
		o.ZoomStep = 1.1
	}
	if o.ZoomMin <= 0 {
		o.ZoomMin = 0.25
	}
	if o.ZoomMax <= o.ZoomMin {
		o.ZoomMax = 40
	}
	if o.Zoom <= 0 {
		o.Zoom = 5
	}
	if o.Width <= 0 {
		o.Width = 160
	}
	if o.Height <= 0 {
		o.Height = 96
	}
	if o.FitMargin <= 0 {
		o.FitMargin = 0.1
	}
	return o
}

// Snapshot is the per-frame view handed to a renderer.
type Snapshot struct {
	Sample kinematics.PathSample
	Index  int
	Total  int
	Mode   Mode
	View   Viewport
	AtEnd  bool
}

// Controller owns the view state for one interactive session. It is the
// single writer; renderers only read Snapshots.
type Controller struct {
	path *kinematics.Path
	opts Options

	frame    int
	mode     Mode
	resumeTo Mode // mode restored when a held scrub is released
	scrubDir int
	view     Viewport
	done     bool
}

// NewController starts paused at frame 0 with the view centered on the
// initial pose.
func NewController(path *kinematics.Path, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		path: path,
		opts: opts,
		view: Viewport{
			Center: path.Initial.Position(),
			Zoom:   clampF(opts.Zoom, opts.ZoomMin, opts.ZoomMax),
			Width:  opts.Width,
			Height: opts.Height,
		},
	}
}

// Apply processes one control event. Transitions are total: out-of-range
// motion clamps and redundant events are no-ops.
func (c *Controller) Apply(ev Event) {
	switch ev {
	case EvPlayPause:
		if c.mode == Scrubbing {
			c.mode = c.resumeTo
			c.scrubDir = 0
		}
		if c.mode == Playing {
			c.mode = Paused
		} else {
			c.mode = Playing
			if c.frame >= c.lastFrame() && c.opts.Policy == Hold {
				// Restarting playback from the end replays from the top.
				c.frame = 0
			}
		}
	case EvStepBack:
		c.frame = clampI(c.frame-1, 0, c.lastFrame())
	case EvStepForward:
		c.frame = clampI(c.frame+1, 0, c.lastFrame())
	case EvScrubBackHeld:
		c.holdScrub(-1)
	case EvScrubForwardHeld:
		c.holdScrub(1)
	case EvScrubRelease:
		if c.mode == Scrubbing {
			c.mode = c.resumeTo
			c.scrubDir = 0
		}
	case EvPanUp:
		c.view.pan(0, c.opts.PanSpeed)
	case EvPanDown:
		c.view.pan(0, -c.opts.PanSpeed)
	case EvPanLeft:
		c.view.pan(-c.opts.PanSpeed, 0)
	case EvPanRight:
		c.view.pan(c.opts.PanSpeed, 0)
	case EvZoomIn:
		c.view.zoomBy(c.opts.ZoomStep, c.opts.ZoomMin, c.opts.ZoomMax)
	case EvZoomOut:
		c.view.zoomBy(1/c.opts.ZoomStep, c.opts.ZoomMin, c.opts.ZoomMax)
	case EvResetView:
		min, max := c.path.Bounds()
		c.view.fit(min, max, c.opts.FitMargin, c.opts.ZoomMin, c.opts.ZoomMax)
	case EvExit:
		c.done = true
	}
}

func (c *Controller) holdScrub(dir int) {
	if c.mode != Scrubbing {
		c.resumeTo = c.mode
		c.mode = Scrubbing
	}
	c.scrubDir = dir
}

// Tick advances the frame index once per render tick according to the
// current mode and the end-of-path policy.
func (c *Controller) Tick() {
	switch c.mode {
	case Playing:
		if c.frame < c.lastFrame() {
			c.frame++
			return
		}
		if c.opts.Policy == Loop {
			c.frame = 0
			return
		}
		c.mode = Paused
	case Scrubbing:
		c.frame = clampI(c.frame+c.scrubDir*c.opts.ScrubSpeed, 0, c.lastFrame())
	}
}

// Frame returns the current render snapshot.
func (c *Controller) Frame() Snapshot {
	return Snapshot{
		Sample: c.path.At(c.frame),
		Index:  c.frame,
		Total:  c.path.Len(),
		Mode:   c.mode,
		View:   c.view,
		AtEnd:  c.frame >= c.lastFrame(),
	}
}

// Resize updates the viewport dimensions, e.g. on a window size change.
func (c *Controller) Resize(w, h float64) {
	if w > 0 {
		c.view.Width = w
	}
	if h > 0 {
		c.view.Height = h
	}
}

// View returns the current view transform.
func (c *Controller) View() Viewport { return c.view }

// Mode returns the current playback mode.
func (c *Controller) Mode() Mode { return c.mode }

// FrameIndex returns the current frame index.
func (c *Controller) FrameIndex() int { return c.frame }

// Done reports whether an exit event was received.
func (c *Controller) Done() bool { return c.done }

func (c *Controller) lastFrame() int {
	if n := c.path.Len(); n > 0 {
		return n - 1
	}
	return 0
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
