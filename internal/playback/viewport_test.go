package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robolab/ddrive/internal/kinematics"
)

func TestViewport_WorldToScreenCenter(t *testing.T) {
	v := Viewport{Center: kinematics.Point{X: 10, Y: -5}, Zoom: 2, Width: 200, Height: 100}

	sx, sy := v.WorldToScreen(v.Center)
	assert.Equal(t, 100.0, sx)
	assert.Equal(t, 50.0, sy)

	// +y is up on screen
	_, syUp := v.WorldToScreen(kinematics.Point{X: 10, Y: 0})
	assert.Less(t, syUp, sy)
}

func TestViewport_RoundTrip(t *testing.T) {
	v := Viewport{Center: kinematics.Point{X: 3, Y: 7}, Zoom: 4.5, Width: 320, Height: 240}

	p := kinematics.Point{X: -12.25, Y: 9.5}
	sx, sy := v.WorldToScreen(p)
	back := v.ScreenToWorld(sx, sy)

	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
}

func TestZoom_NeverBelowMinimum(t *testing.T) {
	c := NewController(testPath(5), Options{ZoomMin: 0.5, ZoomMax: 20, Zoom: 5, ZoomStep: 1.25})

	for i := 0; i < 500; i++ {
		c.Apply(EvZoomOut)
	}
	assert.GreaterOrEqual(t, c.View().Zoom, 0.5)
	assert.Equal(t, 0.5, c.View().Zoom)

	for i := 0; i < 500; i++ {
		c.Apply(EvZoomIn)
	}
	assert.Equal(t, 20.0, c.View().Zoom)
}

func TestZoom_MultiplicativeStep(t *testing.T) {
	c := NewController(testPath(5), Options{ZoomMin: 0.1, ZoomMax: 100, Zoom: 4, ZoomStep: 1.5})

	c.Apply(EvZoomIn)
	assert.InDelta(t, 6.0, c.View().Zoom, 1e-12)
	c.Apply(EvZoomOut)
	assert.InDelta(t, 4.0, c.View().Zoom, 1e-12)
}

func TestPan_ScalesWithZoom(t *testing.T) {
	c := NewController(testPath(5), Options{PanSpeed: 10, Zoom: 2})

	before := c.View().Center
	c.Apply(EvPanRight)
	after := c.View().Center

	// a pan event moves a fixed screen distance, so world delta is speed/zoom
	assert.InDelta(t, before.X+5, after.X, 1e-12)
	assert.Equal(t, before.Y, after.Y)

	c.Apply(EvPanUp)
	assert.InDelta(t, before.Y+5, c.View().Center.Y, 1e-12)
}

func TestResetView_FitsWholePath(t *testing.T) {
	path := &kinematics.Path{
		Initial: kinematics.Pose{X: -40, Y: -10},
		Samples: []kinematics.PathSample{
			{Pose: kinematics.Pose{X: 120, Y: 80}, Axle: kinematics.Point{X: 120, Y: 80}},
			{Pose: kinematics.Pose{X: -60, Y: 30}, Axle: kinematics.Point{X: -60, Y: 30}},
		},
		Turns: []kinematics.Point{{X: 0, Y: -95}},
	}

	c := NewController(path, Options{Width: 400, Height: 300, ZoomMin: 0.01, ZoomMax: 50})

	// wander off somewhere unhelpful first
	for i := 0; i < 30; i++ {
		c.Apply(EvPanRight)
		c.Apply(EvZoomIn)
	}
	c.Apply(EvResetView)

	v := c.View()
	min, max := path.Bounds()
	corners := []kinematics.Point{
		{X: min.X, Y: min.Y},
		{X: min.X, Y: max.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
	}
	for _, corner := range corners {
		require.True(t, v.Visible(corner), "corner %+v not visible after reset", corner)
	}
}

func TestResetView_DegenerateBounds(t *testing.T) {
	// a single stationary pose has a zero-area bounding box; reset must
	// still produce a valid finite transform
	path := &kinematics.Path{Initial: kinematics.Pose{X: 5, Y: 5}}
	c := NewController(path, Options{Width: 100, Height: 100, ZoomMin: 0.5, ZoomMax: 10})

	c.Apply(EvResetView)
	v := c.View()
	assert.Equal(t, 10.0, v.Zoom)
	assert.Equal(t, 5.0, v.Center.X)
	assert.Equal(t, 5.0, v.Center.Y)
	assert.True(t, v.Visible(kinematics.Point{X: 5, Y: 5}))
}
