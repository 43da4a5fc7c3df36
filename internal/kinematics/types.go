package kinematics

import (
	"fmt"
	"math"
	"strings"
)

// Point is a position in world units.
type Point struct {
	X float64
	Y float64
}

// Pose is the robot's position and heading at an instant.
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// Position returns the pose's location as a Point.
func (p Pose) Position() Point { return Point{p.X, p.Y} }

// Wheel selects which wheel(s) a command drives.
type Wheel int

const (
	WheelLeft Wheel = iota
	WheelRight
	WheelBoth
	// WheelPivot drives the wheels in opposition for an in-place turn:
	// Forward spins left forward and right backward (clockwise).
	WheelPivot
)

func (w Wheel) String() string {
	switch w {
	case WheelLeft:
		return "left"
	case WheelRight:
		return "right"
	case WheelBoth:
		return "both"
	case WheelPivot:
		return "pivot"
	default:
		return fmt.Sprintf("wheel(%d)", int(w))
	}
}

// ParseWheel maps a selector name to a Wheel.
func ParseWheel(s string) (Wheel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return WheelLeft, nil
	case "right":
		return WheelRight, nil
	case "both":
		return WheelBoth, nil
	case "pivot":
		return WheelPivot, nil
	default:
		return 0, fmt.Errorf("unknown wheel selector %q", s)
	}
}

// Direction is the sense a command drives its wheels in.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection maps a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// WheelCommand drives one or both wheels over a number of wheel rotations.
// Rotations must be finite and non-negative; Direction carries the sign.
type WheelCommand struct {
	Wheel     Wheel
	Direction Direction
	Rotations float64
}

// PathSample is one integrated pose along the path plus derived annotations.
type PathSample struct {
	Pose

	// Axle is the axle midpoint position; it coincides with the pose
	// position unless Params.AxleOffset is non-zero.
	Axle Point

	// Command is the index of the wheel command that produced this sample.
	Command int

	// Turn marks the first sample of a command that opened a turn point.
	Turn bool
}

// Path is an ordered, immutable trajectory. Samples holds the integrated
// poses only; the starting pose is kept separately in Initial so that a
// script of N distance units at step size s yields exactly N/s samples.
type Path struct {
	Samples []PathSample
	Turns   []Point
	Initial Pose
}

// Len returns the number of integrated samples.
func (p *Path) Len() int { return len(p.Samples) }

// At returns the sample at index i, clamping i into [0, Len-1]. For an
// empty path it returns the initial pose as a synthetic sample.
func (p *Path) At(i int) PathSample {
	if len(p.Samples) == 0 {
		return PathSample{Pose: p.Initial, Axle: p.Initial.Position(), Command: -1}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.Samples) {
		i = len(p.Samples) - 1
	}
	return p.Samples[i]
}

// Final returns the last pose of the path, or the initial pose if the path
// is empty.
func (p *Path) Final() Pose {
	if len(p.Samples) == 0 {
		return p.Initial
	}
	return p.Samples[len(p.Samples)-1].Pose
}

// Bounds returns the axis-aligned bounding box covering the initial pose,
// every sample and every turn marker.
func (p *Path) Bounds() (min, max Point) {
	min = p.Initial.Position()
	max = min
	grow := func(pt Point) {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	for _, s := range p.Samples {
		grow(s.Position())
		grow(s.Axle)
	}
	for _, t := range p.Turns {
		grow(t)
	}
	return min, max
}

// NormalizeHeading wraps h into (-pi, pi].
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h <= -math.Pi {
		h += 2 * math.Pi
	} else if h > math.Pi {
		h -= 2 * math.Pi
	}
	return h
}
