package kinematics

import (
	"fmt"
	"math"
)

// Params holds the static robot geometry.
type Params struct {
	// WheelDiameter converts commanded wheel rotations to travel distance.
	WheelDiameter float64

	// AxleTrack is the distance between the two wheels.
	AxleTrack float64

	// AxleOffset displaces the robot reference point from the axle midpoint
	// along the heading. Positive puts the reference point ahead of the axle.
	AxleOffset float64

	// StepSize is the wheel travel distance between consecutive samples.
	StepSize float64
}

// Circumference returns the distance covered by one wheel rotation.
func (p Params) Circumference() float64 { return math.Pi * p.WheelDiameter }

// Validate reports the first invalid parameter, if any.
func (p Params) Validate() error {
	if !(p.WheelDiameter > 0) {
		return &ConfigError{Field: "wheel diameter", Value: p.WheelDiameter}
	}
	if !(p.AxleTrack > 0) {
		return &ConfigError{Field: "axle track", Value: p.AxleTrack}
	}
	if !(p.StepSize > 0) {
		return &ConfigError{Field: "step size", Value: p.StepSize}
	}
	if !isFinite(p.AxleOffset) {
		return &ConfigError{Field: "axle offset", Value: p.AxleOffset}
	}
	return nil
}

// wheelClass captures the commanded differential state used for turn-point
// detection: the sign of (left-right) and the sign of the net motion.
type wheelClass struct {
	diff   int
	motion int
}

// partial-step tail below this fraction of a step is float residue, not a
// real sample
const stepEpsilon = 1e-9

// ComputePath integrates an ordered command script into a sampled Path.
//
// The whole script is validated up front; on error no partial Path is
// produced. A command opens a turn point iff its wheel class differs from
// the previous non-empty command's. Zero-magnitude commands emit no samples
// and do not affect turn detection.
func ComputePath(initial Pose, commands []WheelCommand, p Params) (*Path, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, c := range commands {
		if err := validateCommand(i, c); err != nil {
			return nil, err
		}
	}

	initial.Heading = NormalizeHeading(initial.Heading)
	path := &Path{Initial: initial}

	h := initial.Heading
	axle := Point{
		X: initial.X - p.AxleOffset*math.Sin(h),
		Y: initial.Y - p.AxleOffset*math.Cos(h),
	}

	var prev wheelClass
	havePrev := false

	for i, c := range commands {
		dist := c.Rotations * p.Circumference()
		if c.Direction == Backward {
			dist = -dist
		}
		if dist == 0 {
			continue
		}

		var dl, dr float64
		switch c.Wheel {
		case WheelLeft:
			dl = dist
		case WheelRight:
			dr = dist
		case WheelBoth:
			dl, dr = dist, dist
		case WheelPivot:
			dl, dr = dist, -dist
		}

		cls := wheelClass{diff: sign(dl - dr), motion: sign(dl + dr)}
		turn := havePrev && cls != prev
		prev, havePrev = cls, true
		if turn {
			path.Turns = append(path.Turns, reference(axle, h, p.AxleOffset))
		}

		span := math.Max(math.Abs(dl), math.Abs(dr))
		remaining := span
		first := true
		for remaining > stepEpsilon {
			step := math.Min(p.StepSize, remaining)
			frac := step / span
			li, ri := dl*frac, dr*frac

			mid := (li + ri) / 2
			dth := (li - ri) / p.AxleTrack
			if dth == 0 {
				axle.X += mid * math.Sin(h)
				axle.Y += mid * math.Cos(h)
			} else {
				// Exact circular arc about the instantaneous center.
				r := mid / dth
				h1 := h + dth
				axle.X += r * (math.Cos(h) - math.Cos(h1))
				axle.Y += r * (math.Sin(h1) - math.Sin(h))
				h = h1
			}
			remaining -= step

			hn := NormalizeHeading(h)
			ref := reference(axle, hn, p.AxleOffset)
			path.Samples = append(path.Samples, PathSample{
				Pose:    Pose{X: ref.X, Y: ref.Y, Heading: hn},
				Axle:    axle,
				Command: i,
				Turn:    turn && first,
			})
			first = false
		}
		h = NormalizeHeading(h)
	}

	return path, nil
}

func validateCommand(i int, c WheelCommand) error {
	switch c.Wheel {
	case WheelLeft, WheelRight, WheelBoth, WheelPivot:
	default:
		return &CommandError{Index: i, Field: "wheel", Detail: fmt.Sprintf("undefined selector %d", int(c.Wheel))}
	}
	switch c.Direction {
	case Forward, Backward:
	default:
		return &CommandError{Index: i, Field: "direction", Detail: fmt.Sprintf("undefined direction %d", int(c.Direction))}
	}
	if !isFinite(c.Rotations) {
		return &CommandError{Index: i, Field: "rotations", Detail: "magnitude must be finite"}
	}
	if c.Rotations < 0 {
		return &CommandError{Index: i, Field: "rotations", Detail: "magnitude must be non-negative (use direction for reverse)"}
	}
	return nil
}

// reference returns the robot reference point for an axle midpoint and
// heading.
func reference(axle Point, h, offset float64) Point {
	return Point{
		X: axle.X + offset*math.Sin(h),
		Y: axle.Y + offset*math.Cos(h),
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
