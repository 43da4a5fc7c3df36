package kinematics

import (
	"math"
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{5, 5 - 2*math.Pi},
		{-5, -5 + 2*math.Pi},
	}

	for _, tt := range tests {
		if got := NormalizeHeading(tt.in); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("NormalizeHeading(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestParseWheel(t *testing.T) {
	tests := []struct {
		in      string
		want    Wheel
		wantErr bool
	}{
		{"left", WheelLeft, false},
		{"Right", WheelRight, false},
		{" both ", WheelBoth, false},
		{"PIVOT", WheelPivot, false},
		{"middle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWheel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWheel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseWheel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("forward"); err != nil || d != Forward {
		t.Errorf("ParseDirection(forward) = %v, %v", d, err)
	}
	if d, err := ParseDirection("Backward"); err != nil || d != Backward {
		t.Errorf("ParseDirection(Backward) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestPath_AtClamps(t *testing.T) {
	path := &Path{
		Initial: Pose{X: 1, Y: 2},
		Samples: []PathSample{
			{Pose: Pose{X: 10}, Command: 0},
			{Pose: Pose{X: 20}, Command: 0},
			{Pose: Pose{X: 30}, Command: 1},
		},
	}

	if got := path.At(-5); got.X != 10 {
		t.Errorf("At(-5) = %v, want first sample", got.X)
	}
	if got := path.At(99); got.X != 30 {
		t.Errorf("At(99) = %v, want last sample", got.X)
	}
	if got := path.At(1); got.X != 20 {
		t.Errorf("At(1) = %v, want 20", got.X)
	}
}

func TestPath_AtEmpty(t *testing.T) {
	path := &Path{Initial: Pose{X: 3, Y: 4, Heading: 0.5}}
	s := path.At(0)
	if s.X != 3 || s.Y != 4 || s.Heading != 0.5 {
		t.Errorf("empty path At(0) = %+v, want initial pose", s)
	}
	if s.Command != -1 {
		t.Errorf("empty path sample command = %d, want -1", s.Command)
	}
}

func TestPath_Bounds(t *testing.T) {
	path := &Path{
		Initial: Pose{X: -1, Y: 0},
		Samples: []PathSample{
			{Pose: Pose{X: 5, Y: 2}, Axle: Point{X: 5, Y: 2}},
			{Pose: Pose{X: 3, Y: -7}, Axle: Point{X: 3, Y: -7}},
		},
		Turns: []Point{{X: 8, Y: 1}},
	}

	min, max := path.Bounds()
	if min.X != -1 || min.Y != -7 {
		t.Errorf("min = %+v, want (-1, -7)", min)
	}
	if max.X != 8 || max.Y != 2 {
		t.Errorf("max = %+v, want (8, 2)", max)
	}
}

func TestPath_Final(t *testing.T) {
	empty := &Path{Initial: Pose{X: 1}}
	if f := empty.Final(); f.X != 1 {
		t.Errorf("empty Final = %+v, want initial", f)
	}

	path := &Path{Samples: []PathSample{{Pose: Pose{X: 9}}}}
	if f := path.Final(); f.X != 9 {
		t.Errorf("Final = %+v, want last sample pose", f)
	}
}
