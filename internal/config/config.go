package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

const (
	DefaultWheelDiameter = 20.0
	DefaultAxleTrack     = 70.0
	DefaultAxleOffset    = -40.0
	DefaultStepSize      = 0.5
	DefaultFPS           = 60
	DefaultZoom          = 5.0
	DefaultZoomStep      = 1.1
	DefaultZoomMin       = 0.25
	DefaultZoomMax       = 40.0
	DefaultPanSpeed      = 5.0
	DefaultGridSpacing   = 50.0
)

// Config is one full run description: robot geometry, initial pose, the
// movement script, display toggles and playback behavior.
type Config struct {
	Robot    RobotConfig    `yaml:"robot"`
	Start    StartConfig    `yaml:"start"`
	Moves    []MoveConfig   `yaml:"moves"`
	Display  DisplayConfig  `yaml:"display"`
	Playback PlaybackConfig `yaml:"playback"`
}

type RobotConfig struct {
	WheelDiameter float64 `yaml:"wheel_diameter"`
	AxleTrack     float64 `yaml:"axle_track"`
	AxleOffset    float64 `yaml:"axle_offset"`
	StepSize      float64 `yaml:"step_size"`
}

// StartConfig is the initial pose. Heading is in degrees in the file
// (0 = up, clockwise positive) and converted to radians internally.
type StartConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	HeadingDeg float64 `yaml:"heading_deg"`
}

// MoveConfig is one scripted wheel command.
type MoveConfig struct {
	Wheels    string  `yaml:"wheels"`
	Direction string  `yaml:"direction"`
	Rotations float64 `yaml:"rotations"`
}

type DisplayConfig struct {
	ShowOrigin  bool    `yaml:"show_origin"`
	ShowInitial bool    `yaml:"show_initial"`
	ShowPath    bool    `yaml:"show_path"`
	ShowTurns   bool    `yaml:"show_turns"`
	ShowHeading bool    `yaml:"show_heading"`
	ShowAxle    bool    `yaml:"show_axle"`
	ShowGrid    bool    `yaml:"show_grid"`
	GridSpacing float64 `yaml:"grid_spacing"`
}

type PlaybackConfig struct {
	FPS        int     `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
	ScrubSpeed int     `yaml:"scrub_speed"`
	PanSpeed   float64 `yaml:"pan_speed"`
	Zoom       float64 `yaml:"zoom"`
	ZoomStep   float64 `yaml:"zoom_step"`
	ZoomMin    float64 `yaml:"zoom_min"`
	ZoomMax    float64 `yaml:"zoom_max"`
}

// DefaultConfig returns a config with sane robot geometry and all display
// layers enabled, but an empty movement script.
func DefaultConfig() *Config {
	return &Config{
		Robot: RobotConfig{
			WheelDiameter: DefaultWheelDiameter,
			AxleTrack:     DefaultAxleTrack,
			AxleOffset:    DefaultAxleOffset,
			StepSize:      DefaultStepSize,
		},
		Display: DisplayConfig{
			ShowOrigin:  true,
			ShowInitial: true,
			ShowPath:    true,
			ShowTurns:   true,
			ShowHeading: true,
			ShowAxle:    true,
			ShowGrid:    false,
			GridSpacing: DefaultGridSpacing,
		},
		Playback: PlaybackConfig{
			FPS:        DefaultFPS,
			Loop:       false,
			ScrubSpeed: 1,
			PanSpeed:   DefaultPanSpeed,
			Zoom:       DefaultZoom,
			ZoomStep:   DefaultZoomStep,
			ZoomMin:    DefaultZoomMin,
			ZoomMax:    DefaultZoomMax,
		},
	}
}

// Load reads a yaml config, layered over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the config before any window is opened. Robot geometry
// errors surface as kinematics.ErrConfiguration; script errors name the
// offending move index.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := c.Commands(); err != nil {
		return err
	}
	if c.Playback.FPS <= 0 {
		return fmt.Errorf("playback: fps must be positive, got %d", c.Playback.FPS)
	}
	if c.Playback.ZoomMin <= 0 {
		return fmt.Errorf("playback: zoom_min must be positive, got %g", c.Playback.ZoomMin)
	}
	if c.Playback.ZoomMax <= c.Playback.ZoomMin {
		return fmt.Errorf("playback: zoom_max must exceed zoom_min")
	}
	if c.Playback.ZoomStep <= 1 {
		return fmt.Errorf("playback: zoom_step must exceed 1, got %g", c.Playback.ZoomStep)
	}
	return nil
}

// Params returns the robot geometry for the engine.
func (c *Config) Params() kinematics.Params {
	return kinematics.Params{
		WheelDiameter: c.Robot.WheelDiameter,
		AxleTrack:     c.Robot.AxleTrack,
		AxleOffset:    c.Robot.AxleOffset,
		StepSize:      c.Robot.StepSize,
	}
}

// InitialPose returns the starting pose in engine units.
func (c *Config) InitialPose() kinematics.Pose {
	return kinematics.Pose{
		X:       c.Start.X,
		Y:       c.Start.Y,
		Heading: c.Start.HeadingDeg * math.Pi / 180,
	}
}

// Commands parses the movement script into engine commands. The returned
// error wraps kinematics.ErrInvalidCommand and names the offending index.
func (c *Config) Commands() ([]kinematics.WheelCommand, error) {
	cmds := make([]kinematics.WheelCommand, 0, len(c.Moves))
	for i, m := range c.Moves {
		w, err := kinematics.ParseWheel(m.Wheels)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d: %v", kinematics.ErrInvalidCommand, i, err)
		}
		d, err := kinematics.ParseDirection(m.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d: %v", kinematics.ErrInvalidCommand, i, err)
		}
		cmds = append(cmds, kinematics.WheelCommand{Wheel: w, Direction: d, Rotations: m.Rotations})
	}
	return cmds, nil
}

// PlaybackOptions maps the config onto controller options. Viewport size is
// supplied by the frontend at startup.
func (c *Config) PlaybackOptions() playback.Options {
	policy := playback.Hold
	if c.Playback.Loop {
		policy = playback.Loop
	}
	return playback.Options{
		Policy:     policy,
		ScrubSpeed: c.Playback.ScrubSpeed,
		PanSpeed:   c.Playback.PanSpeed,
		ZoomStep:   c.Playback.ZoomStep,
		ZoomMin:    c.Playback.ZoomMin,
		ZoomMax:    c.Playback.ZoomMax,
		Zoom:       c.Playback.Zoom,
	}
}
