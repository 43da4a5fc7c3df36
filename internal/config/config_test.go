package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/robolab/ddrive/internal/kinematics"
	"github.com/robolab/ddrive/internal/playback"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Robot.AxleTrack <= 0 {
		t.Error("axle track should be positive")
	}
	if cfg.Robot.StepSize <= 0 {
		t.Error("step size should be positive")
	}
	if cfg.Playback.Loop {
		t.Error("default playback policy should hold, not loop")
	}
}

func TestConfig_Commands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Moves = []MoveConfig{
		{Wheels: "both", Direction: "forward", Rotations: 2},
		{Wheels: "pivot", Direction: "backward", Rotations: 0.5},
	}

	cmds, err := cfg.Commands()
	if err != nil {
		t.Fatalf("commands failed: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Wheel != kinematics.WheelBoth || cmds[0].Direction != kinematics.Forward {
		t.Errorf("command 0 = %+v", cmds[0])
	}
	if cmds[1].Wheel != kinematics.WheelPivot || cmds[1].Direction != kinematics.Backward {
		t.Errorf("command 1 = %+v", cmds[1])
	}
}

func TestConfig_CommandsInvalidWheel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Moves = []MoveConfig{
		{Wheels: "both", Direction: "forward", Rotations: 1},
		{Wheels: "middle", Direction: "forward", Rotations: 1},
	}

	_, err := cfg.Commands()
	if !errors.Is(err, kinematics.ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero track", func(c *Config) { c.Robot.AxleTrack = 0 }},
		{"zero step", func(c *Config) { c.Robot.StepSize = 0 }},
		{"zero fps", func(c *Config) { c.Playback.FPS = 0 }},
		{"zoom min", func(c *Config) { c.Playback.ZoomMin = 0 }},
		{"zoom max below min", func(c *Config) { c.Playback.ZoomMax = c.Playback.ZoomMin / 2 }},
		{"zoom step", func(c *Config) { c.Playback.ZoomStep = 1 }},
		{"bad move", func(c *Config) { c.Moves = []MoveConfig{{Wheels: "nope", Direction: "forward"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	cfg := GetPreset("lap")
	cfg.Playback.Loop = true
	cfg.Start.HeadingDeg = 45

	file := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(file, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(file)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Start.HeadingDeg != 45 {
		t.Errorf("heading = %v, want 45", loaded.Start.HeadingDeg)
	}
	if !loaded.Playback.Loop {
		t.Error("loop flag lost in round trip")
	}
	if len(loaded.Moves) != len(cfg.Moves) {
		t.Errorf("moves = %d, want %d", len(loaded.Moves), len(cfg.Moves))
	}
}

func TestConfig_InitialPose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = StartConfig{X: -30, Y: -20, HeadingDeg: 30}

	pose := cfg.InitialPose()
	if pose.X != -30 || pose.Y != -20 {
		t.Errorf("pose = %+v", pose)
	}
	if math.Abs(pose.Heading-30*math.Pi/180) > 1e-12 {
		t.Errorf("heading = %v, want 30 degrees in radians", pose.Heading)
	}
}

func TestConfig_PlaybackOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Playback.Loop = true
	if cfg.PlaybackOptions().Policy != playback.Loop {
		t.Error("loop config should map to the loop policy")
	}

	cfg.Playback.Loop = false
	if cfg.PlaybackOptions().Policy != playback.Hold {
		t.Error("default policy should hold at the end")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s returned nil", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if len(cfg.Moves) == 0 {
			t.Errorf("preset %s has no moves", name)
		}
	}
}

func TestGetPreset_Unknown(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresets_ComputeCleanly(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		cmds, err := cfg.Commands()
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		path, err := kinematics.ComputePath(cfg.InitialPose(), cmds, cfg.Params())
		if err != nil {
			t.Fatalf("preset %s: compute failed: %v", name, err)
		}
		if path.Len() == 0 {
			t.Errorf("preset %s produced an empty path", name)
		}
	}
}
