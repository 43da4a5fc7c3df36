package config

import (
	"math"
	"sort"
)

// Presets are ready-made demo courses keyed by name.
var Presets = map[string]func() *Config{
	"square":  squarePreset,
	"pivot":   pivotPreset,
	"lap":     lapPreset,
	"zigzag":  zigzagPreset,
	"sampler": samplerPreset,
}

// GetPreset returns a fresh config for a named preset, or nil.
func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	return mk()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// squarePreset drives a square: four straight legs joined by in-place-style
// single-wheel turns.
func squarePreset() *Config {
	cfg := DefaultConfig()
	cfg.Robot.AxleOffset = 0
	for i := 0; i < 4; i++ {
		cfg.Moves = append(cfg.Moves,
			MoveConfig{Wheels: "both", Direction: "forward", Rotations: 3},
			// quarter turn: one wheel travels pi/2 * track
			MoveConfig{Wheels: "left", Direction: "forward", Rotations: quarterTurnRotations(cfg)},
		)
	}
	return cfg
}

// pivotPreset exercises single-wheel pivots in both directions.
func pivotPreset() *Config {
	cfg := DefaultConfig()
	cfg.Moves = []MoveConfig{
		{Wheels: "left", Direction: "forward", Rotations: 1},
		{Wheels: "right", Direction: "forward", Rotations: 1},
		{Wheels: "left", Direction: "backward", Rotations: 1},
		{Wheels: "right", Direction: "backward", Rotations: 1},
		{Wheels: "pivot", Direction: "forward", Rotations: 0.5},
		{Wheels: "pivot", Direction: "backward", Rotations: 0.5},
	}
	return cfg
}

// lapPreset is a long arcing lap with a reversal at the end.
func lapPreset() *Config {
	cfg := DefaultConfig()
	cfg.Start = StartConfig{X: -30, Y: -20, HeadingDeg: 30}
	cfg.Moves = []MoveConfig{
		{Wheels: "both", Direction: "forward", Rotations: 2},
		{Wheels: "left", Direction: "forward", Rotations: 2},
		{Wheels: "both", Direction: "forward", Rotations: 2},
		{Wheels: "right", Direction: "forward", Rotations: 2},
		{Wheels: "both", Direction: "backward", Rotations: 3},
	}
	return cfg
}

// zigzagPreset alternates wheel turns to stress turn-point marking.
func zigzagPreset() *Config {
	cfg := DefaultConfig()
	for i := 0; i < 3; i++ {
		cfg.Moves = append(cfg.Moves,
			MoveConfig{Wheels: "both", Direction: "forward", Rotations: 1},
			MoveConfig{Wheels: "left", Direction: "forward", Rotations: 0.5},
			MoveConfig{Wheels: "both", Direction: "forward", Rotations: 1},
			MoveConfig{Wheels: "right", Direction: "forward", Rotations: 0.5},
		)
	}
	return cfg
}

// samplerPreset is the six-command tour of every selector/direction pair.
func samplerPreset() *Config {
	cfg := DefaultConfig()
	cfg.Start = StartConfig{X: -30, Y: -20, HeadingDeg: 30}
	cfg.Moves = []MoveConfig{
		{Wheels: "left", Direction: "forward", Rotations: 1},
		{Wheels: "right", Direction: "forward", Rotations: 1},
		{Wheels: "both", Direction: "forward", Rotations: 1},
		{Wheels: "left", Direction: "backward", Rotations: 1},
		{Wheels: "right", Direction: "backward", Rotations: 1},
		{Wheels: "both", Direction: "backward", Rotations: 1},
	}
	return cfg
}

func quarterTurnRotations(cfg *Config) float64 {
	circ := cfg.Params().Circumference()
	arc := (math.Pi / 2) * cfg.Robot.AxleTrack
	return arc / circ
}
