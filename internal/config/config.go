// Package config provides YAML/TOML engine configuration loading and
// difficulty presets for brickcanvas.
package config

import "fmt"

// BreakoutConfig contains every tunable of the engine. Surface dimensions
// are not part of it: the engine derives them from its drawing surface.
type BreakoutConfig struct {
	Physics  Physics  `yaml:"physics" toml:"physics"`
	Ball     Ball     `yaml:"ball" toml:"ball"`
	Paddle   Paddle   `yaml:"paddle" toml:"paddle"`
	Blocks   Blocks   `yaml:"blocks" toml:"blocks"`
	Gameplay Gameplay `yaml:"gameplay" toml:"gameplay"`
	Theme    Theme    `yaml:"theme" toml:"theme"`
}

// Physics defines motion parameters, in pixels per frame.
type Physics struct {
	BallSpeed      float64 `yaml:"ball_speed" toml:"ball_speed"`           // Magnitude restored on every paddle bounce
	PaddleSpeed    float64 `yaml:"paddle_speed" toml:"paddle_speed"`       // Keyboard paddle step
	InitialVX      float64 `yaml:"initial_vx" toml:"initial_vx"`           // Serve velocity
	InitialVY      float64 `yaml:"initial_vy" toml:"initial_vy"`           // Serve velocity, negative is up
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"` // Added to ball speed on level up
	Deflection     float64 `yaml:"deflection" toml:"deflection"`           // Horizontal velocity at the paddle edge
	TimeScaled     bool    `yaml:"time_scaled" toml:"time_scaled"`         // Scale motion by frame delta
	MaxTimeScale   float64 `yaml:"max_time_scale" toml:"max_time_scale"`   // Upper clamp of the delta factor
}

// Ball defines the ball geometry.
type Ball struct {
	Radius   float64 `yaml:"radius" toml:"radius"`
	ResetGap float64 `yaml:"reset_gap" toml:"reset_gap"` // Space between ball and paddle on serve
	Color    string  `yaml:"color" toml:"color"`
}

// Paddle defines the paddle geometry.
type Paddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Paddle top is this far above the bottom edge
	Color        string  `yaml:"color" toml:"color"`
}

// Blocks defines the block grid layout.
type Blocks struct {
	Width      float64  `yaml:"width" toml:"width"`
	Height     float64  `yaml:"height" toml:"height"`
	Padding    float64  `yaml:"padding" toml:"padding"`
	OffsetTop  float64  `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left" toml:"offset_left"`
	BaseRows   int      `yaml:"base_rows" toml:"base_rows"`
	MaxRows    int      `yaml:"max_rows" toml:"max_rows"`
	RowPoints  int      `yaml:"row_points" toml:"row_points"`
	Palette    []string `yaml:"palette" toml:"palette"` // Row colors, cycled
}

// Gameplay defines run rules.
type Gameplay struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// Theme defines background and overlay colors.
type Theme struct {
	BackgroundTop    string `yaml:"background_top" toml:"background_top"`
	BackgroundBottom string `yaml:"background_bottom" toml:"background_bottom"`
	Text             string `yaml:"text" toml:"text"`
	Accent           string `yaml:"accent" toml:"accent"`
	Overlay          string `yaml:"overlay" toml:"overlay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts gameplay for a difficulty preset. Normal leaves the
// configuration untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.BallSpeed = 5
		cfg.Paddle.Width = 120
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.BallSpeed = 7
		cfg.Paddle.Width = 80
	}
}
