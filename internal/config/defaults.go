package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultConfig returns the built-in engine configuration. It matches the
// embedded defaults/breakout.yaml.
func DefaultConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: Physics{
			BallSpeed:      6,
			PaddleSpeed:    10,
			InitialVX:      3,
			InitialVY:      -3,
			SpeedIncrement: 0.2,
			Deflection:     5,
			TimeScaled:     false,
			MaxTimeScale:   3,
		},
		Ball: Ball{
			Radius:   8,
			ResetGap: 5,
			Color:    "#ffffff",
		},
		Paddle: Paddle{
			Width:        100,
			Height:       15,
			BottomOffset: 30,
			Color:        "#4ecdc4",
		},
		Blocks: Blocks{
			Width:      80,
			Height:     25,
			Padding:    5,
			OffsetTop:  60,
			OffsetLeft: 35,
			BaseRows:   3,
			MaxRows:    8,
			RowPoints:  10,
			Palette: []string{
				"#ff6b6b", "#ff9f43", "#feca57", "#1dd1a1",
				"#48dbfb", "#54a0ff", "#5f27cd", "#ff9ff3",
			},
		},
		Gameplay: Gameplay{
			Lives: 3,
		},
		Theme: Theme{
			BackgroundTop:    "#1a1a2e",
			BackgroundBottom: "#16213e",
			Text:             "#ffffff",
			Accent:           "#feca57",
			Overlay:          "#000000",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
