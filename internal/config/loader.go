package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "breakout.yaml"

// Load loads the engine configuration.
// Search order: customPath -> ~/.brickcanvas/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A customPath ending in .toml is decoded as TOML.
func Load(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(FileName, defaultBreakoutYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over DefaultConfig, choosing the format by extension.
func decode(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return BreakoutConfig{}, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickcanvas", "configs", filename)
}

// Validate checks that the configuration can drive the engine.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("physics.ball_speed", c.Physics.BallSpeed)
	positive("physics.paddle_speed", c.Physics.PaddleSpeed)
	positive("ball.radius", c.Ball.Radius)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)

	if c.Physics.InitialVX == 0 && c.Physics.InitialVY == 0 {
		errs = append(errs, errors.New("physics initial velocity must not be zero"))
	}
	if c.Physics.TimeScaled && c.Physics.MaxTimeScale <= 0 {
		errs = append(errs, errors.New("physics.max_time_scale must be positive when time_scaled is set"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Blocks.MaxRows < c.Blocks.BaseRows {
		errs = append(errs, fmt.Errorf("blocks.max_rows (%d) is below blocks.base_rows (%d)", c.Blocks.MaxRows, c.Blocks.BaseRows))
	}
	if len(c.Blocks.Palette) == 0 {
		errs = append(errs, errors.New("blocks.palette must not be empty"))
	}

	colors := append([]string{c.Ball.Color, c.Paddle.Color,
		c.Theme.BackgroundTop, c.Theme.BackgroundBottom, c.Theme.Text, c.Theme.Accent, c.Theme.Overlay},
		c.Blocks.Palette...)
	for _, hex := range colors {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg BreakoutConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}
	return enc.Close()
}

// EncodeTOML writes cfg as TOML.
func EncodeTOML(w io.Writer, cfg BreakoutConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode toml: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
