package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color. The zero value is "no color": cells and
// paints carrying it fall back to the host's default foreground.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// ColorDefault is the unset color.
var ColorDefault = Color{}

// RGB builds a valid color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// ParseHex parses "#rrggbb" (or "#rgb") into a Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b), nil
}

// Hex returns the "#rrggbb" form, or "" for the unset color.
func (c Color) Hex() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend interpolates between c and o in Lab space; t is clamped to [0, 1].
func (c Color) Blend(o Color, t float64) Color {
	if !c.Valid {
		return o
	}
	if !o.Valid {
		return c
	}
	t = ClampF(t, 0, 1)
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

// Predefined colors used by engine defaults and hosts.
var (
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorBlack  = RGB(0x00, 0x00, 0x00)
	ColorGray   = RGB(0x8a, 0x8a, 0x8a)
	ColorYellow = RGB(0xff, 0xd9, 0x3d)
)

// MarshalText encodes the color as "#rrggbb" (empty when unset).
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes "#rrggbb"; empty text yields the unset color.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ColorDefault
		return nil
	}
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
