// Package paint holds the color value shared by the light and material factories.
// Colors arrive as CSS hex strings ("#6EACDA"), integers (0x777777) or names ("white").
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned when a color value cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque-by-default sRGB color.
type Color color.RGBA

// White is the fallback color of every factory.
var White = Color{255, 255, 255, 255}

// Black is the demo background.
var Black = Color{0, 0, 0, 255}

// Hex returns the color for a 0xRRGGBB integer. Alpha is always 255.
func Hex(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// Parse accepts "#RGB", "#RRGGBB", "#RRGGBBAA", "0xRRGGBB" and named colors.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("paint: empty string: %w", ErrInvalidColor)
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		c, err := colors.FromHex(s)
		if err != nil {
			return Color{}, fmt.Errorf("paint: %q: %w", s, ErrInvalidColor)
		}
		return straight(c), nil
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(lower[2:], 16, 32)
		if err != nil || len(lower) != 8 {
			return Color{}, fmt.Errorf("paint: %q: %w", s, ErrInvalidColor)
		}
		return Hex(uint32(v)), nil
	}
	c, err := colors.FromName(lower)
	if err != nil {
		return Color{}, fmt.Errorf("paint: %q: %w", s, ErrInvalidColor)
	}
	return straight(c), nil
}

// straight converts the premultiplied colors returned by the colors package to straight alpha.
func straight(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// Floats returns the normalized r, g, b, a components, as shader uniforms want them.
func (c Color) Floats() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// String returns the color as #rrggbb (alpha is dropped when opaque).
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Ptr returns a pointer to a copy of c, for optional option fields.
func (c Color) Ptr() *Color {
	return &c
}

// UnmarshalYAML decodes either an integer (0x777777 is a YAML int) or a string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("paint: line %d: expected scalar: %w", value.Line, ErrInvalidColor)
	}
	if value.Tag == "!!int" {
		var v uint32
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("paint: line %d: %w", value.Line, ErrInvalidColor)
		}
		*c = Hex(v)
		return nil
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the #rrggbb form.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
