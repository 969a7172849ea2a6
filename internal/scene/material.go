package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#rrggbb" or "#rgb" into an opaque colour. The leading
// '#' may be omitted.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex is ParseHex for the layout constants in this package.
func Hex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Standard returns an opaque, fully rough, non-metallic material.
func Standard(hex string) *Material {
	return &Material{
		Color:     Hex(hex),
		Roughness: 1,
		Opacity:   1,
	}
}
