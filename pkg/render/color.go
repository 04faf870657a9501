package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the fully transparent colour used as the outer stop of glows.
var Transparent = color.NRGBA{}

// ParseHex converts a "#RRGGBB" or "#RGB" string into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is ParseHex for compile-time constants; it panics on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses every entry of a hex palette.
func ParsePalette(hexes []string) ([]color.NRGBA, error) {
	palette := make([]color.NRGBA, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// WithAlpha returns c with its alpha multiplied by a, a is clamped to [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(a)))
	return c
}

// Mix interpolates two colours in RGB space. A fully transparent end keeps the
// colour of the other end so that fades to "transparent" do not darken.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	switch {
	case a.A == 0 && b.A != 0:
		a.R, a.G, a.B = b.R, b.G, b.B
	case b.A == 0 && a.A != 0:
		b.R, b.G, b.B = a.R, a.G, a.B
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// Darken reduces the brightness of a colour.
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	f := clamp01(factor)
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
