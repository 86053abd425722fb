package spectrum

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Black is the color of an unclassified star.
var Black = Color{}

// Scale multiplies each channel by f. Results are truncated toward zero and
// wrap modulo 256 rather than saturating, matching the catalog renderers.
func (c Color) Scale(f float64) Color {
	return Color{
		R: wrap(float64(c.R) * f),
		G: wrap(float64(c.G) * f),
		B: wrap(float64(c.B) * f),
	}
}

func wrap(x float64) uint8 {
	return uint8(int64(x))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Colorful returns the color in go-colorful's float representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}
