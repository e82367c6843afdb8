package kernel

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA converts the color to an 8-bit color.RGBA, rounding each
// component. Values outside [0, 1] are clamped.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8bit(c.R),
		G: to8bit(c.G),
		B: to8bit(c.B),
		A: to8bit(c.A),
	}
}

// String returns a human-readable form used as the material name when
// the color is bound to a mesh object.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// ColorFromRGBA converts an 8-bit color.RGBA back to float components.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func to8bit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
