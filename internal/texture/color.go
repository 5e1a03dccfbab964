package texture

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// toColor converts a 0..1 RGBA tint to an 8-bit colour, clamping out-of-range channels.
func toColor(c mgl32.Vec4) color.NRGBA {
	ch := func(v float32) uint8 {
		if math32.IsNaN(v) {
			return 0
		}
		return uint8(math32.Round(mgl32.Clamp(v, 0, 1) * 255))
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}
