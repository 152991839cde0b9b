package paint

import (
	"image"
	"image/color"
)

// VGradient fills dst with a vertical blend from top (first row) to bottom.
// Each scanline gets one color, interpolated per channel at t = y/height and
// truncated to integer, so row 0 is exactly top and the last row is within
// rounding of bottom. Alpha is written fully opaque.
func VGradient(dst *image.NRGBA, top, bottom color.NRGBA) {
	b := dst.Bounds()
	h := float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / h
		c := color.NRGBA{
			R: lerpChannel(top.R, bottom.R, t),
			G: lerpChannel(top.G, bottom.G, t),
			B: lerpChannel(top.B, bottom.B, t),
			A: 255,
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
