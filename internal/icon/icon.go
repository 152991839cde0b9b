// Package icon renders the ClipVault application icon: a clipboard with
// placeholder text lines and a green checkmark badge on a blue-to-purple
// rounded-square background. The artwork is fully determined by the
// constants below; Draw always produces the same 1024×1024 image.
package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/clipvault/mkicon/internal/paint"
)

// Size is the edge length of the master canvas in pixels.
const Size = 1024

// padding is the transparent inset around the rounded square, per macOS
// icon conventions (the visible artwork does not touch the canvas edge).
const padding = 100

// Clipboard geometry on the master canvas.
const (
	clipLeft   = 240
	clipRight  = 784
	clipTop    = 260
	clipBottom = 850
	clipRadius = 32
)

// Placeholder text-line layout.
const (
	lineStartY  = 370
	lineSpacing = 52
	lineHeight  = 14
	lineRadius  = 7
	lineInset   = 60
)

var (
	gradTop    = color.NRGBA{41, 98, 255, 255}   // deep blue
	gradBottom = color.NRGBA{103, 58, 183, 255}  // purple
	bodyColor  = color.NRGBA{248, 248, 252, 255} // warm white
	clipColor  = color.NRGBA{160, 168, 180, 255}
	holeColor  = color.NRGBA{120, 128, 140, 255}
	lineColor  = color.NRGBA{180, 190, 210, 255}
	badgeColor = color.NRGBA{41, 182, 115, 255} // green accent
	shadowTint = color.NRGBA{0, 0, 0, 60}
	white      = color.NRGBA{255, 255, 255, 255}
)

// lineLengths are the relative widths of the placeholder text lines as
// fractions of the clipboard's inner width.
var lineLengths = []float64{1.0, 0.75, 0.9, 0.6, 0.85, 0.5, 0.7}

// Draw renders the full icon onto a transparent 1024×1024 canvas. Opaque
// elements are painted directly; the shadow and the highlight are built on
// their own transparent layers and alpha-composited so they blend with
// whatever is beneath them.
func Draw() *image.NRGBA {
	bounds := image.Rect(0, 0, Size, Size)
	canvas := image.NewNRGBA(bounds)

	drawBackground(canvas)
	drawShadow(canvas)

	// Clipboard body.
	paint.FillRoundedRect(canvas, image.Rect(clipLeft, clipTop, clipRight, clipBottom), clipRadius, bodyColor)

	drawFastener(canvas)
	drawTextLines(canvas)
	drawBadge(canvas)
	drawHighlight(canvas)

	return canvas
}

// drawBackground paints the vertical gradient clipped to a rounded square:
// the gradient covers the whole canvas, the silhouette lives in a one-channel
// mask, and the paste keys per-pixel alpha off the mask.
func drawBackground(canvas *image.NRGBA) {
	bounds := canvas.Bounds()

	grad := image.NewNRGBA(bounds)
	paint.VGradient(grad, gradTop, gradBottom)

	mask := image.NewAlpha(bounds)
	square := image.Rect(padding/2, padding/2, Size-padding/2, Size-padding/2)
	radius := Size * 22 / 100 // Big Sur corner rounding, ~22% of the edge
	paint.FillRoundedRect(mask, square, radius, color.Alpha{255})

	draw.DrawMask(canvas, bounds, grad, image.Point{}, mask, image.Point{}, draw.Over)
}

// drawShadow composites a semi-transparent rounded rectangle offset
// down-and-right from the clipboard body, suggesting elevation.
func drawShadow(canvas *image.NRGBA) {
	layer := image.NewNRGBA(canvas.Bounds())
	paint.FillRoundedRect(layer,
		image.Rect(clipLeft+6, clipTop+8, clipRight+6, clipBottom+8), clipRadius, shadowTint)
	draw.Draw(canvas, canvas.Bounds(), layer, image.Point{}, draw.Over)
}

// drawFastener draws the metal clip centered on the clipboard's top edge.
// The "hole" is an opaque overdraw in a darker tone, not a real cut-out.
func drawFastener(canvas *image.NRGBA) {
	const fastenerW, fastenerH = 200, 60
	cx := (clipLeft + clipRight) / 2
	top := clipTop - fastenerH/2
	paint.FillRoundedRect(canvas,
		image.Rect(cx-fastenerW/2, top, cx+fastenerW/2, top+fastenerH), 14, clipColor)

	const holeW, holeH = 80, 28
	paint.FillRoundedRect(canvas,
		image.Rect(cx-holeW/2, top+8, cx+holeW/2, top+8+holeH), 10, holeColor)
}

// drawTextLines draws the placeholder content as thin rounded bars.
// Generation stops before any line whose bottom would cross into the
// clipboard's bottom margin.
func drawTextLines(canvas *image.NRGBA) {
	left := clipLeft + lineInset
	rightFull := clipRight - lineInset
	for i, frac := range lineLengths {
		y := lineStartY + i*lineSpacing
		if y+lineHeight > clipBottom-40 {
			break
		}
		right := left + int(float64(rightFull-left)*frac)
		paint.FillRoundedRect(canvas, image.Rect(left, y, right, y+lineHeight), lineRadius, lineColor)
	}
}

// drawBadge draws the green circle with a white checkmark at the
// clipboard's bottom-right corner. The line primitive only has flat caps,
// so a small disc is stamped at each vertex to fake round caps and joins.
func drawBadge(canvas *image.NRGBA) {
	const badgeR = 50
	cx := clipRight - 30
	cy := clipBottom - 30
	paint.FillEllipse(canvas, image.Rect(cx-badgeR, cy-badgeR, cx+badgeR, cy+badgeR), badgeColor)

	pts := [3]image.Point{
		{cx - 30, cy - 2},
		{cx - 10, cy + 22},
		{cx + 32, cy - 24},
	}
	paint.Line(canvas, pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, 14, white)
	paint.Line(canvas, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, 14, white)
	for _, p := range pts {
		paint.FillEllipse(canvas, image.Rect(p.X-7, p.Y-7, p.X+7, p.Y+7), white)
	}
}

// drawHighlight composites a soft specular glow near the top-left corner,
// built from 80 concentric discs that grow more transparent toward the
// center. Each disc overwrites the layer, so ring i keeps alpha
// 30·(1−i/80); the layer is then alpha-composited once.
func drawHighlight(canvas *image.NRGBA) {
	layer := image.NewNRGBA(canvas.Bounds())
	for i := 0; i < 80; i++ {
		alpha := uint8(int(30 * (1 - float64(i)/80)))
		box := image.Rect(padding/2-100+i, padding/2-100+i, padding/2+400-i, padding/2+400-i)
		paint.FillEllipse(layer, box, color.NRGBA{255, 255, 255, alpha})
	}
	draw.Draw(canvas, canvas.Bounds(), layer, image.Point{}, draw.Over)
}
