// Package paint provides the pixel-level draw primitives the icon is built
// from: rectangle, rounded rectangle, ellipse, thick line and a vertical
// gradient. All fills overwrite destination pixels (no blending) and clip to
// the destination bounds. Pixel inclusion is decided at pixel centers, so
// shapes have hard edges; compositing and softness happen a layer up.
package paint

import (
	"image"
	"image/color"
	"image/draw"
)

// FillRect fills the axis-aligned rectangle r with c.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// FillRoundedRect fills r with c, replacing each corner by a quarter-circle
// arc of the given radius. The fill is built from four quarter-disc corner
// fills plus three band rectangles (full-height middle band, left band,
// right band); together they cover the analytic rounded-rect region exactly,
// with no gap or visible seam at the corner boundaries. The caller must keep
// radius <= min(width, height)/2.
func FillRoundedRect(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	if radius <= 0 {
		FillRect(dst, r, c)
		return
	}

	// Corner quarter-discs. Each disc is centered on the inner corner of
	// its corner square.
	fr := float64(radius)
	fillQuarterDisc(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+radius, r.Min.Y+radius),
		float64(r.Min.X+radius), float64(r.Min.Y+radius), fr, c)
	fillQuarterDisc(dst, image.Rect(r.Max.X-radius, r.Min.Y, r.Max.X, r.Min.Y+radius),
		float64(r.Max.X-radius), float64(r.Min.Y+radius), fr, c)
	fillQuarterDisc(dst, image.Rect(r.Min.X, r.Max.Y-radius, r.Min.X+radius, r.Max.Y),
		float64(r.Min.X+radius), float64(r.Max.Y-radius), fr, c)
	fillQuarterDisc(dst, image.Rect(r.Max.X-radius, r.Max.Y-radius, r.Max.X, r.Max.Y),
		float64(r.Max.X-radius), float64(r.Max.Y-radius), fr, c)

	// Straight remainder: one full-height middle band plus the two side
	// bands between the corner arcs.
	FillRect(dst, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y), c)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y+radius, r.Min.X+radius, r.Max.Y-radius), c)
	FillRect(dst, image.Rect(r.Max.X-radius, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), c)
}

// fillQuarterDisc fills the pixels of sq whose centers lie within radius of
// (cx, cy).
func fillQuarterDisc(dst draw.Image, sq image.Rectangle, cx, cy, radius float64, c color.Color) {
	sq = sq.Intersect(dst.Bounds())
	rr := radius * radius
	for y := sq.Min.Y; y < sq.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := sq.Min.X; x < sq.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= rr {
				dst.Set(x, y, c)
			}
		}
	}
}

// FillEllipse fills the ellipse inscribed in r with c. Degenerate rectangles
// (zero width or height) draw nothing.
func FillEllipse(dst draw.Image, r image.Rectangle, c color.Color) {
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(r.Min.X) + rx
	cy := float64(r.Min.Y) + ry
	clip := r.Intersect(dst.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := clip.Min.X; x < clip.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				dst.Set(x, y, c)
			}
		}
	}
}

// Line fills a thick segment from (x1,y1) to (x2,y2) with flat caps: a pixel
// is covered when its center projects onto the segment and lies within
// width/2 of it. There are no round caps or joins; polyline callers stamp a
// small disc at each vertex instead (see the checkmark in internal/icon).
func Line(dst draw.Image, x1, y1, x2, y2, width int, c color.Color) {
	ax, ay := float64(x1), float64(y1)
	dx := float64(x2) - ax
	dy := float64(y2) - ay
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return
	}
	half := float64(width) / 2

	pad := width/2 + 1
	box := image.Rect(min(x1, x2)-pad, min(y1, y2)-pad, max(x1, x2)+pad, max(y1, y2)+pad)
	box = box.Intersect(dst.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		py := float64(y) + 0.5 - ay
		for x := box.Min.X; x < box.Max.X; x++ {
			px := float64(x) + 0.5 - ax
			t := (px*dx + py*dy) / len2
			if t < 0 || t > 1 {
				continue
			}
			ox := px - t*dx
			oy := py - t*dy
			if ox*ox+oy*oy <= half*half {
				dst.Set(x, y, c)
			}
		}
	}
}
