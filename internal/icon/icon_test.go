package icon

import (
	"image"
	"testing"
)

func TestDrawSize(t *testing.T) {
	img := Draw()
	if got := img.Bounds(); got != image.Rect(0, 0, 1024, 1024) {
		t.Fatalf("bounds = %v, want 1024x1024 at origin", got)
	}
}

func TestDrawCornersTransparent(t *testing.T) {
	img := Draw()
	// The rounded-square mask insets the artwork by padding/2; the canvas
	// corners stay fully transparent. (The top-left probe also sits outside
	// the highlight's outermost disc.)
	for _, p := range []image.Point{{0, 0}, {1023, 0}, {0, 1023}, {1023, 1023}} {
		if got := img.NRGBAAt(p.X, p.Y).A; got != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, got)
		}
	}
}

func TestDrawOpaqueElements(t *testing.T) {
	img := Draw()
	tests := []struct {
		name string
		x, y int
		want [4]uint8
	}{
		{"clipboard body between lines", 512, 500, [4]uint8{248, 248, 252, 255}},
		{"fastener above hole", 512, 235, [4]uint8{160, 168, 180, 255}},
		{"fastener hole", 512, 250, [4]uint8{120, 128, 140, 255}},
		{"badge clear of checkmark", 794, 820, [4]uint8{41, 182, 115, 255}},
		{"checkmark joint cap", 744, 842, [4]uint8{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got := img.NRGBAAt(tt.x, tt.y)
		if [4]uint8{got.R, got.G, got.B, got.A} != tt.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

// All seven placeholder lines fit above the bottom margin with the fixed
// geometry (370 + 6*52 + 14 = 696 <= 810), so every one must be drawn.
// Probes sit at x=460, right of the highlight overlay's reach (its outermost
// disc is centered at (200,200) with radius 250) and left of the shortest
// line's right edge (fraction 0.5 ends at x=512).
func TestDrawAllTextLines(t *testing.T) {
	img := Draw()
	for i := 0; i < len(lineLengths); i++ {
		y := lineStartY + i*lineSpacing + lineHeight/2
		got := img.NRGBAAt(460, y)
		if got != lineColor {
			t.Errorf("line %d at y=%d: %v, want %v", i+1, y, got, lineColor)
		}
	}
	// The gap below the last line is bare clipboard body.
	if got := img.NRGBAAt(460, 700); got != bodyColor {
		t.Errorf("gap below last line = %v, want %v", got, bodyColor)
	}
}

// The highlight composites last, over everything: where its rings cross the
// clipboard, line pixels read lighter than pure line color but stay opaque.
func TestDrawHighlightCoversClipboard(t *testing.T) {
	img := Draw()
	// (305, 377) is on line 1 and ~206 from the highlight center, inside
	// the outer rings.
	got := img.NRGBAAt(clipLeft+lineInset+5, lineStartY+lineHeight/2)
	if got.A != 255 {
		t.Fatalf("alpha = %d, want 255", got.A)
	}
	if got.R <= lineColor.R || got.G <= lineColor.G || got.B <= lineColor.B {
		t.Errorf("lit line pixel = %v, want all channels above %v", got, lineColor)
	}
}

// Line 4 uses fraction 0.6 of the inner width, so a probe past its right
// edge but inside line 1's extent must show body, not line color.
func TestDrawLineLengthsVary(t *testing.T) {
	img := Draw()
	y := lineStartY + 3*lineSpacing + lineHeight/2
	if got := img.NRGBAAt(600, y); got != bodyColor {
		t.Errorf("beyond short line 4 = %v, want body %v", got, bodyColor)
	}
	if got := img.NRGBAAt(600, lineStartY+lineHeight/2); got != lineColor {
		t.Errorf("inside full-width line 1 = %v, want %v", got, lineColor)
	}
}

// The shadow layer must darken the background it overlaps while keeping it
// opaque (alpha compositing, not overwrite).
func TestDrawShadowBlends(t *testing.T) {
	img := Draw()
	// Right of the body edge (784) but inside the shadow (<790), versus a
	// clear pixel on the same scanline.
	shadowed := img.NRGBAAt(787, 500)
	plain := img.NRGBAAt(797, 500)
	if shadowed.A != 255 {
		t.Fatalf("shadowed pixel alpha = %d, want 255", shadowed.A)
	}
	if shadowed.R >= plain.R || shadowed.G >= plain.G || shadowed.B >= plain.B {
		t.Errorf("shadowed %v is not darker than background %v", shadowed, plain)
	}
}

// The highlight layer must lighten the top-left background.
func TestDrawHighlightBlends(t *testing.T) {
	img := Draw()
	// Inside the highlight's outer rings, versus the same scanline outside.
	lit := img.NRGBAAt(405, 200)
	plain := img.NRGBAAt(700, 200)
	if lit.A != 255 {
		t.Fatalf("highlighted pixel alpha = %d, want 255", lit.A)
	}
	if lit.R <= plain.R {
		t.Errorf("highlighted R = %d, want > background R = %d", lit.R, plain.R)
	}
}

func TestDrawGradientRuns(t *testing.T) {
	img := Draw()
	// Background at x=700 is clear of every foreground element between the
	// mask top and the clipboard; blue should fade toward purple with depth.
	upper := img.NRGBAAt(700, 80)
	lower := img.NRGBAAt(700, 240)
	if upper.A != 255 || lower.A != 255 {
		t.Fatalf("background probes not opaque: %v, %v", upper, lower)
	}
	if lower.R <= upper.R {
		t.Errorf("R should rise with depth: %d then %d", upper.R, lower.R)
	}
	if lower.B >= upper.B {
		t.Errorf("B should fall with depth: %d then %d", upper.B, lower.B)
	}
}
