package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// --- PasteOver ---

func TestPasteOverOpaque(t *testing.T) {
	dst := solid(8, 8, color.RGBA{0, 0, 255, 255})
	src := solid(2, 2, color.RGBA{255, 0, 0, 255})

	PasteOver(dst, src, 3, 3)

	if got := dst.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pasted pixel = %v, want opaque red", got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("untouched pixel = %v, want opaque blue", got)
	}
	if got := dst.RGBAAt(5, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel past paste region = %v, want opaque blue", got)
	}
}

func TestPasteOverTransparentSourceSkipped(t *testing.T) {
	dst := solid(4, 4, color.RGBA{0, 0, 255, 255})
	src := image.NewRGBA(image.Rect(0, 0, 4, 4)) // all zero

	PasteOver(dst, src, 0, 0)

	if got := dst.RGBAAt(2, 2); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel under transparent source = %v, want opaque blue", got)
	}
}

func TestPasteOverBlends(t *testing.T) {
	dst := solid(1, 1, color.RGBA{0, 0, 255, 255})
	// Half-transparent red, premultiplied.
	src := solid(1, 1, color.RGBA{128, 0, 0, 128})

	PasteOver(dst, src, 0, 0)

	got := dst.RGBAAt(0, 0)
	if got.R != 128 {
		t.Errorf("blended red = %d, want 128", got.R)
	}
	if got.B != 127 {
		t.Errorf("blended blue = %d, want 127", got.B)
	}
	if got.A != 255 {
		t.Errorf("blended alpha = %d, want 255", got.A)
	}
}

func TestPasteOverClipsToDestination(t *testing.T) {
	dst := solid(4, 4, color.RGBA{0, 0, 255, 255})
	src := solid(4, 4, color.RGBA{255, 0, 0, 255})

	// Hanging off every edge must clip, never panic or resize.
	PasteOver(dst, src, -2, -2)
	PasteOver(dst, src, 3, 3)

	if got := dst.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("clipped top-left paste pixel = %v, want red", got)
	}
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("clipped bottom-right paste pixel = %v, want red", got)
	}
	if got := dst.RGBAAt(2, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel outside both pastes = %v, want blue", got)
	}
}

// --- FaderFrame ---

func TestFaderFrame(t *testing.T) {
	guide := solid(8, 16, color.RGBA{0, 255, 0, 255})
	capImg := solid(4, 4, color.RGBA{255, 0, 0, 255})

	frame := FaderFrame(guide, capImg, 2, 6)

	if got := frame.Bounds(); got.Dx() != 8 || got.Dy() != 16 {
		t.Fatalf("frame is %dx%d, want guide dimensions 8x16", got.Dx(), got.Dy())
	}
	if got := frame.RGBAAt(3, 7); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("cap pixel = %v, want red", got)
	}
	if got := frame.RGBAAt(0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("guide pixel = %v, want green", got)
	}
	// The guide itself stays untouched.
	if got := guide.RGBAAt(3, 7); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("source guide mutated: pixel = %v, want green", got)
	}
}

func TestFaderFrameCapClipped(t *testing.T) {
	guide := solid(8, 8, color.RGBA{0, 255, 0, 255})
	capImg := solid(4, 4, color.RGBA{255, 0, 0, 255})

	frame := FaderFrame(guide, capImg, 6, -2)

	if got := frame.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("frame is %dx%d, want 8x8", got.Dx(), got.Dy())
	}
	if got := frame.RGBAAt(7, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("visible cap corner = %v, want red", got)
	}
	if got := frame.RGBAAt(0, 7); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("far guide pixel = %v, want green", got)
	}
}
