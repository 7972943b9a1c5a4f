// Package render turns sampled motion parameters into finished frame bitmaps:
// a fader cap composited over its guide, or a knob rotated about its pivot.
package render

import (
	"image"
	"image/draw"
)

// FaderFrame renders one translation frame: a copy of the guide bitmap with
// the cap alpha-composited at (capX, capY). The frame always has the guide's
// dimensions; a cap pasted partly or wholly outside them is clipped, never
// resized.
func FaderFrame(guide, capImg *image.RGBA, capX, capY int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, guide.Bounds().Dx(), guide.Bounds().Dy()))
	draw.Draw(frame, frame.Bounds(), guide, guide.Bounds().Min, draw.Src)
	PasteOver(frame, capImg, capX, capY)
	return frame
}

// PasteOver source-over composites src onto dst at the given offset,
// clipping to dst bounds. Both images are premultiplied RGBA.
func PasteOver(dst, src *image.RGBA, offsetX, offsetY int) {
	srcBounds := src.Bounds()
	dstW := dst.Bounds().Dx()
	dstH := dst.Bounds().Dy()

	for y := 0; y < srcBounds.Dy(); y++ {
		dstY := y + offsetY
		if dstY < 0 || dstY >= dstH {
			continue
		}

		srcRow := (y + srcBounds.Min.Y - src.Rect.Min.Y) * src.Stride
		dstRow := dstY * dst.Stride

		for x := 0; x < srcBounds.Dx(); x++ {
			dstX := x + offsetX
			if dstX < 0 || dstX >= dstW {
				continue
			}

			s := srcRow + (x+srcBounds.Min.X-src.Rect.Min.X)*4
			d := dstRow + dstX*4

			sa := uint32(src.Pix[s+3])
			if sa == 0 {
				continue
			}
			if sa == 255 {
				copy(dst.Pix[d:d+4], src.Pix[s:s+4])
				continue
			}

			// Source-over on premultiplied channels.
			inv := 255 - sa
			for c := 0; c < 4; c++ {
				dst.Pix[d+c] = uint8(uint32(src.Pix[s+c]) + (uint32(dst.Pix[d+c])*inv+127)/255)
			}
		}
	}
}
