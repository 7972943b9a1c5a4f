// Package segment separates foreground artwork from a uniform dark background
// by rewriting the alpha channel from a luminance threshold.
package segment

import (
	"fmt"
	"image"

	simg "spritegen/internal/image"

	"gocv.io/x/gocv"
)

// RemoveBackground classifies every pixel of src against a grayscale
// threshold and returns a new RGBA image whose alpha channel is the resulting
// mask: luminance strictly greater than threshold becomes fully opaque,
// everything else fully transparent. Color channels are read and copied
// straight (non-premultiplied), so a partially transparent source pixel keeps
// its stored color and is classified on that color, not on an alpha-scaled
// version. Any pre-existing alpha is discarded, not blended; the output alpha
// is always 0 or 255.
//
// Luminance is OpenCV's BGR-to-gray conversion (Rec.601 weights
// 0.299 R + 0.587 G + 0.114 B), so results are deterministic: the same input
// and threshold always produce byte-identical alpha.
//
// The threshold is in the 0-255 grayscale domain. Returns ErrInvalidFormat
// when src has fewer than three color channels.
func RemoveBackground(src image.Image, threshold int) (*image.RGBA, error) {
	if !simg.HasColor(src) {
		return nil, fmt.Errorf("%w: expected an RGB/RGBA image", simg.ErrInvalidFormat)
	}

	straight := simg.ToNRGBA(src)

	bgr := simg.ToMatBGR(straight)
	defer bgr.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(gray, &mask, float32(threshold), 255, gocv.ThresholdBinary)

	bounds := straight.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		srcRow := y * straight.Stride
		dstRow := y * out.Stride
		for x := 0; x < bounds.Dx(); x++ {
			s := srcRow + x*4
			d := dstRow + x*4
			out.Pix[d+0] = straight.Pix[s+0]
			out.Pix[d+1] = straight.Pix[s+1]
			out.Pix[d+2] = straight.Pix[s+2]
			out.Pix[d+3] = mask.GetUCharAt(y, x)
		}
	}

	return out, nil
}

// ForegroundCount returns the number of opaque pixels in a segmented image.
func ForegroundCount(img *image.RGBA) int {
	bounds := img.Bounds()
	count := 0
	for y := 0; y < bounds.Dy(); y++ {
		rowOffset := y * img.Stride
		for x := 0; x < bounds.Dx(); x++ {
			if img.Pix[rowOffset+x*4+3] > 0 {
				count++
			}
		}
	}
	return count
}
