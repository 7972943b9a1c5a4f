package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	simg "spritegen/internal/image"
	"spritegen/pkg/geometry"

	"gocv.io/x/gocv"
)

// Rotate returns src rotated about the pivot point (in source pixel
// coordinates) by the given angle in degrees, positive angles turning
// clockwise on screen. Resampling is bicubic and the alpha channel is
// interpolated along with the color channels.
//
// The output canvas keeps the input dimensions. Content carried outside the
// original bounds by a large pivot offset is clipped; exposed corners become
// fully transparent.
func Rotate(src *image.RGBA, pivot geometry.Point2D, degrees float64) *image.RGBA {
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()

	if degrees == 0 {
		out := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return out
	}

	transform := geometry.RotationAbout(pivot, degrees*math.Pi/180)

	mat := simg.ToMatBGRA(src)
	defer mat.Close()

	rotated := warpAffine(mat, transform, width, height)
	defer rotated.Close()

	return simg.MatBGRAToRGBA(rotated)
}

// warpAffine applies an affine transform to a BGRA mat with bicubic
// resampling, filling uncovered pixels with transparent black.
func warpAffine(src gocv.Mat, transform geometry.AffineTransform, width, height int) gocv.Mat {
	transformMat := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)
	transformMat.SetDoubleAt(0, 0, transform.A)
	transformMat.SetDoubleAt(0, 1, transform.B)
	transformMat.SetDoubleAt(0, 2, transform.TX)
	transformMat.SetDoubleAt(1, 0, transform.C)
	transformMat.SetDoubleAt(1, 1, transform.D)
	transformMat.SetDoubleAt(1, 2, transform.TY)
	defer transformMat.Close()

	dst := gocv.NewMat()
	gocv.WarpAffineWithParams(src, &dst, transformMat, image.Pt(width, height),
		gocv.InterpolationCubic, gocv.BorderConstant, color.RGBA{})

	return dst
}
