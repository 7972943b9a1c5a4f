package image

import (
	"image"
	"runtime"
	"sync"

	"gocv.io/x/gocv"
)

// ToMatBGR converts a Go image to a 3-channel BGR mat (OpenCV's default
// channel order). Color channels are read straight (non-premultiplied) and
// any alpha in the source is ignored, so a translucent pixel contributes its
// stored color, not an alpha-scaled one. Parallelized by horizontal stripes.
func ToMatBGR(img image.Image) gocv.Mat {
	straight := ToNRGBA(img)
	width := straight.Rect.Dx()
	height := straight.Rect.Dy()

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)

	forEachStripe(height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			rowOffset := y * straight.Stride
			for x := 0; x < width; x++ {
				pixOffset := rowOffset + x*4
				mat.SetUCharAt(y, x*3+0, straight.Pix[pixOffset+2]) // B
				mat.SetUCharAt(y, x*3+1, straight.Pix[pixOffset+1]) // G
				mat.SetUCharAt(y, x*3+2, straight.Pix[pixOffset+0]) // R
			}
		}
	})

	return mat
}

// ToMatBGRA converts an RGBA image to a 4-channel BGRA mat, preserving the
// alpha channel.
func ToMatBGRA(img *image.RGBA) gocv.Mat {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC4)

	forEachStripe(height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			rowOffset := (y + bounds.Min.Y - img.Rect.Min.Y) * img.Stride
			for x := 0; x < width; x++ {
				pixOffset := rowOffset + (x+bounds.Min.X-img.Rect.Min.X)*4
				mat.SetUCharAt(y, x*4+0, img.Pix[pixOffset+2]) // B
				mat.SetUCharAt(y, x*4+1, img.Pix[pixOffset+1]) // G
				mat.SetUCharAt(y, x*4+2, img.Pix[pixOffset+0]) // R
				mat.SetUCharAt(y, x*4+3, img.Pix[pixOffset+3]) // A
			}
		}
	})

	return mat
}

// MatBGRAToRGBA converts a 4-channel BGRA mat back to *image.RGBA.
func MatBGRAToRGBA(mat gocv.Mat) *image.RGBA {
	h := mat.Rows()
	w := mat.Cols()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := img.Stride

	forEachStripe(h, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			rowOffset := y * stride
			for x := 0; x < w; x++ {
				pixOffset := rowOffset + x*4
				img.Pix[pixOffset+0] = mat.GetUCharAt(y, x*4+2) // R
				img.Pix[pixOffset+1] = mat.GetUCharAt(y, x*4+1) // G
				img.Pix[pixOffset+2] = mat.GetUCharAt(y, x*4+0) // B
				img.Pix[pixOffset+3] = mat.GetUCharAt(y, x*4+3) // A
			}
		}
	})

	return img
}

// AlphaToMat extracts the alpha channel of an RGBA image into a single-channel
// 8-bit mat.
func AlphaToMat(img *image.RGBA) gocv.Mat {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8U)

	forEachStripe(height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			rowOffset := (y + bounds.Min.Y - img.Rect.Min.Y) * img.Stride
			for x := 0; x < width; x++ {
				mat.SetUCharAt(y, x, img.Pix[rowOffset+(x+bounds.Min.X-img.Rect.Min.X)*4+3])
			}
		}
	})

	return mat
}

// forEachStripe runs fn over [0, height) split into one horizontal stripe per
// CPU and waits for all stripes to finish.
func forEachStripe(height int, fn func(yStart, yEnd int)) {
	numWorkers := runtime.NumCPU()
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= height {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			fn(yStart, yEnd)
		}(startY, endY)
	}
	wg.Wait()
}
