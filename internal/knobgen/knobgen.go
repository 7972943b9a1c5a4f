// Package knobgen procedurally draws sample knob images for exercising the
// rotation pipeline. Every style paints its pointer at the same baseline
// angle so the generated files share a -135 degree pointer calibration.
package knobgen

import (
	"image"
	"image/color"
	"math"

	simg "spritegen/internal/image"
	"spritegen/internal/render"
	"spritegen/pkg/geometry"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"
)

// DefaultPointerAngle is the baseline angle all generated knobs point at.
const DefaultPointerAngle = -135

// Sample pairs a generated knob with its output file name.
type Sample struct {
	Name  string
	Image *image.RGBA
}

// Samples generates the full sample knob set.
func Samples() []Sample {
	cyan := colorful.Hsv(186, 1, 1)
	magenta := colorful.Hsv(330, 1, 1)
	green := colorful.Hsv(144, 1, 1)

	return []Sample{
		{"knob_metallic.png", Metallic(128, DefaultPointerAngle)},
		{"knob_neon_cyan.png", Neon(128, DefaultPointerAngle, cyan)},
		{"knob_neon_magenta.png", Neon(128, DefaultPointerAngle, magenta)},
		{"knob_neon_green.png", Neon(128, DefaultPointerAngle, green)},
		{"knob_simple.png", Simple(128, DefaultPointerAngle)},
		{"knob_cyberpunk.png", Cyberpunk(128, DefaultPointerAngle)},
		{"knob_metallic_large.png", Metallic(200, DefaultPointerAngle)},
	}
}

// Metallic draws a brushed-metal knob: dark outer ring, radial gray gradient
// body, top-left highlight, red pointer with shadow, dark center cap.
func Metallic(size int, pointerAngle float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	outerRadius := center - 4
	innerRadius := outerRadius - 8
	pointerRadius := innerRadius - 6

	fillCircle(img, center, center, outerRadius, color.RGBA{40, 40, 45, 255})
	strokeCircle(img, center, center, outerRadius, 2, color.RGBA{20, 20, 25, 255})

	// Radial gradient body, light center to darker rim.
	for r := innerRadius; r > 0; r -= 2 {
		t := r / innerRadius
		gray := uint8(80 + 60*t)
		fillCircle(img, center, center, r, color.RGBA{gray, gray, gray + 5, 255})
	}

	highlightOffset := innerRadius / 3
	fillCircle(img, center-highlightOffset, center-highlightOffset, 12, color.RGBA{70, 70, 72, 100})

	p1, p2 := pointerSpan(geometry.NewPoint2D(center, center), pointerAngle, 10, pointerRadius)
	drawLine(img, p1.X+2, p1.Y+2, p2.X+2, p2.Y+2, 4, color.RGBA{18, 18, 21, 150}) // shadow
	drawLine(img, p1.X, p1.Y, p2.X, p2.Y, 3, color.RGBA{255, 80, 80, 255})
	drawLine(img, p1.X, p1.Y, p2.X, p2.Y, 1, color.RGBA{255, 150, 150, 255})

	fillCircle(img, center, center, 8, color.RGBA{50, 50, 55, 255})
	strokeCircle(img, center, center, 8, 1, color.RGBA{30, 30, 35, 255})

	return img
}

// Neon draws a glowing knob in the given neon color: dark face, bright outer
// ring, pointer with a blurred glow layer composited underneath.
func Neon(size int, pointerAngle float64, neon colorful.Color) *image.RGBA {
	// Draw on a padded canvas so the blur has room, then crop back.
	const pad = 20
	full := size + pad*2
	img := image.NewRGBA(image.Rect(0, 0, full, full))

	center := float64(full) / 2
	outerRadius := float64(size)/2 - 4
	innerRadius := outerRadius - 6
	pointerRadius := innerRadius - 8

	r, g, b := neon.RGB255()

	fillCircle(img, center, center, outerRadius+2, color.RGBA{15, 15, 20, 255})
	strokeCircle(img, center, center, outerRadius, 3, color.RGBA{r, g, b, 255})
	fillCircle(img, center, center, innerRadius, color.RGBA{20, 20, 25, 255})

	p1, p2 := pointerSpan(geometry.NewPoint2D(center, center), pointerAngle, 12, pointerRadius)
	drawLine(img, p1.X, p1.Y, p2.X, p2.Y, 3, color.RGBA{r, g, b, 255})
	drawLine(img, p1.X, p1.Y, p2.X, p2.Y, 1, color.RGBA{255, 255, 255, 200})
	fillCircle(img, center, center, 5, color.RGBA{r, g, b, 255})

	return cropCentered(withGlow(img, 4), pad, size)
}

// Simple draws a flat knob: plain disc, white pointer, center dot.
func Simple(size int, pointerAngle float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	outerRadius := center - 4
	pointerRadius := outerRadius - 12

	fillCircle(img, center, center, outerRadius, color.RGBA{60, 60, 65, 255})
	strokeCircle(img, center, center, outerRadius, 2, color.RGBA{80, 80, 85, 255})

	_, p2 := pointerSpan(geometry.NewPoint2D(center, center), pointerAngle, 0, pointerRadius)
	drawLine(img, center, center, p2.X, p2.Y, 3, color.RGBA{255, 255, 255, 255})

	fillCircle(img, center, center, 6, color.RGBA{40, 40, 45, 255})

	return img
}

// Cyberpunk draws a minimal knob with magenta accents, tick marks every 30
// degrees across the sweep range, and a thin glowing cyan pointer.
func Cyberpunk(size int, pointerAngle float64) *image.RGBA {
	const pad = 20
	full := size + pad*2
	img := image.NewRGBA(image.Rect(0, 0, full, full))

	center := float64(full) / 2
	outerRadius := float64(size)/2 - 6
	innerRadius := outerRadius - 15
	pointerRadius := innerRadius - 5

	cyan := color.RGBA{0, 255, 255, 255}
	magenta := color.RGBA{255, 0, 128, 180}

	fillCircle(img, center, center, outerRadius+2, color.RGBA{10, 10, 15, 255})
	strokeCircle(img, center, center, outerRadius, 2, magenta)
	strokeCircle(img, center, center, innerRadius, 1, color.RGBA{0, 255, 255, 150})

	c := geometry.NewPoint2D(center, center)
	for angle := -135.0; angle <= 135; angle += 30 {
		t1, t2 := pointerSpan(c, angle, outerRadius-4, outerRadius+2)
		drawLine(img, t1.X, t1.Y, t2.X, t2.Y, 1, color.RGBA{255, 0, 128, 200})
	}

	p1, p2 := pointerSpan(c, pointerAngle, 8, pointerRadius)
	drawLine(img, p1.X, p1.Y, p2.X, p2.Y, 2, cyan)
	fillCircle(img, center, center, 3, cyan)

	return cropCentered(withGlow(img, 3), pad, size)
}

// pointerSpan returns the inner and outer endpoints of a pointer ray leaving
// the knob center at the given angle in degrees.
func pointerSpan(center geometry.Point2D, degrees, innerR, outerR float64) (geometry.Point2D, geometry.Point2D) {
	dir := geometry.Rotation(degrees * math.Pi / 180)
	inner := center.Add(dir.Apply(geometry.NewPoint2D(innerR, 0)))
	outer := center.Add(dir.Apply(geometry.NewPoint2D(outerR, 0)))
	return inner, outer
}

// withGlow composites the artwork over a Gaussian-blurred copy of itself.
func withGlow(img *image.RGBA, sigma float64) *image.RGBA {
	mat := simg.ToMatBGRA(img)
	defer mat.Close()

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(mat, &blurred, image.Pt(0, 0), sigma, sigma, gocv.BorderDefault)

	out := simg.MatBGRAToRGBA(blurred)
	render.PasteOver(out, img, 0, 0)
	return out
}

// cropCentered cuts a size x size window starting at (pad, pad).
func cropCentered(img *image.RGBA, pad, size int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		srcOff := (y+pad)*img.Stride + pad*4
		dstOff := y * out.Stride
		copy(out.Pix[dstOff:dstOff+size*4], img.Pix[srcOff:srcOff+size*4])
	}
	return out
}

// setOver draws one straight-alpha pixel onto a premultiplied RGBA canvas.
func setOver(img *image.RGBA, x, y int, c color.RGBA) {
	bounds := img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Dx() || y >= bounds.Dy() {
		return
	}
	if c.A == 0 {
		return
	}

	off := y*img.Stride + x*4
	sa := uint32(c.A)
	sr := uint32(c.R) * sa / 255
	sg := uint32(c.G) * sa / 255
	sb := uint32(c.B) * sa / 255
	inv := 255 - sa

	img.Pix[off+0] = uint8(sr + (uint32(img.Pix[off+0])*inv+127)/255)
	img.Pix[off+1] = uint8(sg + (uint32(img.Pix[off+1])*inv+127)/255)
	img.Pix[off+2] = uint8(sb + (uint32(img.Pix[off+2])*inv+127)/255)
	img.Pix[off+3] = uint8(sa + (uint32(img.Pix[off+3])*inv+127)/255)
}

// fillCircle paints a filled disc centered at (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				setOver(img, int(cx)+dx, int(cy)+dy, c)
			}
		}
	}
}

// strokeCircle paints a circle outline of the given stroke width.
func strokeCircle(img *image.RGBA, cx, cy, radius float64, width int, c color.RGBA) {
	outer := radius + float64(width)/2
	inner := radius - float64(width)/2
	r := int(math.Ceil(outer))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := float64(dx*dx + dy*dy)
			if d2 <= outer*outer && d2 >= inner*inner {
				setOver(img, int(cx)+dx, int(cy)+dy, c)
			}
		}
	}
}

// drawLine paints a stroked segment by testing pixel distance to the segment.
func drawLine(img *image.RGBA, x1, y1, x2, y2 float64, width int, c color.RGBA) {
	half := float64(width) / 2
	minX := int(math.Floor(math.Min(x1, x2) - half))
	maxX := int(math.Ceil(math.Max(x1, x2) + half))
	minY := int(math.Floor(math.Min(y1, y2) - half))
	maxY := int(math.Ceil(math.Max(y1, y2) + half))

	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) - x1
			py := float64(y) - y1

			t := 0.0
			if lenSq > 0 {
				t = math.Max(0, math.Min(1, (px*dx+py*dy)/lenSq))
			}
			distX := px - t*dx
			distY := py - t*dy
			if distX*distX+distY*distY <= half*half {
				setOver(img, x, y, c)
			}
		}
	}
}
