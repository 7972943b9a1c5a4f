// Package image provides image loading, pixel-format normalization, PNG
// output, and conversion between Go images and OpenCV mats.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrNotFound indicates the source path does not resolve to a readable image.
var ErrNotFound = errors.New("image not found")

// ErrInvalidFormat indicates a decoded image lacks the channels a pipeline
// stage requires (e.g. no color channels, or no alpha channel).
var ErrInvalidFormat = errors.New("invalid image format")

// Load reads and decodes an image from the given path.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	return img, nil
}

// Dimensions reads just enough of the file at path to report the image's
// pixel width and height, without decoding pixel data.
func Dimensions(path string) (width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	return cfg.Width, cfg.Height, nil
}

// ToRGBA converts any decoded image to *image.RGBA with a zero origin.
// The result is a fresh copy; the source is never aliased.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// ToNRGBA converts any decoded image to *image.NRGBA with a zero origin.
// Channels stay straight (non-premultiplied), so a partially transparent
// pixel keeps its stored color values instead of an alpha-scaled copy.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// HasColor reports whether the image carries at least three color channels.
// Grayscale and alpha-only images do not.
func HasColor(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return false
	}
	return true
}

// HasAlpha reports whether the image's pixel format carries an alpha channel.
// JPEG decodes to YCbCr and grayscale formats have no alpha.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}

// WritePNG writes an image to the given path as PNG, creating parent
// directories as needed. Failures propagate to the caller; nothing is retried.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return nil
}

// SupportedFormats returns the list of supported input image extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
