// Package pipeline composes the segmentation and spritesheet stages into the
// batch operations the CLIs expose, and owns the file-output policy: nothing
// is written until every required input and calibration is present.
package pipeline

import (
	"fmt"
	"image"

	"spritegen/internal/component"
	simg "spritegen/internal/image"
	"spritegen/internal/motion"
	"spritegen/internal/render"
	"spritegen/internal/segment"
	"spritegen/internal/sheet"

	"github.com/tanema/gween/ease"
)

// Frame count bounds enforced at the pipeline boundary. The sampler itself
// tolerates any n >= 1; these are the UI-facing limits.
const (
	MinFrames = 2
	MaxFrames = 256
)

func checkFrameCount(n int) error {
	if n < MinFrames || n > MaxFrames {
		return fmt.Errorf("frame count must be in [%d, %d], got %d", MinFrames, MaxFrames, n)
	}
	return nil
}

// SplitResult holds the outcome of segmenting an image and splitting it into
// components. Zero components is a valid outcome, not an error.
type SplitResult struct {
	Segmented  *image.RGBA
	Regions    []component.Region
	Foreground int // total foreground pixel count after segmentation
}

// Split runs segmentation then component extraction over one source image.
// The threshold is in the 0-255 grayscale domain.
func Split(src image.Image, threshold, minArea int) (*SplitResult, error) {
	segmented, err := segment.RemoveBackground(src, threshold)
	if err != nil {
		return nil, err
	}

	regions, err := component.Extract(segmented, minArea)
	if err != nil {
		return nil, err
	}

	return &SplitResult{
		Segmented:  segmented,
		Regions:    regions,
		Foreground: segment.ForegroundCount(segmented),
	}, nil
}

// RenderFaderSheet renders a fader spritesheet: n frames of the cap
// composited over the guide at the track's sampled vertical positions, packed
// per the layout. Frame dimensions equal the guide's.
func RenderFaderSheet(guide, capImg *image.RGBA, track motion.FaderTrack, n int,
	fn ease.TweenFunc, layout sheet.Layout, offset int) (*image.RGBA, error) {

	if err := checkFrameCount(n); err != nil {
		return nil, err
	}
	positions, err := track.Positions(n, fn)
	if err != nil {
		return nil, err
	}

	frames := make([]*image.RGBA, n)
	for i, y := range positions {
		frames[i] = render.FaderFrame(guide, capImg, track.CapX, y)
	}

	return sheet.Pack(frames, layout, offset)
}

// RenderKnobSheet renders a knob spritesheet: n frames of the knob rotated
// about the sweep's pivot by each sampled rotation, packed per the layout.
// Frame dimensions equal the knob image's.
func RenderKnobSheet(knob *image.RGBA, sweep motion.KnobSweep, n int,
	fn ease.TweenFunc, layout sheet.Layout, offset int) (*image.RGBA, error) {

	if err := checkFrameCount(n); err != nil {
		return nil, err
	}
	rotations, err := sweep.Rotations(n, fn)
	if err != nil {
		return nil, err
	}

	frames := make([]*image.RGBA, n)
	for i, rotation := range rotations {
		frames[i] = render.Rotate(knob, sweep.Pivot, rotation)
	}

	return sheet.Pack(frames, layout, offset)
}

// loadRGBA loads an image and normalizes it to RGBA.
func loadRGBA(path string) (*image.RGBA, error) {
	img, err := simg.Load(path)
	if err != nil {
		return nil, err
	}
	return simg.ToRGBA(img), nil
}
