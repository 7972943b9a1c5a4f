package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"spritegen/internal/component"
	simg "spritegen/internal/image"
	"spritegen/internal/motion"
	"spritegen/internal/sheet"

	"github.com/tanema/gween/ease"
)

// ComponentExport describes the files written by ExportComponents.
type ComponentExport struct {
	SegmentedPath  string
	ComponentPaths []string
	CompositePath  string // empty when no components survived
	Foreground     int
}

// ExportComponents segments the source image, writes the background-removed
// version as <stem>_no_bg.png, and writes each surviving component as
// component_<n>.png (n starting at 1) plus a composite.png preview. Zero
// surviving components is reported through an empty ComponentPaths, with no
// component or composite files written.
func ExportComponents(inputPath, outDir string, threshold, minArea int) (*ComponentExport, error) {
	src, err := simg.Load(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := Split(src, threshold, minArea)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	export := &ComponentExport{
		SegmentedPath: filepath.Join(outDir, stem+"_no_bg.png"),
		Foreground:    result.Foreground,
	}

	if err := simg.WritePNG(export.SegmentedPath, result.Segmented); err != nil {
		return nil, err
	}

	for i, region := range result.Regions {
		path := filepath.Join(outDir, fmt.Sprintf("component_%d.png", i+1))
		if err := simg.WritePNG(path, region.Image); err != nil {
			return nil, err
		}
		export.ComponentPaths = append(export.ComponentPaths, path)
	}

	if len(result.Regions) > 0 {
		bounds := result.Segmented.Bounds()
		composite := component.Composite(result.Regions, bounds.Dx(), bounds.Dy())
		export.CompositePath = filepath.Join(outDir, "composite.png")
		if err := simg.WritePNG(export.CompositePath, composite); err != nil {
			return nil, err
		}
	}

	return export, nil
}

// ExportFaderSheet renders and writes a fader spritesheet. The output name
// reflects the frame count and orientation, e.g.
// fader_spritesheet_32_horizontal.png. Nothing is written when the track
// calibration is incomplete.
func ExportFaderSheet(guidePath, capPath, outDir string, track motion.FaderTrack,
	frames int, fn ease.TweenFunc, layout sheet.Layout, offset int) (string, error) {

	// Refuse before any file I/O so a half-calibrated export leaves no artifact.
	if err := track.Validate(); err != nil {
		return "", err
	}
	if err := layout.Validate(); err != nil {
		return "", err
	}

	guide, err := loadRGBA(guidePath)
	if err != nil {
		return "", err
	}
	capImg, err := loadRGBA(capPath)
	if err != nil {
		return "", err
	}

	packed, err := RenderFaderSheet(guide, capImg, track, frames, fn, layout, offset)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("fader_spritesheet_%d_%s.png", frames, layout.Kind)
	path := filepath.Join(outDir, name)
	if err := simg.WritePNG(path, packed); err != nil {
		return "", err
	}

	return path, nil
}

// ExportKnobSheet renders and writes a knob rotation spritesheet as
// knob_spritesheet.png. When reverse is set, the sweep's end angle is first
// shifted a full turn against the arc direction so the knob travels the long
// way around. Nothing is written when the sweep calibration is incomplete.
func ExportKnobSheet(knobPath, outDir string, sweep motion.KnobSweep, reverse bool,
	frames int, fn ease.TweenFunc, layout sheet.Layout, offset int) (string, error) {

	if err := sweep.Validate(); err != nil {
		return "", err
	}
	if err := layout.Validate(); err != nil {
		return "", err
	}
	if reverse {
		sweep.EndAngle = motion.ReverseDirection(sweep.StartAngle, sweep.EndAngle)
	}

	knob, err := loadRGBA(knobPath)
	if err != nil {
		return "", err
	}

	packed, err := RenderKnobSheet(knob, sweep, frames, fn, layout, offset)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, "knob_spritesheet.png")
	if err := simg.WritePNG(path, packed); err != nil {
		return "", err
	}

	return path, nil
}
