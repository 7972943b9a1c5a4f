// Command knobsheet renders a knob rotation spritesheet: a knob image swept
// about a pivot point between two angles, its pointer corrected for where it
// already points in the source artwork.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	simg "spritegen/internal/image"
	"spritegen/internal/motion"
	"spritegen/internal/pipeline"
	"spritegen/internal/sheet"
	"spritegen/pkg/geometry"
)

func main() {
	knobPath := flag.String("knob", "", "Path to the knob image")
	pivotX := flag.Float64("pivot-x", math.NaN(), "Rotation pivot X (default: image center)")
	pivotY := flag.Float64("pivot-y", math.NaN(), "Rotation pivot Y (default: image center)")
	startAngle := flag.Float64("start-angle", -135, "Sweep start angle in degrees")
	endAngle := flag.Float64("end-angle", 135, "Sweep end angle in degrees")
	pointerAngle := flag.Float64("pointer-angle", -135, "Angle the pointer already points at in the source image")
	pointerAtX := flag.Float64("pointer-at-x", math.NaN(), "X of a point on the pointer; with -pointer-at-y, overrides -pointer-angle")
	pointerAtY := flag.Float64("pointer-at-y", math.NaN(), "Y of a point on the pointer; with -pointer-at-x, overrides -pointer-angle")
	reverse := flag.Bool("reverse", false, "Sweep the long way around the circle")
	frames := flag.Int("frames", 64, "Number of frames (2-256)")
	layoutName := flag.String("layout", "grid", "Sheet layout: horizontal, vertical, or grid")
	columns := flag.Int("columns", 8, "Grid columns (grid layout only, 1-32)")
	offset := flag.Int("offset", 0, "Pixels between frames (0-512)")
	easeName := flag.String("ease", "linear", "Easing curve for the sweep")
	outDir := flag.String("out", "output", "Output directory")
	flag.Parse()

	if *knobPath == "" {
		fmt.Println("Usage: knobsheet -knob <path> [-pivot-x <x> -pivot-y <y>] [-start-angle -135] [-end-angle 135] [options]")
		os.Exit(1)
	}
	if !simg.IsSupportedFormat(*knobPath) {
		fmt.Fprintf(os.Stderr, "Unsupported image format %q (supported: %s)\n",
			filepath.Ext(*knobPath), strings.Join(simg.SupportedFormats(), " "))
		os.Exit(1)
	}
	if *offset < 0 || *offset > 512 {
		fmt.Fprintf(os.Stderr, "Offset must be in 0-512, got %d\n", *offset)
		os.Exit(1)
	}
	if *layoutName == "grid" && (*columns < 1 || *columns > 32) {
		fmt.Fprintf(os.Stderr, "Grid columns must be in 1-32, got %d\n", *columns)
		os.Exit(1)
	}

	layout, err := sheet.ParseLayout(*layoutName, *columns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	easing, err := motion.EasingByName(*easeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// An unset pivot falls back to the image center, announced rather than
	// silent. Explicit pivots pass through untouched.
	pivot := geometry.NewPoint2D(*pivotX, *pivotY)
	if math.IsNaN(pivot.X) || math.IsNaN(pivot.Y) {
		w, h, err := simg.Dimensions(*knobPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read knob image size: %v\n", err)
			os.Exit(1)
		}
		pivot = geometry.NewPoint2D(float64(w)/2, float64(h)/2)
		fmt.Printf("Pivot defaulted to image center (%.1f, %.1f)\n", pivot.X, pivot.Y)
	}

	// The baseline can be calibrated from any point along the indicator,
	// mirroring click-to-calibrate: the angle from the pivot to that point.
	baseline := *pointerAngle
	if !math.IsNaN(*pointerAtX) || !math.IsNaN(*pointerAtY) {
		if math.IsNaN(*pointerAtX) || math.IsNaN(*pointerAtY) {
			fmt.Fprintln(os.Stderr, "Both -pointer-at-x and -pointer-at-y are needed to calibrate from a point")
			os.Exit(1)
		}
		tip := geometry.NewPoint2D(*pointerAtX, *pointerAtY)
		if pivot.Distance(tip) == 0 {
			fmt.Fprintln(os.Stderr, "Pointer calibration point must not coincide with the pivot")
			os.Exit(1)
		}
		baseline = pivot.AngleTo(tip)
		fmt.Printf("Pointer baseline calibrated to %.1f degrees\n", baseline)
	}

	sweep := motion.KnobSweep{
		StartAngle:   *startAngle,
		EndAngle:     *endAngle,
		PointerAngle: baseline,
		Pivot:        pivot,
	}

	path, err := pipeline.ExportKnobSheet(*knobPath, *outDir, sweep, *reverse,
		*frames, easing, layout, *offset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d frames to %s\n", *frames, path)
}
