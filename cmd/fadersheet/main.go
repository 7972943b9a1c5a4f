// Command fadersheet renders a fader animation spritesheet: a cap image
// sliding over a guide image between two calibrated edge positions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	simg "spritegen/internal/image"
	"spritegen/internal/motion"
	"spritegen/internal/pipeline"
	"spritegen/internal/sheet"
)

func main() {
	guidePath := flag.String("guide", "", "Path to the guide/slider image")
	capPath := flag.String("cap", "", "Path to the fader cap image")
	startY := flag.Float64("start-y", motion.Unset, "Cap Y position at the start edge (required)")
	endY := flag.Float64("end-y", motion.Unset, "Cap Y position at the end edge (required)")
	capX := flag.Int("cap-x", 0, "Fixed cap X offset on the guide")
	frames := flag.Int("frames", 32, "Number of frames (2-256)")
	layoutName := flag.String("layout", "horizontal", "Sheet layout: horizontal, vertical, or grid")
	columns := flag.Int("columns", 8, "Grid columns (grid layout only, 1-32)")
	offset := flag.Int("offset", 0, "Pixels between frames (0-512)")
	easeName := flag.String("ease", "linear", "Easing curve for the motion")
	outDir := flag.String("out", "output", "Output directory")
	flag.Parse()

	if *guidePath == "" || *capPath == "" {
		fmt.Println("Usage: fadersheet -guide <path> -cap <path> -start-y <y> -end-y <y> [options]")
		os.Exit(1)
	}
	for _, path := range []string{*guidePath, *capPath} {
		if !simg.IsSupportedFormat(path) {
			fmt.Fprintf(os.Stderr, "Unsupported image format %q (supported: %s)\n",
				filepath.Ext(path), strings.Join(simg.SupportedFormats(), " "))
			os.Exit(1)
		}
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

	track := motion.FaderTrack{StartY: *startY, EndY: *endY, CapX: *capX}

	path, err := pipeline.ExportFaderSheet(*guidePath, *capPath, *outDir,
		track, *frames, easing, layout, *offset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d frames to %s\n", *frames, path)
}
