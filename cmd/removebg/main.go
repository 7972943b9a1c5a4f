// Command removebg removes the dark background from an image and splits the
// result into separate component images.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	simg "spritegen/internal/image"
	"spritegen/internal/pipeline"
	"spritegen/internal/segment"
)

func main() {
	imagePath := flag.String("image", "", "Path to the input image (PNG, JPEG, BMP, GIF, or TIFF)")
	outDir := flag.String("out", "output", "Directory where processed images are written")
	threshold := flag.Int("threshold", 10, "Grayscale threshold 0-100: pixels at or below it become transparent")
	minArea := flag.Int("min-area", 2000, "Minimum pixel area for a component to be kept")
	autoThreshold := flag.Bool("auto-threshold", false, "Estimate the threshold from the image instead of -threshold")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: removebg -image <path> [-out output] [-threshold 10] [-min-area 2000] [-auto-threshold]")
		os.Exit(1)
	}
	if !simg.IsSupportedFormat(*imagePath) {
		fmt.Fprintf(os.Stderr, "Unsupported image format %q (supported: %s)\n",
			filepath.Ext(*imagePath), strings.Join(simg.SupportedFormats(), " "))
		os.Exit(1)
	}
	if *threshold < 0 || *threshold > 100 {
		fmt.Fprintf(os.Stderr, "Threshold must be in 0-100, got %d\n", *threshold)
		os.Exit(1)
	}
	if *minArea < 0 || *minArea > 100000 {
		fmt.Fprintf(os.Stderr, "Min area must be in 0-100000, got %d\n", *minArea)
		os.Exit(1)
	}

	src, err := simg.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := src.Bounds()
	fmt.Printf("Loaded %s: %dx%d pixels\n", *imagePath, bounds.Dx(), bounds.Dy())

	if bg := segment.EstimateBackgroundColor(src); !segment.IsNearBlack(bg, 60) {
		fmt.Printf("Warning: dominant color is #%02x%02x%02x; background removal expects dark backdrops\n",
			bg.R, bg.G, bg.B)
	}

	if *autoThreshold {
		suggested, err := segment.SuggestThreshold(src, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Threshold estimation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Estimated threshold: %d\n", suggested)
		*threshold = suggested
	}

	result, err := pipeline.ExportComponents(*imagePath, *outDir, *threshold, *minArea)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Foreground pixels: %d\n", result.Foreground)
	fmt.Printf("Saved background-removed image: %s\n", result.SegmentedPath)

	if len(result.ComponentPaths) == 0 {
		fmt.Println("No components found (check threshold/min-area settings)")
		return
	}

	fmt.Printf("Saved %d components:\n", len(result.ComponentPaths))
	for _, path := range result.ComponentPaths {
		fmt.Printf("  - %s\n", path)
	}
	fmt.Printf("Saved composite preview: %s\n", result.CompositePath)
}
