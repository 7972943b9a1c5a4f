// Command knobgen writes the procedurally drawn sample knob set to disk,
// ready to feed into knobsheet.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	simg "spritegen/internal/image"
	"spritegen/internal/knobgen"
)

func main() {
	outDir := flag.String("out", filepath.Join("output", "sample_knobs"), "Output directory")
	flag.Parse()

	samples := knobgen.Samples()
	for _, sample := range samples {
		path := filepath.Join(*outDir, sample.Name)
		if err := simg.WritePNG(path, sample.Image); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		bounds := sample.Image.Bounds()
		fmt.Printf("Wrote %s (%dx%d)\n", path, bounds.Dx(), bounds.Dy())
	}

	fmt.Printf("Generated %d sample knobs in %s\n", len(samples), *outDir)
	fmt.Printf("All pointers calibrated at %d degrees\n", knobgen.DefaultPointerAngle)
}
