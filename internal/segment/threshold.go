package segment

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// luminance returns the Rec.601 grayscale value of a pixel, matching the
// weighting RemoveBackground uses.
func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}

// SuggestThreshold estimates a background threshold by clustering sampled
// pixel luminances into two groups (background and foreground) and returning
// the midpoint between the cluster centers. Pixels are sampled on a stride
// grid so large images stay cheap; stride <= 0 selects a stride that keeps
// the sample near 10k pixels.
//
// The suggestion is a starting point for callers, not a contract: the caller
// still passes an explicit threshold to RemoveBackground.
func SuggestThreshold(img image.Image, stride int) (int, error) {
	bounds := img.Bounds()
	if stride <= 0 {
		stride = 1
		for (bounds.Dx()/stride)*(bounds.Dy()/stride) > 10000 {
			stride++
		}
	}

	var obs clusters.Observations
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			obs = append(obs, clusters.Coordinates{luminance(img.At(x, y))})
		}
	}
	if len(obs) < 2 {
		return 0, fmt.Errorf("image too small to estimate a threshold")
	}

	km := kmeans.New()
	cc, err := km.Partition(obs, 2)
	if err != nil {
		return 0, fmt.Errorf("luminance clustering failed: %w", err)
	}

	lo := cc[0].Center[0]
	hi := cc[1].Center[0]
	if lo > hi {
		lo, hi = hi, lo
	}

	return int((lo + hi) / 2), nil
}

// EstimateBackgroundColor returns the dominant color of the image. For
// artwork shot on a uniform backdrop this is the backdrop itself, so callers
// can warn when it is not near-black before thresholding.
func EstimateBackgroundColor(img image.Image) color.RGBA {
	return dominantcolor.Find(img)
}

// IsNearBlack reports whether a color's luminance falls at or below the given
// grayscale threshold.
func IsNearBlack(c color.Color, threshold int) bool {
	return luminance(c) <= float64(threshold)
}
