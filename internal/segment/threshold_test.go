package segment

import (
	"image"
	"image/color"
	"testing"
)

// --- SuggestThreshold ---

func TestSuggestThresholdBimodal(t *testing.T) {
	// Left half black, right half white: the suggestion must land well
	// between the two modes.
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(0)
			if x >= 20 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	got, err := SuggestThreshold(img, 1)
	if err != nil {
		t.Fatalf("SuggestThreshold returned error: %v", err)
	}
	if got < 64 || got > 192 {
		t.Errorf("SuggestThreshold = %d, want a value between the modes (64-192)", got)
	}
}

func TestSuggestThresholdTooSmall(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if _, err := SuggestThreshold(img, 1); err == nil {
		t.Error("SuggestThreshold on a single pixel = nil error, want error")
	}
}

// --- IsNearBlack ---

func TestIsNearBlack(t *testing.T) {
	tests := []struct {
		name      string
		c         color.RGBA
		threshold int
		want      bool
	}{
		{"pure black", color.RGBA{0, 0, 0, 255}, 60, true},
		{"dark gray", color.RGBA{40, 40, 40, 255}, 60, true},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 60, false},
		{"saturated blue is dark", color.RGBA{0, 0, 255, 255}, 60, true},
		{"green dominates luminance", color.RGBA{0, 255, 0, 255}, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNearBlack(tt.c, tt.threshold); got != tt.want {
				t.Errorf("IsNearBlack(%v, %d) = %v, want %v", tt.c, tt.threshold, got, tt.want)
			}
		})
	}
}

// --- EstimateBackgroundColor ---

func TestEstimateBackgroundColorDarkBackdrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{5, 5, 5, 255})
		}
	}
	for y := 20; y < 30; y++ {
		for x := 20; x < 30; x++ {
			img.SetNRGBA(x, y, color.NRGBA{250, 250, 250, 255})
		}
	}

	bg := EstimateBackgroundColor(img)
	if !IsNearBlack(bg, 60) {
		t.Errorf("dominant color %v of a mostly dark image is not near black", bg)
	}
}
