package image

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// --- Load / WritePNG ---

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestWritePNGLoadRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 5))
	src.SetRGBA(3, 2, color.RGBA{200, 100, 50, 255})

	// WritePNG creates missing parent directories.
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := WritePNG(path, src); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := loaded.Bounds(); got.Dx() != 7 || got.Dy() != 5 {
		t.Fatalf("loaded image is %dx%d, want 7x5", got.Dx(), got.Dy())
	}
	if got := ToRGBA(loaded).RGBAAt(3, 2); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("round-tripped pixel = %v, want {200 100 50 255}", got)
	}
}

// --- Dimensions ---

func TestDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "size.png")
	if err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, 7, 5))); err != nil {
		t.Fatal(err)
	}

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions returned error: %v", err)
	}
	if w != 7 || h != 5 {
		t.Errorf("Dimensions = %dx%d, want 7x5", w, h)
	}
}

func TestDimensionsMissingFile(t *testing.T) {
	_, _, err := Dimensions(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

// --- ToRGBA ---

func TestToRGBAZeroOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 15))
	src.SetRGBA(12, 11, color.RGBA{9, 8, 7, 255})

	dst := ToRGBA(src)
	if got := dst.Bounds(); got.Min.X != 0 || got.Min.Y != 0 || got.Dx() != 10 || got.Dy() != 5 {
		t.Fatalf("bounds = %v, want (0,0)-(10,5)", got)
	}
	if got := dst.RGBAAt(2, 1); got != (color.RGBA{9, 8, 7, 255}) {
		t.Errorf("translated pixel = %v, want {9 8 7 255}", got)
	}
}

func TestToRGBAIsACopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst := ToRGBA(src)
	dst.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	if got := src.RGBAAt(0, 0); got.R != 0 {
		t.Errorf("mutating the copy changed the source: %v", got)
	}
}

// --- ToNRGBA ---

func TestToNRGBAKeepsStraightChannels(t *testing.T) {
	// Translucent pixels keep their stored color instead of an
	// alpha-scaled copy.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 150, 100, 50})

	dst := ToNRGBA(src)
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{200, 150, 100, 50}) {
		t.Errorf("pixel = %v, want {200 150 100 50}", got)
	}
}

// --- Format predicates ---

func TestHasColor(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), true},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), true},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444), true},
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), false},
		{"gray16", image.NewGray16(image.Rect(0, 0, 1, 1)), false},
		{"alpha only", image.NewAlpha(image.Rect(0, 0, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasColor(tt.img); got != tt.want {
				t.Errorf("HasColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAlpha(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), true},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), true},
		{"nrgba64", image.NewNRGBA64(image.Rect(0, 0, 1, 1)), true},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444), false},
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAlpha(tt.img); got != tt.want {
				t.Errorf("HasAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"knob.png", true},
		{"photo.JPG", true},
		{"scan.tiff", true},
		{"anim.gif", true},
		{"pic.bmp", true},
		{"notes.txt", false},
		{"archive.webp", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFormat(tt.path); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
