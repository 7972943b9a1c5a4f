// Package sheet arranges ordered, equally-sized animation frames into a
// single spritesheet bitmap.
package sheet

import (
	"fmt"
	"image"
	"image/draw"
)

// LayoutKind selects the frame arrangement strategy.
type LayoutKind int

const (
	Horizontal LayoutKind = iota
	Vertical
	Grid
)

func (k LayoutKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// Layout fully determines sheet dimensions and frame placement. It is a pure
// description: no dimension is ever inferred from rendered content.
type Layout struct {
	Kind    LayoutKind
	Columns int // Grid only
}

// ParseLayout resolves a CLI layout name. Columns is only consulted for
// "grid".
func ParseLayout(name string, columns int) (Layout, error) {
	switch name {
	case "horizontal":
		return Layout{Kind: Horizontal}, nil
	case "vertical":
		return Layout{Kind: Vertical}, nil
	case "grid":
		return Layout{Kind: Grid, Columns: columns}, nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q (want horizontal, vertical, or grid)", name)
	}
}

// Validate checks the layout is well-formed.
func (l Layout) Validate() error {
	switch l.Kind {
	case Horizontal, Vertical:
		return nil
	case Grid:
		if l.Columns < 1 {
			return fmt.Errorf("grid layout needs at least 1 column, got %d", l.Columns)
		}
		return nil
	default:
		return fmt.Errorf("unknown layout kind %d", int(l.Kind))
	}
}

// rows returns the number of grid rows for n frames.
func (l Layout) rows(n int) int {
	return (n + l.Columns - 1) / l.Columns
}

// Dimensions returns the exact sheet size for n frames of frameW x frameH
// with the given inter-frame pixel offset:
//
//	horizontal: (W*n + offset*(n-1)) x H
//	vertical:   W x (H*n + offset*(n-1))
//	grid:       (W*cols + offset*(cols-1)) x (H*rows + offset*(rows-1))
//	            with rows = ceil(n/cols)
func (l Layout) Dimensions(frameW, frameH, n, offset int) (width, height int) {
	switch l.Kind {
	case Horizontal:
		return frameW*n + offset*(n-1), frameH
	case Vertical:
		return frameW, frameH*n + offset*(n-1)
	default: // Grid
		rows := l.rows(n)
		return frameW*l.Columns + offset*(l.Columns-1), frameH*rows + offset*(rows-1)
	}
}

// Placement returns the top-left corner of frame i within the sheet.
func (l Layout) Placement(i, frameW, frameH, offset int) (x, y int) {
	switch l.Kind {
	case Horizontal:
		return i * (frameW + offset), 0
	case Vertical:
		return 0, i * (frameH + offset)
	default: // Grid
		col := i % l.Columns
		row := i / l.Columns
		return col * (frameW + offset), row * (frameH + offset)
	}
}

// Pack tiles the ordered frames into one sheet per the layout. The sheet
// background is fully transparent before any paste, and frames are pasted in
// index order. All frames must share identical dimensions.
func Pack(frames []*image.RGBA, layout Layout, offset int) (*image.RGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to pack")
	}
	if offset < 0 {
		return nil, fmt.Errorf("frame offset must be >= 0, got %d", offset)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	frameW := frames[0].Bounds().Dx()
	frameH := frames[0].Bounds().Dy()
	for i, frame := range frames[1:] {
		if frame.Bounds().Dx() != frameW || frame.Bounds().Dy() != frameH {
			return nil, fmt.Errorf("frame %d is %dx%d, want %dx%d",
				i+1, frame.Bounds().Dx(), frame.Bounds().Dy(), frameW, frameH)
		}
	}

	width, height := layout.Dimensions(frameW, frameH, len(frames), offset)
	out := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, frame := range frames {
		x, y := layout.Placement(i, frameW, frameH, offset)
		rect := image.Rect(x, y, x+frameW, y+frameH)
		draw.Draw(out, rect, frame, frame.Bounds().Min, draw.Src)
	}

	return out, nil
}
