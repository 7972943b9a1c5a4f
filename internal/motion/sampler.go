// Package motion produces the deterministic per-frame parameter sequences
// for fader (translation) and knob (rotation) animations.
package motion

import (
	"errors"
	"fmt"
	"math"

	"spritegen/pkg/geometry"

	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/floats"
)

// ErrMissingCalibration indicates a required motion parameter (an edge
// position, a sweep angle, or the rotation pivot) was never set. The pipeline
// refuses to default these silently.
var ErrMissingCalibration = errors.New("missing calibration")

// Unset marks a calibration field as not yet provided.
var Unset = math.NaN()

// Progress returns the n normalized progress values t_i = i/(n-1), endpoint
// inclusive. n = 1 degenerates to the single value 0; it never divides by
// zero. Callers bound n (the UI caps frame counts at 256).
func Progress(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("frame count must be >= 1, got %d", n)
	}
	if n == 1 {
		return []float64{0}, nil
	}
	ts := floats.Span(make([]float64, n), 0, 1)
	// The last frame must land exactly on t = 1 regardless of step rounding.
	ts[n-1] = 1
	return ts, nil
}

// applyEase maps a progress value through an easing curve. A nil curve is
// linear, which preserves t exactly.
func applyEase(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		return t
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// FaderTrack is the calibration for a linear fader sweep: the cap's vertical
// start and end positions and its fixed horizontal offset on the guide.
type FaderTrack struct {
	StartY float64
	EndY   float64
	CapX   int
}

// NewFaderTrack returns a track with both edges unset.
func NewFaderTrack() FaderTrack {
	return FaderTrack{StartY: Unset, EndY: Unset}
}

// Validate reports ErrMissingCalibration if either edge is unset.
func (tr FaderTrack) Validate() error {
	if math.IsNaN(tr.StartY) {
		return fmt.Errorf("%w: fader start edge", ErrMissingCalibration)
	}
	if math.IsNaN(tr.EndY) {
		return fmt.Errorf("%w: fader end edge", ErrMissingCalibration)
	}
	return nil
}

// Positions returns the cap's vertical position for each of n frames:
// y_i = round(start + t_i * (end - start)). Frame 0 lands exactly on the
// start edge and the last frame exactly on the end edge.
func (tr FaderTrack) Positions(n int, fn ease.TweenFunc) ([]int, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	ts, err := Progress(n)
	if err != nil {
		return nil, err
	}

	ys := make([]int, n)
	for i, t := range ts {
		y := tr.StartY + applyEase(fn, t)*(tr.EndY-tr.StartY)
		ys[i] = int(math.Round(y))
	}
	return ys, nil
}

// KnobSweep is the calibration for an angular knob sweep. Angles are degrees
// in screen coordinates (0 = right, positive = clockwise) and are unbounded:
// |EndAngle - StartAngle| > 360 deliberately forces the long way around.
// PointerAngle is the baseline angle at which the source image's indicator
// already points before any rotation.
type KnobSweep struct {
	StartAngle   float64
	EndAngle     float64
	PointerAngle float64
	Pivot        geometry.Point2D
}

// NewKnobSweep returns a sweep with all calibration unset.
func NewKnobSweep() KnobSweep {
	return KnobSweep{
		StartAngle:   Unset,
		EndAngle:     Unset,
		PointerAngle: Unset,
		Pivot:        geometry.Point2D{X: Unset, Y: Unset},
	}
}

// Validate reports ErrMissingCalibration if an angle or the pivot is unset.
func (s KnobSweep) Validate() error {
	if math.IsNaN(s.StartAngle) {
		return fmt.Errorf("%w: start angle", ErrMissingCalibration)
	}
	if math.IsNaN(s.EndAngle) {
		return fmt.Errorf("%w: end angle", ErrMissingCalibration)
	}
	if math.IsNaN(s.PointerAngle) {
		return fmt.Errorf("%w: pointer baseline angle", ErrMissingCalibration)
	}
	if math.IsNaN(s.Pivot.X) || math.IsNaN(s.Pivot.Y) {
		return fmt.Errorf("%w: rotation pivot", ErrMissingCalibration)
	}
	return nil
}

// Rotations returns the rotation to apply to the source image for each of n
// frames. The target angle interpolates from StartAngle to EndAngle, and the
// applied rotation is target - PointerAngle so the indicator lands exactly on
// target. Sweep magnitude is preserved verbatim; nothing is normalized into
// +/-360.
func (s KnobSweep) Rotations(n int, fn ease.TweenFunc) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ts, err := Progress(n)
	if err != nil {
		return nil, err
	}

	rotations := make([]float64, n)
	for i, t := range ts {
		target := s.StartAngle + applyEase(fn, t)*(s.EndAngle-s.StartAngle)
		rotations[i] = target - s.PointerAngle
	}
	return rotations, nil
}
