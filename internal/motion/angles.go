package motion

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// ReverseDirection returns a replacement end angle that makes interpolation
// from start sweep the other way around the circle: the end angle shifts by a
// full turn against the current arc direction. Applying it twice returns the
// end angle to its original value modulo 360.
func ReverseDirection(start, end float64) float64 {
	if end-start > 0 {
		return end - 360
	}
	return end + 360
}

// FlipAngle adds a half turn to an angle, wrapping back by a full turn when
// the result leaves the +/-720 working range used for sweep calibration.
func FlipAngle(angle float64) float64 {
	angle += 180
	if angle > 720 {
		angle -= 360
	}
	if angle < -720 {
		angle += 360
	}
	return angle
}

// EasingByName resolves a CLI-friendly easing name to its curve. The empty
// string and "linear" both mean no easing. Returns an error for unknown
// names so a typo never silently falls back to linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	switch name {
	case "", "linear":
		return nil, nil
	case "in-quad":
		return ease.InQuad, nil
	case "out-quad":
		return ease.OutQuad, nil
	case "in-out-quad":
		return ease.InOutQuad, nil
	case "in-cubic":
		return ease.InCubic, nil
	case "out-cubic":
		return ease.OutCubic, nil
	case "in-out-cubic":
		return ease.InOutCubic, nil
	case "in-sine":
		return ease.InSine, nil
	case "out-sine":
		return ease.OutSine, nil
	case "in-out-sine":
		return ease.InOutSine, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}
