// Package geometry provides the basic geometric value types shared by the
// segmentation and spritesheet pipelines.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	d := other.Sub(p)
	return math.Hypot(d.X, d.Y)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// AngleTo returns the angle in degrees from p to other, measured from the
// positive X axis with Y pointing down, so positive angles sweep clockwise
// on screen. This is the convention used for knob pointer angles.
func (p Point2D) AngleTo(other Point2D) float64 {
	d := other.Sub(p)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// RectInt represents an axis-aligned rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the rectangle's pixel area.
func (r RectInt) Area() int {
	return r.Width * r.Height
}

// Contains returns true if the pixel (x, y) lies inside the rectangle.
func (r RectInt) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
