// Package geom holds the screen-space rectangle type and the circle-approximation
// collision test shared by every entity.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from position and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the rectangle center.
// Half sizes use integer division to match sprite pixel alignment.
func (r Rect) Center() f64.Vec2 {
	return f64.Vec2{
		float64(r.X + r.W/2),
		float64(r.Y + r.H/2),
	}
}

// Radius returns the inscribed circle radius: the smaller of the half width and half height
func (r Rect) Radius() float64 {
	if r.W < r.H {
		return float64(r.W / 2)
	}
	return float64(r.H / 2)
}

// Collide reports whether a and b overlap when each is reduced to its inscribed circle.
// Corners of square sprites are under-detected; that is accepted.
func Collide(a, b Rect) bool {
	ca, cb := a.Center(), b.Center()
	return Distance(ca, cb) <= a.Radius()+b.Radius()
}

// Distance returns the Euclidean distance between two points
func Distance(a, b f64.Vec2) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Abs returns the absolute value of an int
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
