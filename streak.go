package streak

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default widget tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to an 8-bit premultiplied color for ebiten drawing calls.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for screen positions and screen-space displacement.
// Screen space has its origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// OptionalVec2 holds a screen position that may be absent. The zero value is
// absent. Used for "previous screen position", which is unknown for objects
// that were off-screen or just started being tracked.
type OptionalVec2 struct {
	v   Vec2
	set bool
}

// SomeVec2 returns a present OptionalVec2 holding v.
func SomeVec2(v Vec2) OptionalVec2 { return OptionalVec2{v: v, set: true} }

// NoVec2 returns an absent OptionalVec2.
func NoVec2() OptionalVec2 { return OptionalVec2{} }

// Get returns the held value and whether it is present.
func (o OptionalVec2) Get() (Vec2, bool) { return o.v, o.set }

// IsSet reports whether a value is present.
func (o OptionalVec2) IsSet() bool { return o.set }

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Projection is the result of projecting a world point onto the screen.
// Depth is the distance in front of the viewer along its forward axis; a
// non-positive depth means the point is behind the viewer.
type Projection struct {
	Screen Vec2
	Depth  float64
}

// Ray is a half-line in world space produced by inverse projection.
// Direction need not be normalized.
type Ray struct {
	Origin    r3.Vec
	Direction r3.Vec
}

// At returns the point at distance t along the normalized ray direction.
// Returns Origin when Direction has zero length.
func (r Ray) At(t float64) r3.Vec {
	n := r3.Norm(r.Direction)
	if n == 0 {
		return r.Origin
	}
	return r3.Add(r.Origin, r3.Scale(t/n, r.Direction))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
