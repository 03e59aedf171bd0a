package streak

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// TrailEndpoint returns the screen point trailLength pixels from screen along
// the given heading (degrees, 0 = up, clockwise).
func TrailEndpoint(screen Vec2, direction, trailLength float64) Vec2 {
	rad := (direction - 90) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return screen.Add(Vec2{cos, sin}.Scale(trailLength))
}

// Reproject maps the trail endpoint back into world space at the object's
// projected depth. The returned error wraps ErrReprojectionFailed.
func Reproject(p Projector, screen Vec2, direction, trailLength, depth float64) (r3.Vec, error) {
	end := TrailEndpoint(screen, direction, trailLength)
	ray, err := p.Unproject(end)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%w: unproject (%.1f, %.1f): %v", ErrReprojectionFailed, end.X, end.Y, err)
	}
	if r3.Norm(ray.Direction) == 0 {
		return r3.Vec{}, fmt.Errorf("%w: degenerate ray at (%.1f, %.1f)", ErrReprojectionFailed, end.X, end.Y)
	}
	return ray.At(depth), nil
}
