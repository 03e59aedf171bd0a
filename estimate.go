package streak

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// jitterThreshold is the screen displacement in pixels below which the trail
// direction is held rather than recomputed from noise.
const jitterThreshold = 0.1

// TrailEstimate is the screen-space result of EstimateTrail.
type TrailEstimate struct {
	// Length is the clamped trail length in pixels.
	Length float64
	// Direction is the trail heading in degrees. 0 points up the screen
	// (negative Y) and angles increase clockwise.
	Direction float64
	// ScreenMagnitude is the raw, uncompensated screen displacement.
	ScreenMagnitude float64
	// Moved reports whether ScreenMagnitude exceeded the jitter threshold,
	// i.e. whether Direction was recomputed this frame.
	Moved bool
}

// TrailInput gathers the per-object values EstimateTrail reads.
type TrailInput struct {
	Screen     Vec2
	PrevScreen OptionalVec2
	// Distance is the camera-to-object distance in world units.
	Distance   float64
	Camera     r3.Vec
	PrevCamera r3.Vec
	// LastDirection is carried forward when the object barely moved.
	LastDirection float64
}

// EstimateTrail combines compensated screen displacement and camera
// displacement into a clamped trail length, and derives the trail heading.
func EstimateTrail(cfg *Config, in TrailInput) TrailEstimate {
	var disp Vec2
	if prev, ok := in.PrevScreen.Get(); ok {
		disp = in.Screen.Sub(prev)
	}
	screenMag := disp.Len()

	scaled := screenMag * DistanceMultiplier(cfg, in.Distance)
	cameraMag := r3.Norm(r3.Sub(in.Camera, in.PrevCamera))

	combined := scaled*cfg.ScreenMovementModifier + cameraMag*cfg.CameraMovementModifier
	est := TrailEstimate{
		Length:          clamp(combined, cfg.MinTrailLength, cfg.MaxTrailLength),
		Direction:       in.LastDirection,
		ScreenMagnitude: screenMag,
	}
	if screenMag > jitterThreshold {
		est.Direction = math.Atan2(disp.Y, disp.X)*180/math.Pi + 90
		est.Moved = true
	}
	return est
}
