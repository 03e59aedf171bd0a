package streak

import (
	"fmt"
	"math"
)

// Config holds every tuning parameter consumed by the tracker. A Config is
// copied into the Tracker at construction and never mutated afterwards.
type Config struct {
	// ScreenMovementModifier scales compensated screen displacement (pixels)
	// into trail length.
	ScreenMovementModifier float64
	// CameraMovementModifier scales camera displacement (world units) into
	// trail length.
	CameraMovementModifier float64

	// DistanceCompensation enables the distance multiplier curve.
	DistanceCompensation bool
	// DistanceScaleStart is the distance at which compensation begins.
	DistanceScaleStart float64
	// DistanceScaleMaxEffect is the distance at which MaxDistanceMultiplier
	// is reached.
	DistanceScaleMaxEffect float64
	// MaxDistanceMultiplier is the multiplier applied at or beyond
	// DistanceScaleMaxEffect.
	MaxDistanceMultiplier float64

	// MinTrailLength and MaxTrailLength clamp the trail length, in pixels.
	MinTrailLength float64
	MaxTrailLength float64

	// OffsetMultiplier scales the world-space trail length into the
	// attachment's local offset magnitude.
	OffsetMultiplier float64
	// BaseOffsetAlongTrail is added to the local offset magnitude.
	BaseOffsetAlongTrail float64

	// BaseBeamWidth0 and BaseBeamWidth1 are the unscaled beam widths at the
	// head and tail of the trail.
	BaseBeamWidth0 float64
	BaseBeamWidth1 float64
	// MinWidthMultiplier applies at MinTrailLength, MaxWidthMultiplier at
	// MaxTrailLength.
	MinWidthMultiplier float64
	MaxWidthMultiplier float64

	// EnableVisualizerUI selects the debug overlay strategy instead of
	// writing attachment offsets.
	EnableVisualizerUI bool
	// SpringDamping is the overlay spring damping ratio (1 = critical).
	SpringDamping float64
	// SpringFrequency is the overlay spring frequency in oscillations per second.
	SpringFrequency float64

	// MaxTrackers bounds the registry size. 0 means unbounded.
	MaxTrackers int

	// Debug logs per-frame stats through the tracker's logger.
	Debug bool
}

// DefaultConfig returns the tuning used by the bundled example.
func DefaultConfig() Config {
	return Config{
		ScreenMovementModifier: 1,
		CameraMovementModifier: 0.5,
		DistanceCompensation:   true,
		DistanceScaleStart:     100,
		DistanceScaleMaxEffect: 1000,
		MaxDistanceMultiplier:  4,
		MinTrailLength:         5,
		MaxTrailLength:         500,
		OffsetMultiplier:       1,
		BaseOffsetAlongTrail:   0,
		BaseBeamWidth0:         1,
		BaseBeamWidth1:         0.1,
		MinWidthMultiplier:     0.5,
		MaxWidthMultiplier:     2,
		SpringDamping:          1,
		SpringFrequency:        4,
	}
}

// Validate reports the first parameter that cannot produce sensible output.
// All returned errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ScreenMovementModifier", c.ScreenMovementModifier},
		{"CameraMovementModifier", c.CameraMovementModifier},
		{"DistanceScaleStart", c.DistanceScaleStart},
		{"DistanceScaleMaxEffect", c.DistanceScaleMaxEffect},
		{"MaxDistanceMultiplier", c.MaxDistanceMultiplier},
		{"MinTrailLength", c.MinTrailLength},
		{"MaxTrailLength", c.MaxTrailLength},
		{"OffsetMultiplier", c.OffsetMultiplier},
		{"BaseOffsetAlongTrail", c.BaseOffsetAlongTrail},
		{"BaseBeamWidth0", c.BaseBeamWidth0},
		{"BaseBeamWidth1", c.BaseBeamWidth1},
		{"MinWidthMultiplier", c.MinWidthMultiplier},
		{"MaxWidthMultiplier", c.MaxWidthMultiplier},
		{"SpringDamping", c.SpringDamping},
		{"SpringFrequency", c.SpringFrequency},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	if c.MinTrailLength < 0 {
		return fmt.Errorf("%w: MinTrailLength %v is negative", ErrInvalidConfig, c.MinTrailLength)
	}
	if c.MinTrailLength > c.MaxTrailLength {
		return fmt.Errorf("%w: MinTrailLength %v exceeds MaxTrailLength %v",
			ErrInvalidConfig, c.MinTrailLength, c.MaxTrailLength)
	}
	if c.BaseBeamWidth0 < 0 || c.BaseBeamWidth1 < 0 {
		return fmt.Errorf("%w: beam widths must be non-negative", ErrInvalidConfig)
	}
	if c.DistanceCompensation && c.MaxDistanceMultiplier < 1 {
		return fmt.Errorf("%w: MaxDistanceMultiplier %v is below 1", ErrInvalidConfig, c.MaxDistanceMultiplier)
	}
	if c.MaxTrackers < 0 {
		return fmt.Errorf("%w: MaxTrackers %d is negative", ErrInvalidConfig, c.MaxTrackers)
	}
	if c.EnableVisualizerUI {
		if c.SpringFrequency <= 0 {
			return fmt.Errorf("%w: SpringFrequency must be positive in overlay mode", ErrInvalidConfig)
		}
		if c.SpringDamping < 0 {
			return fmt.Errorf("%w: SpringDamping %v is negative", ErrInvalidConfig, c.SpringDamping)
		}
	}
	return nil
}
