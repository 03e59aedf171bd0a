package streak

import "gonum.org/v1/gonum/spatial/r3"

// MapOffset converts the world-space trail (from current to target) into a
// local-space attachment offset for an object with the given orientation.
//
// A zero-length trail has no direction; the offset then points along the
// object's local forward axis with magnitude BaseOffsetAlongTrail.
func MapOffset(cfg *Config, target, current r3.Vec, orientation r3.Rotation) r3.Vec {
	trail := r3.Sub(target, current)
	worldLen := r3.Norm(trail)

	dir := LocalForward
	if worldLen > 0 {
		dir = ToLocal(orientation, r3.Scale(1/worldLen, trail))
	}
	mag := cfg.BaseOffsetAlongTrail + worldLen*cfg.OffsetMultiplier
	return r3.Scale(mag, dir)
}

// WidthMultiplier maps a trail length onto [MinWidthMultiplier, MaxWidthMultiplier].
func WidthMultiplier(cfg *Config, trailLength float64) float64 {
	var norm float64
	if cfg.MaxTrailLength > cfg.MinTrailLength {
		norm = clamp01((trailLength - cfg.MinTrailLength) / (cfg.MaxTrailLength - cfg.MinTrailLength))
	} else if trailLength >= cfg.MaxTrailLength {
		norm = 1
	}
	return cfg.MinWidthMultiplier + norm*(cfg.MaxWidthMultiplier-cfg.MinWidthMultiplier)
}

// MapWidths returns the beam head and tail widths for a trail length.
func MapWidths(cfg *Config, trailLength float64) (w0, w1 float64) {
	m := WidthMultiplier(cfg, trailLength)
	return cfg.BaseBeamWidth0 * m, cfg.BaseBeamWidth1 * m
}
