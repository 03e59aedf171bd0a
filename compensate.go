package streak

// DistanceMultiplier maps camera-to-object distance to a multiplier >= 1 that
// offsets perspective foreshortening: far objects move fewer pixels per frame
// for the same world speed, so their screen displacement is scaled up.
//
// Between DistanceScaleStart and DistanceScaleMaxEffect the multiplier rises
// linearly from 1 to MaxDistanceMultiplier. When the thresholds are
// degenerate (MaxEffect <= Start) the curve becomes a step at MaxEffect.
func DistanceMultiplier(cfg *Config, distance float64) float64 {
	if !cfg.DistanceCompensation {
		return 1
	}

	start, end := cfg.DistanceScaleStart, cfg.DistanceScaleMaxEffect
	if end <= start {
		if distance >= end {
			return cfg.MaxDistanceMultiplier
		}
		return 1
	}

	t := clamp01((distance - start) / (end - start))
	return 1 + t*(cfg.MaxDistanceMultiplier-1)
}
