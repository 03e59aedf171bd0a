package streak

import "gonum.org/v1/gonum/spatial/r3"

// Sample is the per-object, per-frame input handed to a Strategy for an
// on-screen object.
type Sample struct {
	Object     Object
	State      *State
	World      r3.Vec
	Projection Projection
	Estimate   TrailEstimate
}

// Strategy turns trail estimates into visible output. The tracker picks one
// at construction: AttachmentStrategy normally, OverlayStrategy when
// Config.EnableVisualizerUI is set.
type Strategy interface {
	// Attach allocates per-object resources when obj starts being tracked.
	Attach(obj Object, st *State)
	// Detach releases them. It must not call methods on obj.
	Detach(obj Object, st *State)
	// ApplyOnScreen writes the trail for a visible object. A non-nil error
	// is a non-fatal diagnostic; the strategy has already reset its output.
	ApplyOnScreen(f *Frame, s Sample) error
	// ApplyOffScreen clears the trail for an object that is not visible.
	ApplyOffScreen(obj Object, st *State)
}

// AttachmentStrategy writes a local-space offset to each object's attachment
// point and tapering widths to its beam.
type AttachmentStrategy struct {
	cfg *Config
}

// NewAttachmentStrategy creates an AttachmentStrategy reading cfg.
func NewAttachmentStrategy(cfg *Config) *AttachmentStrategy {
	return &AttachmentStrategy{cfg: cfg}
}

// Attach is a no-op; attachment mode keeps no per-object resources.
func (a *AttachmentStrategy) Attach(Object, *State) {}

// Detach is a no-op.
func (a *AttachmentStrategy) Detach(Object, *State) {}

// ApplyOnScreen reprojects the trail endpoint and writes the mapped offset
// and widths. On reprojection failure the trail is reset to its rest pose.
func (a *AttachmentStrategy) ApplyOnScreen(f *Frame, s Sample) error {
	est := s.Estimate
	target, err := Reproject(f.Projector, s.Projection.Screen, est.Direction, est.Length, s.Projection.Depth)
	if err != nil {
		a.reset(s.Object)
		return err
	}

	if att := s.Object.Attachment(); att != nil {
		att.SetLocalOffset(MapOffset(a.cfg, target, s.World, s.Object.Orientation()))
	}
	if beam := s.Object.Beam(); beam != nil {
		beam.SetWidths(MapWidths(a.cfg, est.Length))
	}
	return nil
}

// ApplyOffScreen resets the trail so a reappearing object never shows a
// stale one.
func (a *AttachmentStrategy) ApplyOffScreen(obj Object, _ *State) {
	a.reset(obj)
}

func (a *AttachmentStrategy) reset(obj Object) {
	if att := obj.Attachment(); att != nil {
		att.SetLocalOffset(r3.Vec{})
	}
	if beam := obj.Beam(); beam != nil {
		beam.SetWidths(a.cfg.BaseBeamWidth0, a.cfg.BaseBeamWidth1)
	}
}
