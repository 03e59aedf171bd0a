package streak

import "gonum.org/v1/gonum/spatial/r3"

// Object is a tracked projectile owned by the host scene graph. The tracker
// holds Objects as map keys, so implementations must be comparable; pointer
// types are the usual choice.
type Object interface {
	// WorldPosition returns the object's current world-space position.
	WorldPosition() r3.Vec
	// Orientation returns the object's current world-space rotation.
	Orientation() r3.Rotation
	// Attachment returns the trail attachment point, or nil.
	Attachment() Attachment
	// Beam returns the trail beam renderable, or nil.
	Beam() Beam
}

// Attachment receives the trail offset in its owner's local frame.
type Attachment interface {
	SetLocalOffset(offset r3.Vec)
}

// Beam receives the trail widths at its head and tail.
type Beam interface {
	SetWidths(w0, w1 float64)
}

// Valider is implemented by objects whose underlying handle can become
// invalid (e.g. a destroyed entity). Invalid objects are removed from the
// tracker on the next frame without being touched further.
type Valider interface {
	Valid() bool
}

// Container reports whether an object is still parented under the container
// the tracker watches. Objects that are no longer contained are removed.
type Container interface {
	Contains(obj Object) bool
}

// Projector is the camera/viewport projection service.
type Projector interface {
	// Project maps a world point to the screen. A non-positive depth means
	// the point is behind the viewer.
	Project(world r3.Vec) (Projection, error)
	// Unproject maps a screen point to a world-space ray.
	Unproject(screen Vec2) (Ray, error)
}
