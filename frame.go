package streak

import "gonum.org/v1/gonum/spatial/r3"

// Frame is the snapshot every tracked object is processed against during one
// Tracker.Update call.
type Frame struct {
	// Projector maps between world and screen for this frame's camera.
	Projector Projector
	// Camera and PrevCamera are the camera world positions this frame and
	// last frame. Use CameraHistory to produce them.
	Camera     r3.Vec
	PrevCamera r3.Vec
	// Container, if non-nil, is consulted to detect stale objects.
	Container Container
	// DT is the frame duration in seconds. Only the overlay strategy reads it.
	DT float64
}

// CameraHistory remembers the previous frame's camera position.
type CameraHistory struct {
	prev r3.Vec
	has  bool
}

// Next returns the previous camera position for a frame whose camera is at
// current, then records current as the previous position for the next call.
// On the first call the previous position equals current, so the first frame
// contributes no camera movement.
func (h *CameraHistory) Next(current r3.Vec) (prev r3.Vec) {
	prev = current
	if h.has {
		prev = h.prev
	}
	h.prev = current
	h.has = true
	return prev
}

// Reset forgets the recorded position.
func (h *CameraHistory) Reset() {
	*h = CameraHistory{}
}

// NewFrame builds a Frame for a camera at pos, advancing the history.
func (h *CameraHistory) NewFrame(p Projector, pos r3.Vec, dt float64) Frame {
	return Frame{
		Projector:  p,
		Camera:     pos,
		PrevCamera: h.Next(pos),
		DT:         dt,
	}
}
