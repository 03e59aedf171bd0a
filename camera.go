package streak

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/spatial/r3"
)

// moveAnim holds active move-to tweens for the camera position.
type moveAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// PerspectiveCamera is a pinhole camera that implements Projector. It looks
// along its local +Z axis with +Y up; screen Y grows downward.
type PerspectiveCamera struct {
	// Position is the camera's world-space position.
	Position r3.Vec
	// Orientation is the camera's world-space rotation.
	Orientation r3.Rotation
	// FOV is the vertical field of view in radians.
	FOV float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget *Node
	followOffset r3.Vec
	followLerp   float64

	moveTween *moveAnim

	// cached view state, recomputed when the inputs change
	view viewCache
}

type viewCache struct {
	valid    bool
	rot      r3.Rotation
	fov      float64
	viewport Rect
	unitRot  r3.Rotation
	focal    float64
}

// NewPerspectiveCamera creates a camera at the origin looking down +Z.
func NewPerspectiveCamera(viewport Rect, fov float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Orientation: IdentityRotation,
		FOV:         fov,
		Viewport:    viewport,
	}
}

// LookAt orients the camera toward target, keeping +Y up where possible.
func (c *PerspectiveCamera) LookAt(target r3.Vec) {
	c.Orientation = LookRotation(r3.Sub(target, c.Position), LocalUp)
}

// Follow makes the camera track a node with the given offset and lerp
// factor. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *PerspectiveCamera) Follow(node *Node, offset r3.Vec, lerp float64) {
	c.followTarget = node
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *PerspectiveCamera) Unfollow() {
	c.followTarget = nil
}

// MoveTo animates the camera to the given world position over duration seconds.
func (c *PerspectiveCamera) MoveTo(pos r3.Vec, duration float32, easeFn ease.TweenFunc) {
	c.moveTween = &moveAnim{tweens: [3]*gween.Tween{
		gween.New(float32(c.Position.X), float32(pos.X), duration, easeFn),
		gween.New(float32(c.Position.Y), float32(pos.Y), duration, easeFn),
		gween.New(float32(c.Position.Z), float32(pos.Z), duration, easeFn),
	}}
}

// Moving reports whether a MoveTo animation is in progress.
func (c *PerspectiveCamera) Moving() bool {
	return c.moveTween != nil
}

// Update advances follow and move-to animation by dt seconds.
func (c *PerspectiveCamera) Update(dt float32) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		target := r3.Add(c.followTarget.WorldPosition(), c.followOffset)
		c.Position = r3.Add(c.Position, r3.Scale(c.followLerp, r3.Sub(target, c.Position)))
	}

	if c.moveTween != nil {
		fields := [3]*float64{&c.Position.X, &c.Position.Y, &c.Position.Z}
		allDone := true
		for i, tw := range c.moveTween.tweens {
			if c.moveTween.done[i] {
				continue
			}
			val, done := tw.Update(dt)
			*fields[i] = float64(val)
			c.moveTween.done[i] = done
			if !done {
				allDone = false
			}
		}
		if allDone {
			c.moveTween = nil
		}
	}
}

// computeView refreshes the cached rotation and focal length if the camera's
// orientation, FOV or viewport changed.
func (c *PerspectiveCamera) computeView() (viewCache, error) {
	v := &c.view
	if v.valid && v.rot == c.Orientation && v.fov == c.FOV && v.viewport == c.Viewport {
		return *v, nil
	}
	if c.Viewport.Empty() {
		return viewCache{}, fmt.Errorf("%w: empty viewport %v", ErrProjectionFailed, c.Viewport)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return viewCache{}, fmt.Errorf("%w: field of view %v out of range", ErrProjectionFailed, c.FOV)
	}
	*v = viewCache{
		valid:    true,
		rot:      c.Orientation,
		fov:      c.FOV,
		viewport: c.Viewport,
		unitRot:  normalizeRotation(c.Orientation),
		focal:    (c.Viewport.Height / 2) / math.Tan(c.FOV/2),
	}
	return *v, nil
}

// Project maps a world point to the screen. Depth is the distance from the
// camera to the point along the ray Unproject returns for Screen, so
// Unproject(Screen).At(Depth) is the point itself. Points in or behind the
// camera plane have a non-positive depth and an unspecified screen position.
func (c *PerspectiveCamera) Project(world r3.Vec) (Projection, error) {
	v, err := c.computeView()
	if err != nil {
		return Projection{}, err
	}
	p := ToLocal(v.unitRot, r3.Sub(world, c.Position))
	center := c.Viewport.Center()
	if math.Abs(p.Z) < 1e-12 {
		return Projection{Screen: center, Depth: 0}, nil
	}
	return Projection{
		Screen: Vec2{
			X: center.X + v.focal*p.X/p.Z,
			Y: center.Y - v.focal*p.Y/p.Z,
		},
		Depth: math.Copysign(r3.Norm(p), p.Z),
	}, nil
}

// Unproject returns the world-space ray from the camera through a screen point.
func (c *PerspectiveCamera) Unproject(screen Vec2) (Ray, error) {
	v, err := c.computeView()
	if err != nil {
		return Ray{}, err
	}
	center := c.Viewport.Center()
	local := r3.Vec{
		X: (screen.X - center.X) / v.focal,
		Y: -(screen.Y - center.Y) / v.focal,
		Z: 1,
	}
	return Ray{Origin: c.Position, Direction: ToWorld(v.unitRot, local)}, nil
}

// Forward returns the camera's world-space viewing direction.
func (c *PerspectiveCamera) Forward() r3.Vec {
	return ToWorld(c.Orientation, LocalForward)
}
