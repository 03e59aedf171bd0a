package streak

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b r3.Vec, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps) && approxEqual(a.Z, b.Z, eps)
}

// --- Object fakes ---

type fakeAttachment struct {
	offset r3.Vec
	calls  int
}

func (a *fakeAttachment) SetLocalOffset(o r3.Vec) {
	a.offset = o
	a.calls++
}

type fakeBeam struct {
	w0, w1 float64
	calls  int
}

func (b *fakeBeam) SetWidths(w0, w1 float64) {
	b.w0, b.w1 = w0, w1
	b.calls++
}

type fakeObject struct {
	pos     r3.Vec
	rot     r3.Rotation
	att     *fakeAttachment
	beam    *fakeBeam
	invalid bool
	touched int
}

func newFakeObject(pos r3.Vec) *fakeObject {
	return &fakeObject{
		pos:  pos,
		rot:  IdentityRotation,
		att:  &fakeAttachment{},
		beam: &fakeBeam{},
	}
}

func (o *fakeObject) WorldPosition() r3.Vec {
	o.touched++
	return o.pos
}

func (o *fakeObject) Orientation() r3.Rotation { return o.rot }
func (o *fakeObject) Attachment() Attachment   { return o.att }
func (o *fakeObject) Beam() Beam               { return o.beam }
func (o *fakeObject) Valid() bool              { return !o.invalid }

// --- Projector fake ---

// fakeProjector maps world (x, y, z) to screen (x*scale, y*scale) with depth
// z. Unproject returns a ray starting on the z=0 plane pointing along +Z,
// so Ray.At(depth) lands exactly on the world point with that depth.
type fakeProjector struct {
	scale         float64
	projectErr    error
	unprojectErr  error
	depthOverride *float64
	projectCalls  int
}

func newFakeProjector() *fakeProjector {
	return &fakeProjector{scale: 1}
}

func (p *fakeProjector) Project(world r3.Vec) (Projection, error) {
	p.projectCalls++
	if p.projectErr != nil {
		return Projection{}, p.projectErr
	}
	depth := world.Z
	if p.depthOverride != nil {
		depth = *p.depthOverride
	}
	return Projection{Screen: Vec2{world.X * p.scale, world.Y * p.scale}, Depth: depth}, nil
}

func (p *fakeProjector) Unproject(screen Vec2) (Ray, error) {
	if p.unprojectErr != nil {
		return Ray{}, p.unprojectErr
	}
	return Ray{
		Origin:    r3.Vec{X: screen.X / p.scale, Y: screen.Y / p.scale},
		Direction: r3.Vec{Z: 2},
	}, nil
}

var errFakeProjection = errors.New("fake projection failure")

// --- Container fake ---

type fakeContainer map[Object]bool

func (c fakeContainer) Contains(obj Object) bool { return c[obj] }

// testConfig is a config with no distance compensation and no camera term,
// so trail length equals raw screen displacement clamped to [5, 5000].
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ScreenMovementModifier = 1
	cfg.CameraMovementModifier = 0
	cfg.DistanceCompensation = false
	cfg.MinTrailLength = 5
	cfg.MaxTrailLength = 5000
	cfg.OffsetMultiplier = 1
	cfg.BaseOffsetAlongTrail = 0
	cfg.BaseBeamWidth0 = 2
	cfg.BaseBeamWidth1 = 1
	cfg.MinWidthMultiplier = 1
	cfg.MaxWidthMultiplier = 3
	return cfg
}
