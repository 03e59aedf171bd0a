package streak

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tracker owns the registry of tracked projectiles and, once per frame,
// recomputes each one's trail through the configured Strategy.
//
// A Tracker is not safe for concurrent use. Drive it from the same goroutine
// that runs the host's frame loop.
type Tracker struct {
	cfg      Config
	registry *Registry
	strategy Strategy
	overlay  *OverlayStrategy
	logf     Logger

	removals []Object
	last     FrameStats
}

// NewTracker validates cfg and creates a Tracker. The strategy is fixed
// here: OverlayStrategy when cfg.EnableVisualizerUI is set, otherwise
// AttachmentStrategy.
func NewTracker(cfg Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tracker{cfg: cfg, logf: StderrLogger()}
	if cfg.EnableVisualizerUI {
		t.overlay = NewOverlayStrategy(&t.cfg)
		t.strategy = t.overlay
	} else {
		t.strategy = NewAttachmentStrategy(&t.cfg)
	}
	t.registry = NewRegistry(cfg.MaxTrackers, t.strategy)
	return t, nil
}

// Config returns a copy of the tracker's configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Registry returns the underlying registry.
func (t *Tracker) Registry() *Registry {
	return t.registry
}

// Strategy returns the active rendering strategy.
func (t *Tracker) Strategy() Strategy {
	return t.strategy
}

// Overlay returns the overlay strategy, or nil in attachment mode.
func (t *Tracker) Overlay() *OverlayStrategy {
	return t.overlay
}

// SetLogger replaces the diagnostic logger. nil silences diagnostics.
func (t *Tracker) SetLogger(l Logger) {
	if l == nil {
		l = func(string, ...any) {}
	}
	t.logf = l
}

// Register starts tracking obj. See Registry.Register.
func (t *Tracker) Register(obj Object) bool {
	return t.registry.Register(obj)
}

// Unregister stops tracking obj. See Registry.Unregister.
func (t *Tracker) Unregister(obj Object) bool {
	return t.registry.Unregister(obj)
}

// OnChildAdded is the membership callback for a new child in the watched
// container. Objects that are already invalid are ignored, which covers
// queued notifications delivered after the object was destroyed.
func (t *Tracker) OnChildAdded(obj Object) {
	if v, ok := obj.(Valider); ok && !v.Valid() {
		return
	}
	t.registry.Register(obj)
}

// OnChildRemoved is the membership callback for a child leaving the watched
// container.
func (t *Tracker) OnChildRemoved(obj Object) {
	t.registry.Unregister(obj)
}

// Len returns the number of tracked objects.
func (t *Tracker) Len() int {
	return t.registry.Len()
}

// LastStats returns the stats of the most recent Update.
func (t *Tracker) LastStats() FrameStats {
	return t.last
}

// Update processes every tracked object against the frame snapshot f.
// Objects that became invalid or left f.Container are removed after the
// sweep. No per-object failure aborts the frame.
func (t *Tracker) Update(f Frame) FrameStats {
	start := time.Now()
	var stats FrameStats

	t.removals = t.removals[:0]
	t.registry.Each(func(obj Object, st *State) {
		if isStale(&f, obj) {
			t.removals = append(t.removals, obj)
			return
		}
		t.process(&f, obj, st, &stats)
	})

	for i, obj := range t.removals {
		if t.registry.Unregister(obj) {
			stats.Removed++
		}
		t.removals[i] = nil
	}

	stats.Tracked = t.registry.Len()
	stats.Elapsed = time.Since(start)
	t.last = stats
	if t.cfg.Debug {
		t.debugLog(stats)
	}
	return stats
}

// isStale reports whether obj should be dropped without further processing.
func isStale(f *Frame, obj Object) bool {
	if v, ok := obj.(Valider); ok && !v.Valid() {
		return true
	}
	return f.Container != nil && !f.Container.Contains(obj)
}

func (t *Tracker) process(f *Frame, obj Object, st *State, stats *FrameStats) {
	world := obj.WorldPosition()

	proj, err := project(f.Projector, world)
	if err != nil {
		stats.ProjectionFailures++
		t.logf("%v", err)
		t.offScreen(obj, st, world, stats)
		return
	}
	if proj.Depth <= 0 {
		t.offScreen(obj, st, world, stats)
		return
	}

	est := EstimateTrail(&t.cfg, TrailInput{
		Screen:        proj.Screen,
		PrevScreen:    st.PrevScreen,
		Distance:      r3.Norm(r3.Sub(world, f.Camera)),
		Camera:        f.Camera,
		PrevCamera:    f.PrevCamera,
		LastDirection: st.Direction,
	})
	st.Direction = est.Direction

	err = t.strategy.ApplyOnScreen(f, Sample{
		Object:     obj,
		State:      st,
		World:      world,
		Projection: proj,
		Estimate:   est,
	})
	if err != nil {
		stats.ReprojectionFailures++
		t.logf("%v", err)
	}

	st.PrevScreen = SomeVec2(proj.Screen)
	st.PrevWorld = world
	st.Visible = true
	stats.OnScreen++
}

func (t *Tracker) offScreen(obj Object, st *State, world r3.Vec, stats *FrameStats) {
	st.PrevScreen = NoVec2()
	st.PrevWorld = world
	st.Visible = false
	t.strategy.ApplyOffScreen(obj, st)
	stats.OffScreen++
}

// project calls p.Project, normalizing failures to wrap ErrProjectionFailed.
func project(p Projector, world r3.Vec) (Projection, error) {
	if p == nil {
		return Projection{}, fmt.Errorf("%w: no projector", ErrProjectionFailed)
	}
	proj, err := p.Project(world)
	if err != nil {
		if !errors.Is(err, ErrProjectionFailed) {
			err = fmt.Errorf("%w: %v", ErrProjectionFailed, err)
		}
		return Projection{}, err
	}
	return proj, nil
}
