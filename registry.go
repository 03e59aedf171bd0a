package streak

import "gonum.org/v1/gonum/spatial/r3"

// State is the per-object continuity carried between frames.
type State struct {
	// PrevScreen is the screen position from the last on-screen frame.
	// Absent while the object is off-screen or freshly registered.
	PrevScreen OptionalVec2
	// PrevWorld is the world position seen last frame. Always valid.
	PrevWorld r3.Vec
	// Direction is the last computed trail heading in degrees. It is held
	// when the object stalls on screen.
	Direction float64
	// Visible is the on/off-screen classification from the last frame.
	Visible bool
	// Widget is the overlay handle. Nil unless the overlay strategy is active.
	Widget *Widget
}

// Registry maps tracked objects to their State. Registration is bounded by a
// capacity that is only checked on insert; a full registry silently ignores
// new objects and never evicts existing ones.
//
// Register and Unregister calls made from inside Each are deferred until the
// outermost Each returns.
type Registry struct {
	entries  map[Object]*State
	capacity int
	strategy Strategy

	depth   int // nesting level of Each calls
	pending []pendingOp
}

type pendingOp struct {
	obj    Object
	remove bool
}

// NewRegistry creates a registry bounded to capacity entries (0 = unbounded).
// The strategy, if non-nil, is notified when entries are created and removed.
func NewRegistry(capacity int, strategy Strategy) *Registry {
	return &Registry{
		entries:  make(map[Object]*State),
		capacity: capacity,
		strategy: strategy,
	}
}

// Register starts tracking obj. It reports whether an entry was created. It
// returns false when obj is already tracked, when the registry is full, or
// when called during Each (the request is then applied after iteration).
func (r *Registry) Register(obj Object) bool {
	if obj == nil {
		return false
	}
	if r.depth > 0 {
		r.pending = append(r.pending, pendingOp{obj: obj})
		return false
	}
	if _, ok := r.entries[obj]; ok {
		return false
	}
	if r.capacity > 0 && len(r.entries) >= r.capacity {
		return false
	}

	st := &State{PrevWorld: obj.WorldPosition()}
	if r.strategy != nil {
		r.strategy.Attach(obj, st)
	}
	r.entries[obj] = st
	return true
}

// Unregister stops tracking obj and releases its strategy resources. It
// reports whether an entry was removed. obj's methods are never called, so
// it is safe to pass an object whose underlying handle is gone.
func (r *Registry) Unregister(obj Object) bool {
	if obj == nil {
		return false
	}
	if r.depth > 0 {
		r.pending = append(r.pending, pendingOp{obj: obj, remove: true})
		return false
	}
	st, ok := r.entries[obj]
	if !ok {
		return false
	}
	delete(r.entries, obj)
	if r.strategy != nil {
		r.strategy.Detach(obj, st)
	}
	return true
}

// Each calls fn for every tracked object. fn may mutate the State it is
// given. Order is unspecified. Each may be nested; membership changes are
// applied once the outermost call returns, even if fn panics.
func (r *Registry) Each(fn func(obj Object, st *State)) {
	r.depth++
	defer func() {
		r.depth--
		if r.depth == 0 {
			r.flush()
		}
	}()
	for obj, st := range r.entries {
		fn(obj, st)
	}
}

func (r *Registry) flush() {
	for len(r.pending) > 0 {
		ops := r.pending
		r.pending = nil
		for _, op := range ops {
			if op.remove {
				r.Unregister(op.obj)
			} else {
				r.Register(op.obj)
			}
		}
	}
}

// Get returns the State for obj, or nil if obj is not tracked.
func (r *Registry) Get(obj Object) *State {
	return r.entries[obj]
}

// Contains reports whether obj is tracked.
func (r *Registry) Contains(obj Object) bool {
	_, ok := r.entries[obj]
	return ok
}

// Len returns the number of tracked objects.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Capacity returns the configured bound (0 = unbounded).
func (r *Registry) Capacity() int {
	return r.capacity
}

// Clear unregisters every tracked object.
func (r *Registry) Clear() {
	for obj := range r.entries {
		r.Unregister(obj)
	}
}
