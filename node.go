package streak

import "gonum.org/v1/gonum/spatial/r3"

// nodeIDCounter is a plain counter; streak is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal 3D scene graph element. It is a reference host for the
// tracker: a projectile Node implements Object, its attachment child
// implements Attachment and its beam child implements Beam, and a container
// Node implements Container and reports membership changes.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local, relative to Parent)
	Position r3.Vec
	Rotation r3.Rotation

	// Beam widths (beam nodes)
	Width0, Width1 float64

	// Metadata
	UserData any

	// Membership callbacks (nil by default; zero cost when unused)
	OnChildAdded   func(child *Node)
	OnChildRemoved func(child *Node)

	attachment *Node
	beam       *Node
	disposed   bool
}

// NewNode creates an empty node at the origin.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name, Rotation: IdentityRotation}
}

// NewProjectile creates a node with an attachment point and a beam child,
// ready to be tracked.
func NewProjectile(name string) *Node {
	n := NewNode(name)
	n.SetAttachmentPoint(NewNode(name + ".attach"))
	n.SetBeamNode(NewNode(name + ".beam"))
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children and fires OnChildAdded.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("streak: cannot add nil child")
	}
	if child.disposed || n.disposed {
		panic("streak: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("streak: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if n.OnChildAdded != nil {
		n.OnChildAdded(child)
	}
}

// RemoveChild detaches child from this node and fires OnChildRemoved.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("streak: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	if n.attachment == child {
		n.attachment = nil
	}
	if n.beam == child {
		n.beam = nil
	}
	if n.OnChildRemoved != nil {
		n.OnChildRemoved(child)
	}
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetAttachmentPoint adds child and makes it the trail attachment point.
func (n *Node) SetAttachmentPoint(child *Node) {
	n.AddChild(child)
	n.attachment = child
}

// SetBeamNode adds child and makes it the trail beam.
func (n *Node) SetBeamNode(child *Node) {
	n.AddChild(child)
	n.beam = child
}

// AttachmentPoint returns the attachment child, or nil.
func (n *Node) AttachmentPoint() *Node {
	return n.attachment
}

// BeamNode returns the beam child, or nil.
func (n *Node) BeamNode() *Node {
	return n.beam
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.attachment = nil
	n.beam = nil
	n.UserData = nil
	n.OnChildAdded = nil
	n.OnChildRemoved = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Object, Attachment, Beam, Container ---

// WorldPosition returns the node's position with all ancestor transforms applied.
func (n *Node) WorldPosition() r3.Vec {
	if n.Parent == nil {
		return n.Position
	}
	return r3.Add(n.Parent.WorldPosition(), ToWorld(n.Parent.Orientation(), n.Position))
}

// Orientation returns the node's world-space rotation.
func (n *Node) Orientation() r3.Rotation {
	if n.Parent == nil {
		return normalizeRotation(n.Rotation)
	}
	return ComposeRotation(n.Parent.Orientation(), n.Rotation)
}

// Attachment returns the attachment point as an Attachment, or nil.
func (n *Node) Attachment() Attachment {
	if n.attachment == nil {
		return nil
	}
	return n.attachment
}

// Beam returns the beam node as a Beam, or nil.
func (n *Node) Beam() Beam {
	if n.beam == nil {
		return nil
	}
	return n.beam
}

// SetLocalOffset moves the node relative to its parent.
func (n *Node) SetLocalOffset(offset r3.Vec) {
	n.Position = offset
}

// SetWidths sets the beam head and tail widths.
func (n *Node) SetWidths(w0, w1 float64) {
	n.Width0, n.Width1 = w0, w1
}

// Valid reports whether the node has not been disposed.
func (n *Node) Valid() bool {
	return !n.disposed
}

// Contains reports whether obj is a direct child of this node.
func (n *Node) Contains(obj Object) bool {
	child, ok := obj.(*Node)
	return ok && child != nil && child.Parent == n && !child.disposed
}

// Watch tracks every current and future child of container. Children added
// later are registered through container.OnChildAdded; removed children are
// unregistered through OnChildRemoved. Pass container as Frame.Container so
// children reparented without a callback are also swept.
func (t *Tracker) Watch(container *Node) {
	container.OnChildAdded = func(child *Node) { t.OnChildAdded(child) }
	container.OnChildRemoved = func(child *Node) { t.OnChildRemoved(child) }
	for _, child := range container.children {
		t.OnChildAdded(child)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
