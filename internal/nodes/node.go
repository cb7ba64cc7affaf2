package nodes

import (
	"github.com/google/uuid"
)

// Node is one typed region in a layout. Wrapper nodes own exactly one inner
// node after Initialize; nobody else holds a reference to it.
type Node struct {
	ID   uuid.UUID
	Name string

	// LevelsOpenByDefault makes the editor show a wrapper's inner sections
	// expanded.
	LevelsOpenByDefault bool

	spec        KindSpec
	factory     *Factory
	inner       *Node
	owner       *Node
	initialized bool
	destroyed   bool
}

// Kind returns the kind the node was created as.
func (n *Node) Kind() KindID { return n.spec.ID }

// Spec returns the capability row the node was created from.
func (n *Node) Spec() KindSpec { return cloneSpec(n.spec) }

// Label returns the kind's display label.
func (n *Node) Label() string { return n.spec.Label }

// Icon returns the kind's icon reference.
func (n *Node) Icon() string { return n.spec.Icon }

// IsWrapper reports whether the node owns an inner node.
func (n *Node) IsWrapper() bool { return n.spec.IsWrapper() }

// Initialized reports whether Initialize has run.
func (n *Node) Initialized() bool { return n.initialized }

// Destroyed reports whether the node has been released by its owner or by
// Destroy.
func (n *Node) Destroyed() bool { return n.destroyed }

// Inner returns the owned inner node, or nil for plain kinds and
// uninitialized wrappers.
func (n *Node) Inner() *Node { return n.inner }

// Owner returns the wrapper that owns n, or nil.
func (n *Node) Owner() *Node { return n.owner }

// Destroy releases n and everything it owns. A node still owned by a wrapper
// is left alone; only its owner may release it. A destroyed node must not be
// used again.
func (n *Node) Destroy() {
	if n.destroyed || n.owner != nil {
		return
	}
	n.destroy()
}

func (n *Node) destroy() {
	if n.inner != nil {
		inner := n.inner
		n.inner = nil
		inner.owner = nil
		inner.destroy()
	}
	n.owner = nil
	n.destroyed = true
}
