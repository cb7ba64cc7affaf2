package nodes

import (
	apperrors "github.com/layoutlab/nodekit/internal/errors"
	"github.com/layoutlab/nodekit/internal/logger"
)

// Initialize moves n from Uninitialized to Initialized. A wrapper gets a
// freshly initialized Class node as its inner node and opens its levels by
// default. Initializing twice is an InvalidState error.
func (n *Node) Initialize() error {
	if n.destroyed {
		return apperrors.InvalidState("cannot initialize a destroyed node")
	}
	if n.initialized {
		return apperrors.InvalidState(n.Kind().String() + " node is already initialized")
	}
	if !n.IsWrapper() {
		n.initialized = true
		return nil
	}

	inner, err := n.factory.Create(Class, true)
	if err != nil {
		return err
	}
	n.LevelsOpenByDefault = true
	n.install(inner)
	n.initialized = true
	return nil
}

// CanAccept reports whether kind may serve as n's inner node.
func (n *Node) CanAccept(kind KindID) bool {
	return n.spec.CanAccept(kind)
}

// ChangeInnerNode replaces n's inner node with inner. The previous inner node
// is destroyed. On any error n is left untouched.
func (n *Node) ChangeInnerNode(inner *Node) error {
	if inner == nil {
		return apperrors.InvalidInput("inner", "inner node is nil")
	}
	if n.destroyed || inner.destroyed {
		return apperrors.InvalidState("cannot swap destroyed nodes")
	}
	if !n.initialized {
		return apperrors.NotInitialized(n.Kind().String())
	}
	if !n.CanAccept(inner.Kind()) {
		return apperrors.IncompatibleKind(n.Kind().String(), inner.Kind().String())
	}
	if inner == n.inner {
		return nil
	}
	if inner == n || inner.owner != nil || n.isOwnedBy(inner) {
		return apperrors.InvalidState("inner node is already owned")
	}

	old := n.inner
	n.install(inner)
	if old != nil {
		old.owner = nil
		old.destroy()
	}

	logger.Debug("Inner node changed", logger.Fields(
		logger.FieldNode, n.ID.String(),
		logger.FieldKind, inner.Kind().String(),
	))
	return nil
}

func (n *Node) install(inner *Node) {
	n.inner = inner
	inner.owner = n
}

// isOwnedBy reports whether candidate sits above n in the ownership chain.
func (n *Node) isOwnedBy(candidate *Node) bool {
	for o := n.owner; o != nil; o = o.owner {
		if o == candidate {
			return true
		}
	}
	return false
}
