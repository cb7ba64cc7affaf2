package nodes

import (
	"sync"

	apperrors "github.com/layoutlab/nodekit/internal/errors"
	"github.com/layoutlab/nodekit/internal/logger"
)

// KindSpec is the capability row for one kind.
type KindSpec struct {
	ID    KindID
	Label string
	Icon  string
	// Abstract kinds can be named but never instantiated.
	Abstract bool
	// Accepts lists the kinds a wrapper may own as its inner node. A nil
	// Accepts marks a plain, non-wrapper kind.
	Accepts []KindID
}

// IsWrapper reports whether nodes of this kind own an inner node.
func (s KindSpec) IsWrapper() bool { return s.Accepts != nil }

// CanAccept reports whether inner is a legal inner kind for this spec.
func (s KindSpec) CanAccept(inner KindID) bool {
	for _, k := range s.Accepts {
		if k == inner {
			return true
		}
	}
	return false
}

// Table maps KindIDs to their specs. It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	specs map[KindID]KindSpec
}

// NewTable returns a table preloaded with every built-in kind.
func NewTable() *Table {
	t := &Table{specs: make(map[KindID]KindSpec, len(builtinSpecs))}
	for _, s := range builtinSpecs {
		t.specs[s.ID] = cloneSpec(s)
	}
	return t
}

// Register adds a kind. Registering an existing KindID fails with
// DuplicateRegistration and leaves the table unchanged.
func (t *Table) Register(spec KindSpec) error {
	if spec.ID.IsZero() {
		return apperrors.InvalidInput("kind", "kind id is empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.specs[spec.ID]; exists {
		return apperrors.DuplicateRegistration("kind", spec.ID.String())
	}
	t.specs[spec.ID] = cloneSpec(spec)

	logger.Debug("Kind registered", logger.Fields(logger.FieldKind, spec.ID.String()))
	return nil
}

// Unregister removes a kind if present. Built-in kinds cannot be removed.
func (t *Table) Unregister(id KindID) {
	if id.IsBuiltIn() {
		return
	}
	t.mu.Lock()
	delete(t.specs, id)
	t.mu.Unlock()
}

// Lookup returns the spec for id.
func (t *Table) Lookup(id KindID) (KindSpec, bool) {
	t.mu.RLock()
	s, ok := t.specs[id]
	t.mu.RUnlock()
	if !ok {
		return KindSpec{}, false
	}
	return cloneSpec(s), true
}

// Instantiable returns the spec for id, or UnknownKind when id is absent
// or abstract.
func (t *Table) Instantiable(id KindID) (KindSpec, error) {
	s, ok := t.Lookup(id)
	if !ok || s.Abstract {
		return KindSpec{}, apperrors.UnknownKind(id.String())
	}
	return s, nil
}

// Derive builds the spec of a plugin kind that behaves like base: it keeps
// base's composition policy and falls back to base's label and icon.
func (t *Table) Derive(id, base KindID, label, icon string) (KindSpec, error) {
	b, err := t.Instantiable(base)
	if err != nil {
		return KindSpec{}, err
	}
	spec := KindSpec{ID: id, Label: label, Icon: icon, Accepts: b.Accepts}
	if spec.Label == "" {
		spec.Label = b.Label
	}
	if spec.Icon == "" {
		spec.Icon = b.Icon
	}
	return cloneSpec(spec), nil
}

func cloneSpec(s KindSpec) KindSpec {
	if s.Accepts != nil {
		s.Accepts = append(make([]KindID, 0, len(s.Accepts)), s.Accepts...)
	}
	return s
}
