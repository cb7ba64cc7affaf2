package catalog

import (
	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// Descriptor is the user-facing metadata of one kind.
type Descriptor struct {
	Kind                 nodes.KindID `json:"kind"`
	Label                string       `json:"label"`
	Icon                 string       `json:"icon"`
	DefaultShortcut      keys.Combo   `json:"shortcut"`
	CanOverflowInToolbar bool         `json:"overflow"`
}

// ShortcutSource supplies user-configured shortcuts per kind.
type ShortcutSource interface {
	Shortcut(kind nodes.KindID) (keys.Combo, bool)
}

// effectiveShortcut drops shortcuts without a modifier; a bare key would
// swallow plain character input in the editor.
func effectiveShortcut(src ShortcutSource, kind nodes.KindID) keys.Combo {
	if src == nil {
		return keys.None
	}
	c, ok := src.Shortcut(kind)
	if !ok || c.IsNone() || !c.HasModifier() {
		return keys.None
	}
	return c
}
