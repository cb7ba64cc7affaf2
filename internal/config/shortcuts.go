package config

import (
	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// ShortcutStore maps kinds to key combinations under the "shortcuts" key.
// It satisfies catalog.ShortcutSource.
type ShortcutStore struct {
	s *Settings
}

// Shortcuts returns the shortcut store backed by s.
func (s *Settings) Shortcuts() *ShortcutStore {
	return &ShortcutStore{s: s}
}

func shortcutKey(kind nodes.KindID) string {
	return shortcutsKey + "." + kind.String()
}

// Shortcut returns the configured combination for kind. Unparseable values
// are logged and treated as unset.
func (st *ShortcutStore) Shortcut(kind nodes.KindID) (keys.Combo, bool) {
	key := shortcutKey(kind)
	raw := st.s.v.GetString(key)
	if raw == "" && !st.s.v.IsSet(key) {
		raw = st.s.shortcutDefaults[key]
	}
	if raw == "" {
		return keys.None, false
	}
	c, err := keys.Parse(raw)
	if err != nil {
		logger.Warn("Ignoring invalid shortcut", logger.Fields(
			logger.FieldKind, kind.String(),
			logger.FieldError, err.Error(),
		))
		return keys.None, false
	}
	return c, !c.IsNone()
}

// SetShortcut persists combo for kind.
func (st *ShortcutStore) SetShortcut(kind nodes.KindID, combo keys.Combo) error {
	if combo.IsNone() {
		return st.Unset(kind)
	}
	return st.s.Set(shortcutKey(kind), combo.String())
}

// Unset clears the shortcut for kind.
func (st *ShortcutStore) Unset(kind nodes.KindID) error {
	return st.s.Set(shortcutKey(kind), "")
}

// SetDefault registers a fallback used when the user has not configured
// kind. Defaults are never written to disk.
func (st *ShortcutStore) SetDefault(kind nodes.KindID, combo keys.Combo) {
	st.s.shortcutDefaults[shortcutKey(kind)] = combo.String()
}

// UnsetDefault drops the fallback registered for kind.
func (st *ShortcutStore) UnsetDefault(kind nodes.KindID) {
	delete(st.s.shortcutDefaults, shortcutKey(kind))
}
