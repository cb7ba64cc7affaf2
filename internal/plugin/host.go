package plugin

import (
	"fmt"
	"sync"

	"github.com/layoutlab/nodekit/internal/catalog"
	apperrors "github.com/layoutlab/nodekit/internal/errors"
	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// ShortcutDefaults receives the default shortcuts declared by manifests.
type ShortcutDefaults interface {
	SetDefault(kind nodes.KindID, combo keys.Combo)
	UnsetDefault(kind nodes.KindID)
}

// Loaded describes a plugin currently contributing kinds.
type Loaded struct {
	Manifest *Manifest
	Kinds    []nodes.KindID
}

// Failure records a plugin that LoadDir skipped.
type Failure struct {
	Path string
	Err  error
}

// Host turns manifests into kind specs and catalog registrations.
type Host struct {
	catalog     *catalog.Catalog
	shortcuts   ShortcutDefaults
	hostVersion string

	mu     sync.RWMutex
	order  []string
	loaded map[string]*Loaded
}

// NewHost creates a host that registers into cat. shortcuts may be nil.
func NewHost(cat *catalog.Catalog, shortcuts ShortcutDefaults, hostVersion string) *Host {
	return &Host{
		catalog:     cat,
		shortcuts:   shortcuts,
		hostVersion: hostVersion,
		loaded:      make(map[string]*Loaded),
	}
}

// Load registers every kind declared by m and then the plugin itself. If any
// step fails, kinds registered so far are removed again.
func (h *Host) Load(m *Manifest) (err error) {
	if m == nil || m.Name == "" {
		return apperrors.InvalidInput("manifest", "plugin name is empty")
	}
	if err := CheckHost(m, h.hostVersion); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.loaded[m.Name]; ok {
		return apperrors.DuplicateRegistration("plugin", m.Name)
	}

	table := h.catalog.Factory().Table()
	var registered []nodes.KindID
	defer func() {
		if err == nil {
			return
		}
		for _, id := range registered {
			table.Unregister(id)
		}
	}()

	for _, km := range m.Kinds {
		id := nodes.PluginKind(m.Name, km.Name)
		spec, derr := table.Derive(id, nodes.KindID{Name: km.Base}, km.Label, km.Icon)
		if derr != nil {
			return fmt.Errorf("deriving kind %s from %q: %w", id, km.Base, derr)
		}
		if rerr := table.Register(spec); rerr != nil {
			return rerr
		}
		registered = append(registered, id)
	}

	if err := h.catalog.RegisterPlugin(catalog.PluginID(m.Name), registered); err != nil {
		return err
	}

	h.seedShortcuts(m)

	h.order = append(h.order, m.Name)
	h.loaded[m.Name] = &Loaded{Manifest: m, Kinds: registered}

	logger.Info("Plugin loaded", logger.Fields(
		logger.FieldPlugin, m.Name,
		logger.FieldCount, len(registered),
	))
	return nil
}

func (h *Host) seedShortcuts(m *Manifest) {
	if h.shortcuts == nil {
		return
	}
	for _, km := range m.Kinds {
		if km.Shortcut == "" {
			continue
		}
		id := nodes.PluginKind(m.Name, km.Name)
		combo, err := keys.Parse(km.Shortcut)
		if err != nil || !combo.HasModifier() {
			logger.Warn("Ignoring manifest shortcut", logger.Fields(
				logger.FieldPlugin, m.Name,
				logger.FieldKind, id.String(),
			))
			continue
		}
		h.shortcuts.SetDefault(id, combo)
	}
}

// Unload removes a plugin's registration and kinds. Unknown names are ignored.
func (h *Host) Unload(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.loaded[name]
	if !ok {
		return
	}
	h.catalog.UnregisterPlugin(catalog.PluginID(name))
	table := h.catalog.Factory().Table()
	for _, id := range l.Kinds {
		table.Unregister(id)
		if h.shortcuts != nil {
			h.shortcuts.UnsetDefault(id)
		}
	}
	delete(h.loaded, name)
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	logger.Debug("Plugin unloaded", logger.Fields(logger.FieldPlugin, name))
}

// LoadDir loads every plugin found by Discover. Plugins that fail to parse or
// load are logged, reported in the returned failures, and skipped.
func (h *Host) LoadDir(dir string) ([]Failure, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	var failures []Failure
	for _, p := range paths {
		m, err := Parse(p)
		if err == nil {
			err = h.Load(m)
		}
		if err != nil {
			logger.Warn("Skipping plugin", logger.Fields(
				logger.FieldPath, p,
				logger.FieldError, err.Error(),
			))
			failures = append(failures, Failure{Path: p, Err: err})
		}
	}
	return failures, nil
}

// Loaded returns the loaded plugins in load order.
func (h *Host) Loaded() []Loaded {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Loaded, 0, len(h.order))
	for _, name := range h.order {
		l := h.loaded[name]
		out = append(out, Loaded{
			Manifest: l.Manifest,
			Kinds:    append([]nodes.KindID(nil), l.Kinds...),
		})
	}
	return out
}

// Get returns the loaded plugin called name.
func (h *Host) Get(name string) (Loaded, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	l, ok := h.loaded[name]
	if !ok {
		return Loaded{}, false
	}
	return Loaded{Manifest: l.Manifest, Kinds: append([]nodes.KindID(nil), l.Kinds...)}, true
}
