package catalog

import (
	"sync"

	apperrors "github.com/layoutlab/nodekit/internal/errors"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/layoutlab/nodekit/internal/nodes"
)

// PluginID identifies a loaded plugin.
type PluginID string

// Registration is the ordered list of kinds a plugin contributed.
type Registration struct {
	Plugin PluginID       `json:"plugin"`
	Kinds  []nodes.KindID `json:"kinds"`
}

// Catalog holds built-in groups and plugin registrations.
// Built-in groups are immutable; the registration table is guarded by mu.
type Catalog struct {
	factory   *nodes.Factory
	shortcuts ShortcutSource
	builtIn   []nodes.Group

	mu      sync.RWMutex
	entries []*Registration
	lookup  map[PluginID]*Registration
}

// New creates a catalog over factory's kind table. shortcuts may be nil.
func New(factory *nodes.Factory, shortcuts ShortcutSource) *Catalog {
	return NewWithGroups(factory, shortcuts, nodes.BuiltInGroups())
}

// NewWithGroups creates a catalog presenting builtIn instead of the standard
// groups. It panics if a kind appears in more than one group.
func NewWithGroups(factory *nodes.Factory, shortcuts ShortcutSource, builtIn []nodes.Group) *Catalog {
	seen := make(map[nodes.KindID]string)
	for _, g := range builtIn {
		for _, k := range g.Kinds() {
			if prev, dup := seen[k]; dup {
				panic("catalog: kind " + k.String() + " listed in groups " + prev + " and " + g.Name)
			}
			seen[k] = g.Name
		}
	}

	return &Catalog{
		factory:   factory,
		shortcuts: shortcuts,
		builtIn:   builtIn,
		lookup:    make(map[PluginID]*Registration),
	}
}

// Factory returns the node factory the catalog describes.
func (c *Catalog) Factory() *nodes.Factory { return c.factory }

// RegisterPlugin records the kinds contributed by plugin, in order. It fails
// with DuplicateRegistration if plugin is already registered; nothing is
// stored on failure.
func (c *Catalog) RegisterPlugin(plugin PluginID, kinds []nodes.KindID) error {
	if plugin == "" {
		return apperrors.InvalidInput("plugin", "plugin identity is empty")
	}
	for _, k := range kinds {
		if k.IsZero() {
			return apperrors.InvalidInput("kinds", "kind list contains an empty kind id")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.lookup[plugin]; exists {
		return apperrors.DuplicateRegistration("plugin", string(plugin))
	}

	reg := &Registration{
		Plugin: plugin,
		Kinds:  append(make([]nodes.KindID, 0, len(kinds)), kinds...),
	}
	c.entries = append(c.entries, reg)
	c.lookup[plugin] = reg

	logger.Debug("Plugin kinds registered", logger.Fields(
		logger.FieldPlugin, string(plugin),
		logger.FieldCount, len(kinds),
	))
	return nil
}

// UnregisterPlugin removes plugin's registration. Unknown plugins are ignored.
func (c *Catalog) UnregisterPlugin(plugin PluginID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reg, ok := c.lookup[plugin]
	if !ok {
		return
	}
	delete(c.lookup, plugin)
	for i, e := range c.entries {
		if e == reg {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}

	logger.Debug("Plugin kinds unregistered", logger.Fields(logger.FieldPlugin, string(plugin)))
}

// IsRegistered reports whether plugin currently has a registration.
func (c *Catalog) IsRegistered(plugin PluginID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.lookup[plugin]
	return ok
}

// BuiltInGroups returns the fixed built-in groups in presentation order.
func (c *Catalog) BuiltInGroups() []nodes.Group {
	return append([]nodes.Group(nil), c.builtIn...)
}

// AllRegistrations returns a snapshot of the plugin registrations in the
// order they were registered.
func (c *Catalog) AllRegistrations() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Registration, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, Registration{
			Plugin: e.Plugin,
			Kinds:  append([]nodes.KindID(nil), e.Kinds...),
		})
	}
	return out
}

// Groups returns the built-in groups followed by one group per plugin
// registration, all taken from a single consistent snapshot.
func (c *Catalog) Groups() []nodes.Group {
	regs := c.AllRegistrations()
	groups := make([]nodes.Group, 0, len(c.builtIn)+len(regs))
	groups = append(groups, c.builtIn...)
	for _, r := range regs {
		groups = append(groups, nodes.NewPluginGroup(string(r.Plugin), r.Kinds))
	}
	return groups
}

// Describe resolves kind to its descriptor. Kinds that cannot be
// instantiated fail with UnknownKind.
func (c *Catalog) Describe(kind nodes.KindID) (Descriptor, error) {
	spec, err := c.factory.Table().Instantiable(kind)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Kind:                 kind,
		Label:                spec.Label,
		Icon:                 spec.Icon,
		DefaultShortcut:      effectiveShortcut(c.shortcuts, kind),
		CanOverflowInToolbar: nodes.CanOverflow(kind),
	}, nil
}

// Nodes returns one uninitialized node per built-in kind, named after its
// kind, in group order.
func (c *Catalog) Nodes() ([]*nodes.Node, error) {
	var out []*nodes.Node
	for _, g := range c.builtIn {
		for _, k := range g.Kinds() {
			n, err := c.factory.Create(k, false)
			if err != nil {
				return nil, err
			}
			n.Name = k.String()
			out = append(out, n)
		}
	}
	return out, nil
}
