package nodes

// Group is an ordered run of related kinds rendered next to each other.
// Plugin is empty for built-in groups.
type Group struct {
	Name   string
	Plugin string
	kinds  []KindID
}

// NewGroup returns a built-in style group.
func NewGroup(name string, kinds ...KindID) Group {
	return Group{Name: name, kinds: append([]KindID(nil), kinds...)}
}

// NewPluginGroup returns the group presenting a plugin's kinds.
func NewPluginGroup(plugin string, kinds []KindID) Group {
	return Group{
		Name:   plugin,
		Plugin: plugin,
		kinds:  append([]KindID(nil), kinds...),
	}
}

// Kinds returns a copy of the group's kinds in order.
func (g Group) Kinds() []KindID {
	return append([]KindID(nil), g.kinds...)
}

// Len returns the number of kinds in the group.
func (g Group) Len() int { return len(g.kinds) }

// Contains reports whether kind belongs to the group.
func (g Group) Contains(kind KindID) bool {
	for _, k := range g.kinds {
		if k == kind {
			return true
		}
	}
	return false
}
