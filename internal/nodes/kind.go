package nodes

import (
	"fmt"
	"strings"
)

// KindID identifies a node kind. Built-in kinds have an empty Namespace;
// plugin kinds use the plugin identity, so two plugins may both define
// "widget" without colliding.
type KindID struct {
	Namespace string
	Name      string
}

// PluginKind returns the KindID of kind name contributed by plugin.
func PluginKind(plugin, name string) KindID {
	return KindID{Namespace: plugin, Name: name}
}

// IsBuiltIn reports whether the kind ships with the editor.
func (k KindID) IsBuiltIn() bool { return k.Namespace == "" }

// IsZero reports whether k is the zero KindID.
func (k KindID) IsZero() bool { return k.Namespace == "" && k.Name == "" }

// String returns "name" for built-ins and "namespace/name" otherwise.
func (k KindID) String() string {
	if k.Namespace == "" {
		return k.Name
	}
	return k.Namespace + "/" + k.Name
}

// MarshalText implements encoding.TextMarshaler.
func (k KindID) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseKindID parses the String form of a KindID. Names are case-insensitive.
func ParseKindID(s string) (KindID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindID{}, fmt.Errorf("empty kind id")
	}
	ns, name, found := strings.Cut(s, "/")
	if !found {
		return KindID{Name: ns}, nil
	}
	if ns == "" || name == "" || strings.Contains(name, "/") {
		return KindID{}, fmt.Errorf("malformed kind id %q", s)
	}
	return KindID{Namespace: ns, Name: name}, nil
}
