// Package catalog is the node-kind catalog presented to the editor: the fixed
// built-in kind groups plus one group per loaded plugin, and the resolution of
// a kind to the label, icon, and shortcut shown in menus and toolbars.
//
// Plugin registrations keep their insertion order. Registering an identity
// twice fails with DuplicateRegistration; unregistering an unknown identity
// is a no-op so plugin unload paths can call it unconditionally.
package catalog
