// Package plugin loads node-kind plugins. A plugin is a directory holding a
// plugin.yaml manifest that names the plugin, declares the host version it
// needs, and lists the kinds it contributes. Each kind derives its
// composition behaviour from a built-in base kind.
//
// Manifests are validated against an embedded JSON schema before they are
// decoded. Loading is all-or-nothing: a plugin whose kinds cannot all be
// registered leaves neither the kind table nor the catalog changed.
package plugin
