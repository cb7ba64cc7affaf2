// Package scaffold generates new kind plugins from embedded templates. It
// powers the "nodekit plugin init" command, producing a plugin directory with
// a schema-valid plugin.yaml and a README describing how to install it.
package scaffold
