// Package cli defines the Cobra command tree for the nodekit CLI. Each file
// in this package registers one top-level command (kinds, describe, menu,
// plugin, etc.) with the root command. Commands delegate to the catalog,
// plugin, and menu packages and only handle flag parsing and output
// formatting.
package cli
