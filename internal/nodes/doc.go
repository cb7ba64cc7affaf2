// Package nodes defines node kinds and node instances for the layout editor.
//
// A kind is identified by a KindID and described by a KindSpec row in a
// Table. The table replaces per-kind subclasses: label, icon, whether the kind
// is abstract, and which inner kinds a wrapper may own are all plain data.
// Built-in kinds are preloaded by NewTable; plugins add their own rows at load
// time under their own namespace.
//
// A Factory turns a KindID into a fresh *Node. Wrapper nodes (kinds whose
// spec carries an Accepts set) own exactly one inner node once initialized,
// and ChangeInnerNode enforces the composition policy on every swap.
package nodes
