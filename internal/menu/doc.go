// Package menu lays out the node kinds of a catalog as toolbar buttons or
// menu entries. It produces plain data; rendering is left to the caller.
package menu
