// Package logger wraps zerolog with the structured logging conventions used
// across nodekit: a global logger configured once at startup, component
// loggers tagged with the subsystem name, and map-based fields.
package logger
