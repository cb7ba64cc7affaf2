// Package errors provides the coded error type shared by the registry,
// factory, and plugin host. Every failure the registry reports to its callers
// is an *AppError carrying a machine-readable ErrorCode, so callers can branch
// with errors.Is against the exported sentinels.
package errors
