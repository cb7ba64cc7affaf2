package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for errors.Is. They match any *AppError with the same code.
var (
	ErrDuplicateRegistration = &AppError{Code: ErrCodeDuplicateRegistration}
	ErrUnknownKind           = &AppError{Code: ErrCodeUnknownKind}
	ErrIncompatibleKind      = &AppError{Code: ErrCodeIncompatibleKind}
	ErrNotInitialized        = &AppError{Code: ErrCodeNotInitialized}
	ErrInvalidState          = &AppError{Code: ErrCodeInvalidState}
	ErrInvalidInput          = &AppError{Code: ErrCodeInvalidInput}
	ErrInvalidManifest       = &AppError{Code: ErrCodeInvalidManifest}
	ErrIncompatibleHost      = &AppError{Code: ErrCodeIncompatibleHost}
)

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// DuplicateRegistration reports that identity is already registered in registry.
func DuplicateRegistration(registry, identity string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateRegistration,
		Message: fmt.Sprintf("%s %q is already registered", registry, identity),
		Details: map[string]any{"registry": registry, "identity": identity},
	}
}

// UnknownKind reports a kind that cannot be instantiated.
func UnknownKind(kind string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("'%s' is not a valid node kind", kind),
		Details: map[string]any{"kind": kind},
	}
}

// IncompatibleKind reports that wrapper cannot own a node of kind inner.
func IncompatibleKind(wrapper, inner string) *AppError {
	return &AppError{
		Code:    ErrCodeIncompatibleKind,
		Message: fmt.Sprintf("%s cannot hold an inner node of kind %s", wrapper, inner),
		Details: map[string]any{"wrapper": wrapper, "inner": inner},
	}
}

// NotInitialized reports use of a wrapper before Initialize.
func NotInitialized(kind string) *AppError {
	return &AppError{
		Code:    ErrCodeNotInitialized,
		Message: fmt.Sprintf("%s node is not initialized", kind),
		Details: map[string]any{"kind": kind},
	}
}

// InvalidState reports an operation that is illegal in the current state.
func InvalidState(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: reason}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// InvalidManifest reports a plugin manifest that failed validation.
func InvalidManifest(path string, issues []string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidManifest,
		Message: fmt.Sprintf("plugin manifest %s is invalid", path),
		Details: map[string]any{"path": path, "issues": issues},
	}
}

// IncompatibleHost reports a plugin that needs a newer host version.
func IncompatibleHost(plugin, required, host string) *AppError {
	return &AppError{
		Code:    ErrCodeIncompatibleHost,
		Message: fmt.Sprintf("plugin %s requires host %s or newer (running %s)", plugin, required, host),
		Details: map[string]any{"plugin": plugin, "required": required, "host": host},
	}
}

// IsCode reports whether err is an *AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
