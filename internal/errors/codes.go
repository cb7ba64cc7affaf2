package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registry errors
const (
	// ErrCodeDuplicateRegistration indicates an identity was registered twice.
	ErrCodeDuplicateRegistration ErrorCode = "DUPLICATE_REGISTRATION"
	// ErrCodeUnknownKind indicates a kind that cannot be instantiated or described.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"
	// ErrCodeIncompatibleKind indicates a swap that violates a composition policy.
	ErrCodeIncompatibleKind ErrorCode = "INCOMPATIBLE_KIND"
)

// Node state errors
const (
	// ErrCodeNotInitialized indicates an operation on an uninitialized wrapper.
	ErrCodeNotInitialized ErrorCode = "NOT_INITIALIZED"
	// ErrCodeInvalidState indicates an operation that is illegal in the current state.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidManifest indicates a plugin manifest failed validation.
	ErrCodeInvalidManifest ErrorCode = "INVALID_MANIFEST"
	// ErrCodeIncompatibleHost indicates a plugin requires a newer host.
	ErrCodeIncompatibleHost ErrorCode = "INCOMPATIBLE_HOST"
)
