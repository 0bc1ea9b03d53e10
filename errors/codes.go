package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (fail at construction, never retryable)
const (
	// ErrCodeConfiguration indicates invalid or unresolvable configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeMissingCredential indicates no API credential could be resolved.
	ErrCodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
)

// Media errors (fail before any network call)
const (
	// ErrCodeMediaExtraction indicates audio extraction from a local
	// container failed.
	ErrCodeMediaExtraction ErrorCode = "MEDIA_EXTRACTION_ERROR"
)

// Remote service errors
const (
	// ErrCodeTranscription indicates the remote service reported a failed
	// transcription.
	ErrCodeTranscription ErrorCode = "TRANSCRIPTION_ERROR"
	// ErrCodeExternalService indicates a transport-level failure talking to
	// the remote service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:          true,
	ErrCodeConnectionFailed: true,
	ErrCodeRateLimited:      true,
	ErrCodeExternalService:  true,
	ErrCodeTranscription:    false,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
