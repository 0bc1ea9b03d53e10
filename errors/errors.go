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
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

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

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Configuration creates a new AppError for invalid configuration.
func Configuration(reason string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: reason,
		Retryable: false,
	}
}

// MissingCredential creates a new AppError for an unresolvable API credential.
// The env var names tell the caller where a credential would have been read from.
func MissingCredential(envVars ...string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingCredential,
		Message: fmt.Sprintf("API key must be provided explicitly or via environment variables %v", envVars),
		Details: map[string]any{"env": envVars},
	}
}

// MediaExtraction creates a new AppError for a failed audio extraction.
func MediaExtraction(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeMediaExtraction, Message: fmt.Sprintf("failed to extract audio from %s", path),
		Retryable: false, Cause: cause,
		Details: map[string]any{"path": path},
	}
}

// Transcription creates a new AppError for a remote-reported transcription failure.
func Transcription(providerMessage string) *AppError {
	msg := providerMessage
	if msg == "" {
		msg = "transcription failed"
	}
	return &AppError{
		Code: ErrCodeTranscription, Message: msg,
		Retryable: false,
	}
}

// ExternalService creates a new AppError for a transport failure against a service.
func ExternalService(service string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalService, Message: fmt.Sprintf("request to %s failed", service),
		Retryable: true, Cause: cause,
		Details: map[string]any{"service": service},
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("missing required field: %s", field),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal if err is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == code
}

// IsConfiguration reports whether err is a configuration or credential error.
func IsConfiguration(err error) bool {
	return HasCode(err, ErrCodeConfiguration) || HasCode(err, ErrCodeMissingCredential)
}

// IsMediaExtraction reports whether err is a media extraction error.
func IsMediaExtraction(err error) bool {
	return HasCode(err, ErrCodeMediaExtraction)
}

// IsTranscription reports whether err is a remote-reported transcription failure.
func IsTranscription(err error) bool {
	return HasCode(err, ErrCodeTranscription)
}

// IsRetryable reports whether err is an AppError marked retryable.
func IsRetryable(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Retryable
}
