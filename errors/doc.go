// Package errors provides unified error handling for the transcribe library.
// It implements structured error types with machine-readable codes and
// retryable detection, so callers can tell configuration problems, local
// media failures, and remote transcription failures apart without string
// matching.
package errors
