// Package process runs external media tooling (ffmpeg) as subprocesses with
// context-aware cancellation: SIGTERM first, SIGKILL after a grace period.
package process
