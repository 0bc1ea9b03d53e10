package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/logger"
	"github.com/skillsenselab/transcribe/process"
)

const extractorBinary = "ffmpeg"

// runFunc matches process.Run; tests substitute it to avoid requiring ffmpeg.
type runFunc func(ctx context.Context, cmd process.Command) (*process.Result, error)

// Extractor extracts the audio track from video containers using ffmpeg.
type Extractor struct {
	tmpDir    string
	run       runFunc
	available func(binary string) bool
	log       *logger.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithTempDir sets the directory for temporary extraction files.
func WithTempDir(dir string) ExtractorOption {
	return func(e *Extractor) { e.tmpDir = dir }
}

// withRunner substitutes the subprocess runner and skips the PATH lookup.
// Test hook.
func withRunner(run runFunc) ExtractorOption {
	return func(e *Extractor) {
		e.run = run
		e.available = func(string) bool { return true }
	}
}

// NewExtractor creates an Extractor writing temp files to the OS temp dir.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		tmpDir:    os.TempDir(),
		run:       process.Run,
		available: process.Available,
		log:       logger.Get("media"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PrepareAudio returns a directly uploadable audio path for the given local
// file. Audio and unrecognized extensions pass through unchanged. Video
// extensions are extracted to a temporary mono mp3; the second return value
// is true when the caller owns a temporary file and must remove it.
func (e *Extractor) PrepareAudio(ctx context.Context, path string) (string, bool, error) {
	switch Classify(path) {
	case KindAudio, KindUnknown:
		return path, false, nil
	}

	out, err := e.extract(ctx, path)
	if err != nil {
		e.log.Error("audio extraction failed", logger.Fields(
			logger.FieldFile, path,
			logger.FieldError, err.Error(),
		))
		return "", false, err
	}
	return out, true, nil
}

// extract downmixes the first audio stream to mono mp3 in a temp file.
func (e *Extractor) extract(ctx context.Context, path string) (string, error) {
	if !e.available(extractorBinary) {
		return "", errors.MediaExtraction(path, fmt.Errorf("%s not found in PATH", extractorBinary))
	}

	out := filepath.Join(e.tmpDir, "transcribe-"+uuid.NewString()+".mp3")

	result, err := e.run(ctx, process.Command{
		Binary: extractorBinary,
		Args: []string{
			"-y", "-loglevel", "error",
			"-i", path,
			"-vn",
			"-ac", "1",
			"-codec:a", "libmp3lame",
			out,
		},
	})
	if err != nil {
		// A partial output file may exist after a failed run.
		_ = os.Remove(out)
		cause := err
		if result != nil && len(result.Stderr) > 0 {
			cause = fmt.Errorf("%w: %s", err, strings.TrimSpace(string(result.Stderr)))
		}
		return "", errors.MediaExtraction(path, cause)
	}

	e.log.Debug("audio extracted", logger.Fields(
		logger.FieldFile, path,
		"output", out,
	))
	return out, nil
}

// Cleanup removes a temporary extraction file. Failures are logged as
// warnings and never returned: cleanup must not affect the outcome of the
// surrounding operation.
func (e *Extractor) Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		e.log.Warn("failed to remove temporary file", logger.Fields(
			logger.FieldFile, path,
			logger.FieldError, err.Error(),
		))
	}
}
