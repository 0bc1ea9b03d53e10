package transcription

import (
	"context"
	"fmt"

	"github.com/skillsenselab/transcribe/errors"
)

// Request holds the input for a transcription call. Exactly one of
// AudioPath and AudioURL must be set.
type Request struct {
	// AudioPath is the path to a local audio file to upload.
	AudioPath string `json:"audio_path,omitempty"`
	// AudioURL is a publicly reachable URL passed straight to the backend.
	AudioURL string `json:"audio_url,omitempty"`
	// Options are the transcription parameters for this call.
	Options Options `json:"options"`
}

// Validate checks that the request names exactly one audio source.
func (r Request) Validate() error {
	if r.AudioPath == "" && r.AudioURL == "" {
		return errors.InvalidInput("audio", "request must set an audio path or URL")
	}
	if r.AudioPath != "" && r.AudioURL != "" {
		return errors.InvalidInput("audio", "request must set either an audio path or a URL, not both")
	}
	return nil
}

// SubtitleRenderer produces subtitles for a completed transcript in the
// given format with at most charsPerCaption characters per caption.
type SubtitleRenderer func(ctx context.Context, format Format, charsPerCaption int) (string, error)

// Result holds a completed transcript.
type Result struct {
	// ID is the backend's identifier for the transcript.
	ID string `json:"id"`
	// Text is the full transcript text. Empty when the audio contained
	// no recognizable speech; never reported as an error.
	Text string `json:"text"`
	// Language is the detected or requested language code.
	Language string `json:"language,omitempty"`
	// Duration is the audio duration in seconds, when reported.
	Duration float64 `json:"duration,omitempty"`

	render SubtitleRenderer
}

// NewResult creates a Result whose SRT and VTT methods use the given
// renderer. A nil renderer makes subtitle rendering fail.
func NewResult(id, text string, render SubtitleRenderer) *Result {
	return &Result{ID: id, Text: text, render: render}
}

// SRT renders the transcript as SubRip subtitles.
func (r *Result) SRT(ctx context.Context, charsPerCaption int) (string, error) {
	return r.subtitles(ctx, FormatSRT, charsPerCaption)
}

// VTT renders the transcript as WebVTT subtitles.
func (r *Result) VTT(ctx context.Context, charsPerCaption int) (string, error) {
	return r.subtitles(ctx, FormatVTT, charsPerCaption)
}

func (r *Result) subtitles(ctx context.Context, format Format, charsPerCaption int) (string, error) {
	if r.render == nil {
		return "", errors.Internal(fmt.Errorf("transcript does not support subtitle rendering"))
	}
	return r.render(ctx, format, charsPerCaption)
}
