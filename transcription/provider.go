package transcription

import (
	"context"

	"github.com/skillsenselab/transcribe/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe submits the audio and blocks until the backend finishes,
	// returning the completed transcript.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
