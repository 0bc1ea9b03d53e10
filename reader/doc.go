// Package reader turns audio and video media into transcript documents.
//
// TranscriptReader is the top-level entry point: it resolves credentials,
// prepares local media (extracting audio from video containers), runs one
// blocking remote transcription and wraps the rendered transcript in a
// single document.
//
//	r, err := reader.New(reader.Config{Options: transcription.DefaultOptions()})
//	doc, err := r.Transcribe(ctx, "talk.mp4", nil)
package reader
