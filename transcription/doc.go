// Package transcription defines the provider contract and common option
// types for speech-to-text backends.
//
// It follows the provider pattern with a pluggable registry so hosts can
// select backends at runtime.
//
// # Backends
//
//   - transcription/assemblyai: AssemblyAI hosted speech-to-text
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(assemblyai.ProviderName, assemblyai.Factory())
//	p, err := reg.Create(assemblyai.ProviderName, map[string]any{"api_key": key})
//	result, err := p.Transcribe(ctx, transcription.Request{AudioPath: "talk.mp3"})
package transcription
