package assemblyai

import "github.com/skillsenselab/transcribe/transcription"

// Transcript lifecycle statuses reported by the service.
const (
	statusQueued     = "queued"
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusError      = "error"
)

// uploadResponse is the body of POST /v2/upload.
type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

// spellingEntry mirrors the service's custom_spelling element.
type spellingEntry struct {
	From []string `json:"from"`
	To   string   `json:"to"`
}

// transcriptRequest is the body of POST /v2/transcript.
type transcriptRequest struct {
	AudioURL          string          `json:"audio_url"`
	SpeechModel       string          `json:"speech_model,omitempty"`
	LanguageDetection bool            `json:"language_detection"`
	LanguageCode      string          `json:"language_code,omitempty"`
	Punctuate         bool            `json:"punctuate"`
	FormatText        bool            `json:"format_text"`
	Disfluencies      bool            `json:"disfluencies"`
	FilterProfanity   bool            `json:"filter_profanity"`
	SpeakerLabels     bool            `json:"speaker_labels"`
	Multichannel      bool            `json:"multichannel"`
	SpeechThreshold   *float64        `json:"speech_threshold,omitempty"`
	WordBoost         []string        `json:"word_boost,omitempty"`
	CustomSpelling    []spellingEntry `json:"custom_spelling,omitempty"`
}

// transcriptResponse is the body of POST /v2/transcript and
// GET /v2/transcript/{id}.
type transcriptResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Text          string  `json:"text"`
	Error         string  `json:"error"`
	LanguageCode  string  `json:"language_code"`
	AudioDuration float64 `json:"audio_duration"`
}

// buildPayload maps Options onto the wire request. The language code is
// sent only when detection is off, and list fields only when non-empty
// (their omitempty tags handle the latter).
func buildPayload(audioURL string, opts transcription.Options) transcriptRequest {
	payload := transcriptRequest{
		AudioURL:          audioURL,
		SpeechModel:       string(opts.SpeechModel),
		LanguageDetection: opts.LanguageDetection,
		Punctuate:         opts.Punctuate,
		FormatText:        opts.FormatText,
		Disfluencies:      opts.Disfluencies,
		FilterProfanity:   opts.FilterProfanity,
		SpeakerLabels:     opts.SpeakerLabels,
		Multichannel:      opts.Multichannel,
		SpeechThreshold:   opts.SpeechThreshold,
		WordBoost:         opts.WordBoost,
	}
	if !opts.LanguageDetection {
		payload.LanguageCode = opts.Language
	}
	for _, entry := range opts.CustomSpelling {
		payload.CustomSpelling = append(payload.CustomSpelling, spellingEntry{From: entry.From, To: entry.To})
	}
	return payload
}
