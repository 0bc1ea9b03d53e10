package transcription

import (
	"fmt"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/validation"
)

// SpeechModel selects the recognition model tier.
type SpeechModel string

const (
	// SpeechModelBest is the highest-accuracy model.
	SpeechModelBest SpeechModel = "best"
	// SpeechModelNano is the fastest, lowest-cost model.
	SpeechModelNano SpeechModel = "nano"
)

// ParseSpeechModel converts a string to a SpeechModel.
func ParseSpeechModel(s string) (SpeechModel, error) {
	switch SpeechModel(s) {
	case SpeechModelBest, SpeechModelNano:
		return SpeechModel(s), nil
	}
	return "", errors.InvalidInput("speech_model", fmt.Sprintf("unknown speech model %q (expected best or nano)", s))
}

// Format is the requested transcript output format.
type Format string

const (
	// FormatText returns the raw transcript text.
	FormatText Format = "text"
	// FormatSRT returns SubRip subtitles.
	FormatSRT Format = "srt"
	// FormatVTT returns WebVTT subtitles.
	FormatVTT Format = "vtt"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatSRT, FormatVTT:
		return Format(s), nil
	}
	return "", errors.InvalidInput("format", fmt.Sprintf("unknown output format %q (expected text, srt or vtt)", s))
}

// SpellingEntry rewrites a recognized term in the transcript.
type SpellingEntry struct {
	// From lists the spellings to replace.
	From []string `json:"from" validate:"required,min=1"`
	// To is the replacement spelling.
	To string `json:"to" validate:"required"`
}

// Options is an immutable snapshot of transcription parameters. Zero values
// are completed by ApplyDefaults; a populated Options passes Validate.
type Options struct {
	// SpeechModel selects the model tier.
	SpeechModel SpeechModel `json:"speech_model" validate:"omitempty,oneof=best nano"`
	// Format is the requested output format.
	Format Format `json:"format" validate:"omitempty,oneof=text srt vtt"`
	// LanguageDetection enables automatic language identification.
	// When true, Language is ignored.
	LanguageDetection bool `json:"language_detection"`
	// Language is the expected language code (e.g. "en"). Honored only
	// when LanguageDetection is false.
	Language string `json:"language,omitempty"`
	// Punctuate enables automatic punctuation.
	Punctuate bool `json:"punctuate"`
	// FormatText enables casing and number formatting.
	FormatText bool `json:"format_text"`
	// Disfluencies keeps filler words ("um", "uh") in the transcript.
	Disfluencies bool `json:"disfluencies"`
	// FilterProfanity replaces profanity with asterisks.
	FilterProfanity bool `json:"filter_profanity"`
	// SpeakerLabels enables speaker diarization.
	SpeakerLabels bool `json:"speaker_labels"`
	// Multichannel transcribes each audio channel independently.
	Multichannel bool `json:"multichannel"`
	// SpeechThreshold rejects files whose speech fraction is below the
	// given value. Nil leaves the service default.
	SpeechThreshold *float64 `json:"speech_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	// CharsPerCaption caps subtitle caption width. Applies to srt/vtt.
	CharsPerCaption int `json:"chars_per_caption" validate:"omitempty,min=1"`
	// WordBoost lists terms to bias recognition towards.
	WordBoost []string `json:"word_boost,omitempty"`
	// CustomSpelling rewrites recognized terms.
	CustomSpelling []SpellingEntry `json:"custom_spelling,omitempty" validate:"omitempty,dive"`
}

// DefaultCharsPerCaption is the subtitle caption width used when none is
// configured.
const DefaultCharsPerCaption = 128

// DefaultOptions returns the baseline Options: best model, text format,
// language detection, punctuation, text formatting and multichannel on,
// caption width of DefaultCharsPerCaption. Config layers start from this
// and overwrite only the fields the user set.
func DefaultOptions() Options {
	return Options{
		SpeechModel:       SpeechModelBest,
		Format:            FormatText,
		LanguageDetection: true,
		Punctuate:         true,
		FormatText:        true,
		Multichannel:      true,
		CharsPerCaption:   DefaultCharsPerCaption,
	}
}

// ApplyDefaults fills unset non-boolean fields. Booleans are left alone:
// false is a legal explicit value, so their defaults live in
// DefaultOptions and the config layer.
func (o *Options) ApplyDefaults() {
	if o.SpeechModel == "" {
		o.SpeechModel = SpeechModelBest
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.CharsPerCaption == 0 {
		o.CharsPerCaption = DefaultCharsPerCaption
	}
}

// Validate checks ranges and enumerations, returning a validation error
// naming the offending field.
func (o Options) Validate() error {
	if err := validation.Validate(o); err != nil {
		return err
	}
	for i, entry := range o.CustomSpelling {
		if len(entry.From) == 0 || entry.To == "" {
			return errors.InvalidInput("custom_spelling", fmt.Sprintf("entry %d must have a non-empty from list and to value", i))
		}
		for _, from := range entry.From {
			if from == "" {
				return errors.InvalidInput("custom_spelling", fmt.Sprintf("entry %d contains an empty from value", i))
			}
		}
	}
	return nil
}
