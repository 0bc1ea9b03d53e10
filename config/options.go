package config

import (
	"time"

	"github.com/skillsenselab/transcribe/transcription"
)

// TranscriptionOptions converts the persisted config into a validated
// Options snapshot. Absent keys keep their defaults; unknown enum values
// are rejected.
func (f File) TranscriptionOptions() (transcription.Options, error) {
	o := transcription.DefaultOptions()

	if f.SpeechModel != "" {
		model, err := transcription.ParseSpeechModel(f.SpeechModel)
		if err != nil {
			return o, err
		}
		o.SpeechModel = model
	}
	if f.Format != "" {
		format, err := transcription.ParseFormat(f.Format)
		if err != nil {
			return o, err
		}
		o.Format = format
	}
	if f.LanguageDetection != nil {
		o.LanguageDetection = *f.LanguageDetection
	}
	if f.Language != "" {
		o.Language = f.Language
	}
	if f.Punctuate != nil {
		o.Punctuate = *f.Punctuate
	}
	if f.FormatText != nil {
		o.FormatText = *f.FormatText
	}
	if f.Disfluencies != nil {
		o.Disfluencies = *f.Disfluencies
	}
	if f.FilterProfanity != nil {
		o.FilterProfanity = *f.FilterProfanity
	}
	if f.SpeakerLabels != nil {
		o.SpeakerLabels = *f.SpeakerLabels
	}
	if f.Multichannel != nil {
		o.Multichannel = *f.Multichannel
	}
	if f.SpeechThreshold != nil {
		o.SpeechThreshold = f.SpeechThreshold
	}
	if f.CharsPerCaption > 0 {
		o.CharsPerCaption = f.CharsPerCaption
	}
	if len(f.WordBoost) > 0 {
		o.WordBoost = f.WordBoost
	}
	for _, entry := range f.CustomSpelling {
		o.CustomSpelling = append(o.CustomSpelling, transcription.SpellingEntry{
			From: entry.From,
			To:   entry.To,
		})
	}

	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// PollInterval returns the configured poll interval, or zero when unset.
func (f File) PollInterval() time.Duration {
	return time.Duration(f.PollIntervalSeconds) * time.Second
}

// Timeout returns the configured overall timeout, or zero when unset.
func (f File) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}
