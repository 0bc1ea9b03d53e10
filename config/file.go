package config

// SpellingEntry is a custom spelling substitution pair in the config file.
type SpellingEntry struct {
	From []string `json:"from" mapstructure:"from"`
	To   string   `json:"to" mapstructure:"to"`
}

// File is the persisted configuration shape. Keys are camelCase to match
// the config.json written by `transcribe init`. Boolean and numeric fields
// are pointers so an absent key can be told apart from an explicit zero.
type File struct {
	APIKey              string          `json:"apiKey,omitempty" mapstructure:"apiKey"`
	BaseURL             string          `json:"baseUrl,omitempty" mapstructure:"baseUrl"`
	Format              string          `json:"format,omitempty" mapstructure:"format"`
	Output              string          `json:"output,omitempty" mapstructure:"output"`
	SpeechModel         string          `json:"speechModel,omitempty" mapstructure:"speechModel"`
	LanguageDetection   *bool           `json:"languageDetection,omitempty" mapstructure:"languageDetection"`
	Language            string          `json:"language,omitempty" mapstructure:"language"`
	Punctuate           *bool           `json:"punctuate,omitempty" mapstructure:"punctuate"`
	FormatText          *bool           `json:"formatText,omitempty" mapstructure:"formatText"`
	Disfluencies        *bool           `json:"disfluencies,omitempty" mapstructure:"disfluencies"`
	FilterProfanity     *bool           `json:"filterProfanity,omitempty" mapstructure:"filterProfanity"`
	SpeakerLabels       *bool           `json:"speakerLabels,omitempty" mapstructure:"speakerLabels"`
	Multichannel        *bool           `json:"multichannel,omitempty" mapstructure:"multichannel"`
	SpeechThreshold     *float64        `json:"speechThreshold,omitempty" mapstructure:"speechThreshold"`
	CharsPerCaption     int             `json:"charsPerCaption,omitempty" mapstructure:"charsPerCaption"`
	WordBoost           []string        `json:"wordBoost,omitempty" mapstructure:"wordBoost"`
	CustomSpelling      []SpellingEntry `json:"customSpelling,omitempty" mapstructure:"customSpelling"`
	PollIntervalSeconds int             `json:"pollIntervalSeconds,omitempty" mapstructure:"pollIntervalSeconds"`
	TimeoutSeconds      int             `json:"timeoutSeconds,omitempty" mapstructure:"timeoutSeconds"`
}
