package assemblyai

import (
	"time"

	"github.com/skillsenselab/transcribe/errors"
)

const (
	// ProviderName is the registry name of this backend.
	ProviderName = "assemblyai"

	// DefaultBaseURL is the AssemblyAI EU endpoint.
	DefaultBaseURL = "https://api.eu.assemblyai.com"

	// DefaultPollInterval is the delay between transcript status checks.
	DefaultPollInterval = 3 * time.Second

	// DefaultHTTPTimeout bounds a single HTTP request. Uploads of large
	// media files dominate, so this is much longer than a typical API
	// round trip.
	DefaultHTTPTimeout = 10 * time.Minute
)

// Config configures the AssemblyAI provider.
type Config struct {
	// APIKey authenticates against the service. Required.
	APIKey string `json:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the service endpoint. Defaults to the EU endpoint.
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url"`
	// PollInterval is the delay between status checks while a transcript
	// is queued or processing.
	PollInterval time.Duration `json:"poll_interval,omitempty" mapstructure:"poll_interval"`
	// Timeout bounds the whole transcription call (upload, submit and
	// poll together). Zero means no bound beyond the caller's context.
	Timeout time.Duration `json:"timeout,omitempty" mapstructure:"timeout"`
	// HTTPTimeout bounds each individual HTTP request.
	HTTPTimeout time.Duration `json:"http_timeout,omitempty" mapstructure:"http_timeout"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.Configuration("assemblyai: api key is required")
	}
	return nil
}
