package assemblyai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/httpclient"
	"github.com/skillsenselab/transcribe/logger"
	"github.com/skillsenselab/transcribe/provider"
	"github.com/skillsenselab/transcribe/transcription"
)

// Provider implements transcription.Provider against the AssemblyAI
// v2 REST API. It is stateless and safe for concurrent use.
type Provider struct {
	cfg    Config
	client *httpclient.Client
	log    *logger.Logger
}

// New creates an AssemblyAI provider from the given configuration.
func New(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		Auth:    httpclient.APIKeyAuthHeader(cfg.APIKey, "authorization"),
	})
	if err != nil {
		return nil, errors.Configuration(fmt.Sprintf("assemblyai: %v", err))
	}

	return &Provider{
		cfg:    cfg,
		client: client,
		log:    logger.Get("assemblyai"),
	}, nil
}

// Factory returns a registry factory for this provider. Recognized config
// keys: api_key (required), base_url, poll_interval, timeout.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		var c Config
		if v, ok := cfg["api_key"].(string); ok {
			c.APIKey = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			c.BaseURL = v
		}
		if v, ok := cfg["poll_interval"].(time.Duration); ok {
			c.PollInterval = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			c.Timeout = v
		}
		return New(c)
	}
}

// Name returns the provider's registry name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured with a credential.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe uploads local audio when needed, submits a transcript job and
// polls until it completes. The returned Result renders subtitles through
// the service's subtitle endpoints.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	audioURL := req.AudioURL
	if req.AudioPath != "" {
		uploaded, err := p.upload(ctx, req.AudioPath)
		if err != nil {
			return nil, err
		}
		audioURL = uploaded
	}

	submitted, err := p.submit(ctx, buildPayload(audioURL, req.Options))
	if err != nil {
		return nil, err
	}
	p.log.Debug("transcript submitted", logger.Fields(
		logger.FieldProvider, ProviderName,
		"transcript_id", submitted.ID,
	))

	final, err := p.poll(ctx, submitted)
	if err != nil {
		return nil, err
	}
	if final.Status == statusError {
		return nil, errors.Transcription(final.Error)
	}

	result := transcription.NewResult(final.ID, final.Text, p.renderSubtitles(final.ID))
	result.Language = final.LanguageCode
	result.Duration = final.AudioDuration
	return result, nil
}

// upload streams a local file to /v2/upload and returns its temporary URL.
func (p *Provider) upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.InvalidInput("audio_path", fmt.Sprintf("cannot open %s: %v", path, err))
	}
	defer func() { _ = f.Close() }()

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    "/v2/upload",
		Headers: map[string]string{"Content-Type": "application/octet-stream"},
		Body:    f,
	})
	if err != nil {
		return "", p.wireError("upload", err)
	}

	var body uploadResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", errors.ExternalService(ProviderName, fmt.Errorf("decode upload response: %w", err))
	}
	if body.UploadURL == "" {
		return "", errors.ExternalService(ProviderName, fmt.Errorf("upload response missing upload_url"))
	}
	return body.UploadURL, nil
}

// submit creates the transcript job.
func (p *Provider) submit(ctx context.Context, payload transcriptRequest) (*transcriptResponse, error) {
	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v2/transcript",
		Body:   payload,
	})
	if err != nil {
		return nil, p.wireError("submit", err)
	}

	var body transcriptResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.ExternalService(ProviderName, fmt.Errorf("decode transcript response: %w", err))
	}
	if body.ID == "" {
		return nil, errors.ExternalService(ProviderName, fmt.Errorf("transcript response missing id"))
	}
	return &body, nil
}

// poll re-reads the transcript until it leaves the queued/processing states.
func (p *Provider) poll(ctx context.Context, current *transcriptResponse) (*transcriptResponse, error) {
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		switch current.Status {
		case statusQueued, statusProcessing:
		default:
			return current, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Timeout("transcription").WithDetail("transcript_id", current.ID)
		case <-ticker.C:
		}

		resp, err := p.client.Do(ctx, httpclient.Request{
			Method: http.MethodGet,
			Path:   "/v2/transcript/" + current.ID,
		})
		if err != nil {
			return nil, p.wireError("poll", err)
		}

		var body transcriptResponse
		if err := json.Unmarshal(resp.Body, &body); err != nil {
			return nil, errors.ExternalService(ProviderName, fmt.Errorf("decode transcript response: %w", err))
		}
		current = &body
	}
}

// renderSubtitles returns a renderer hitting the transcript's srt/vtt
// endpoints. The service returns the subtitle body verbatim.
func (p *Provider) renderSubtitles(id string) transcription.SubtitleRenderer {
	return func(ctx context.Context, format transcription.Format, charsPerCaption int) (string, error) {
		switch format {
		case transcription.FormatSRT, transcription.FormatVTT:
		default:
			return "", errors.InvalidInput("format", fmt.Sprintf("%q is not a subtitle format", format))
		}

		query := map[string]string{}
		if charsPerCaption > 0 {
			query["chars_per_caption"] = strconv.Itoa(charsPerCaption)
		}
		resp, err := p.client.Do(ctx, httpclient.Request{
			Method: http.MethodGet,
			Path:   "/v2/transcript/" + id + "/" + string(format),
			Query:  query,
		})
		if err != nil {
			return "", p.wireError("subtitles", err)
		}
		return string(resp.Body), nil
	}
}

// wireError maps transport failures onto the application error taxonomy.
func (p *Provider) wireError(operation string, err error) error {
	p.log.Error("request failed", logger.Fields(
		logger.FieldProvider, ProviderName,
		logger.FieldOperation, operation,
		logger.FieldError, err.Error(),
	))
	if httpclient.IsTimeout(err) {
		return errors.Timeout(operation).WithCause(err)
	}
	return errors.ExternalService(ProviderName, err)
}
