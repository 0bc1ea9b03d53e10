package reader

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skillsenselab/transcribe/config"
	"github.com/skillsenselab/transcribe/document"
	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/logger"
	"github.com/skillsenselab/transcribe/media"
	"github.com/skillsenselab/transcribe/transcription"
	"github.com/skillsenselab/transcribe/transcription/assemblyai"
)

// audioPreparer prepares a local media file for upload and cleans up any
// temporary file it produced.
type audioPreparer interface {
	PrepareAudio(ctx context.Context, path string) (audioPath string, temporary bool, err error)
	Cleanup(path string)
}

// Config configures a TranscriptReader.
type Config struct {
	// APIKey authenticates against the transcription service. When empty
	// it is resolved from the environment.
	APIKey string
	// BaseURL overrides the service endpoint. Empty uses the default.
	BaseURL string
	// PollInterval is the delay between transcript status checks.
	PollInterval time.Duration
	// Timeout bounds a whole transcription call. Zero means unbounded.
	Timeout time.Duration
	// Options are the transcription parameters applied to every call.
	Options transcription.Options
}

// Option customizes a TranscriptReader.
type Option func(*TranscriptReader)

// WithProvider substitutes the transcription backend.
func WithProvider(p transcription.Provider) Option {
	return func(r *TranscriptReader) { r.provider = p }
}

// withPreparer substitutes the media preparer. Test hook.
func withPreparer(p audioPreparer) Option {
	return func(r *TranscriptReader) { r.prepare = p }
}

// TranscriptReader transcribes audio and video media into documents. It is
// stateless across calls and safe for concurrent use.
type TranscriptReader struct {
	opts     transcription.Options
	provider transcription.Provider
	prepare  audioPreparer
	loader   *document.FlatLoader
	log      *logger.Logger
}

// New creates a TranscriptReader. The API key is resolved from the config
// value and the environment; a missing credential or invalid options fail
// construction.
func New(cfg Config, opts ...Option) (*TranscriptReader, error) {
	cfg.Options.ApplyDefaults()
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}

	r := &TranscriptReader{
		opts:    cfg.Options,
		prepare: media.NewExtractor(),
		loader:  document.NewFlatLoader(),
		log:     logger.Get("reader"),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.provider == nil {
		key, err := config.ResolveAPIKey(cfg.APIKey)
		if err != nil {
			return nil, err
		}
		p, err := assemblyai.New(assemblyai.Config{
			APIKey:       key,
			BaseURL:      cfg.BaseURL,
			PollInterval: cfg.PollInterval,
			Timeout:      cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		r.provider = p
	}
	return r, nil
}

// Transcribe transcribes the media at the given path or URL and returns
// exactly one document holding the rendered transcript. URL inputs skip all
// local filesystem handling. Extra metadata entries are merged into the
// document's metadata.
func (r *TranscriptReader) Transcribe(ctx context.Context, mediaRef string, extra map[string]string) (*document.Document, error) {
	if mediaRef == "" {
		return nil, errors.InvalidInput("media", "media reference must not be empty")
	}

	req := transcription.Request{Options: r.opts}
	if media.IsURL(mediaRef) {
		req.AudioURL = mediaRef
	} else {
		path, temporary, err := r.prepare.PrepareAudio(ctx, mediaRef)
		if err != nil {
			return nil, err
		}
		if temporary {
			defer r.prepare.Cleanup(path)
		}
		req.AudioPath = path
	}

	result, err := r.provider.Transcribe(ctx, req)
	if err != nil {
		r.log.Error("transcription failed", refFields(mediaRef, logger.FieldError, err.Error()))
		return nil, err
	}

	text, err := r.render(ctx, result)
	if err != nil {
		r.log.Error("transcript rendering failed", refFields(mediaRef, logger.FieldError, err.Error()))
		return nil, err
	}

	doc, err := r.wrap(text, extra)
	if err != nil {
		return nil, err
	}
	r.log.Info("media transcribed", refFields(mediaRef,
		logger.FieldFormat, string(r.opts.Format),
		"document_id", doc.ID,
	))
	return doc, nil
}

// render produces the output text for the configured format. Text output is
// the raw transcript; an empty transcript yields an empty string, never an
// error.
func (r *TranscriptReader) render(ctx context.Context, result *transcription.Result) (string, error) {
	switch r.opts.Format {
	case transcription.FormatSRT:
		return result.SRT(ctx, r.opts.CharsPerCaption)
	case transcription.FormatVTT:
		return result.VTT(ctx, r.opts.CharsPerCaption)
	default:
		return result.Text, nil
	}
}

// wrap round-trips the rendered text through the flat loader via a temp
// file so the document carries the same metadata shape as any loaded text
// file, plus the caller's extras.
func (r *TranscriptReader) wrap(text string, extra map[string]string) (*document.Document, error) {
	f, err := os.CreateTemp("", "transcribe-*.txt")
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("create transcript temp file: %w", err))
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return nil, errors.Internal(fmt.Errorf("write transcript temp file: %w", err))
	}
	if err := f.Close(); err != nil {
		return nil, errors.Internal(fmt.Errorf("close transcript temp file: %w", err))
	}

	doc, err := r.loader.Load(f.Name(), extra)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return doc, nil
}

// refFields builds log fields keyed by whether the reference is a URL or a
// local file.
func refFields(mediaRef string, extra ...interface{}) map[string]interface{} {
	key := logger.FieldFile
	if media.IsURL(mediaRef) {
		key = logger.FieldURL
	}
	return logger.Fields(append([]interface{}{key, mediaRef}, extra...)...)
}
