package reader

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/transcription"
)

// fakeProvider records the request and returns a canned result.
type fakeProvider struct {
	req    transcription.Request
	calls  int
	text   string
	srt    string
	vtt    string
	err    error
	rFmt   transcription.Format
	rWidth int
}

func (f *fakeProvider) Name() string                         { return "fake" }
func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (f *fakeProvider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	f.req = req
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return transcription.NewResult("tr_1", f.text, func(ctx context.Context, format transcription.Format, width int) (string, error) {
		f.rFmt = format
		f.rWidth = width
		if format == transcription.FormatSRT {
			return f.srt, nil
		}
		return f.vtt, nil
	}), nil
}

// fakePreparer simulates media preparation without ffmpeg.
type fakePreparer struct {
	out       string
	temporary bool
	err       error
	prepared  []string
	cleaned   []string
}

func (f *fakePreparer) PrepareAudio(ctx context.Context, path string) (string, bool, error) {
	f.prepared = append(f.prepared, path)
	if f.err != nil {
		return "", false, f.err
	}
	out := f.out
	if out == "" {
		out = path
	}
	return out, f.temporary, nil
}

func (f *fakePreparer) Cleanup(path string) { f.cleaned = append(f.cleaned, path) }

func newTestReader(t *testing.T, opts transcription.Options, p *fakeProvider, prep *fakePreparer) *TranscriptReader {
	t.Helper()
	r, err := New(Config{Options: opts}, WithProvider(p), withPreparer(prep))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestTranscribe_LocalAudio(t *testing.T) {
	p := &fakeProvider{text: "hello from audio"}
	prep := &fakePreparer{}
	r := newTestReader(t, transcription.DefaultOptions(), p, prep)

	doc, err := r.Transcribe(context.Background(), "episode.mp3", map[string]string{"show": "s1"})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if doc.Text != "hello from audio" {
		t.Errorf("Text = %q, want the raw transcript", doc.Text)
	}
	if doc.ID == "" {
		t.Error("document has no ID")
	}
	if p.req.AudioPath != "episode.mp3" || p.req.AudioURL != "" {
		t.Errorf("request = %+v, want the local path only", p.req)
	}
	if doc.Metadata["show"] != "s1" {
		t.Errorf("metadata %v missing caller extras", doc.Metadata)
	}
	if doc.Metadata["extension"] != ".txt" {
		t.Errorf("metadata extension = %q, want .txt from the flat loader", doc.Metadata["extension"])
	}
	if len(prep.cleaned) != 0 {
		t.Errorf("cleanup called for a pass-through input: %v", prep.cleaned)
	}
}

func TestTranscribe_URLBypassesLocalHandling(t *testing.T) {
	p := &fakeProvider{text: "remote"}
	prep := &fakePreparer{}
	r := newTestReader(t, transcription.DefaultOptions(), p, prep)

	doc, err := r.Transcribe(context.Background(), "https://example.com/a.mp3", nil)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if doc.Text != "remote" {
		t.Errorf("Text = %q", doc.Text)
	}
	if p.req.AudioURL != "https://example.com/a.mp3" || p.req.AudioPath != "" {
		t.Errorf("request = %+v, want the URL only", p.req)
	}
	if len(prep.prepared) != 0 {
		t.Errorf("media preparation ran for a URL input: %v", prep.prepared)
	}
}

func TestTranscribe_VideoExtractionAndCleanup(t *testing.T) {
	opts := transcription.DefaultOptions()
	opts.Format = transcription.FormatSRT
	opts.CharsPerCaption = 256

	p := &fakeProvider{srt: "1\n00:00:00,000 --> 00:00:01,000\nhi\n"}
	prep := &fakePreparer{out: "/tmp/extracted.mp3", temporary: true}
	r := newTestReader(t, opts, p, prep)

	doc, err := r.Transcribe(context.Background(), "talk.mp4", nil)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if !strings.Contains(doc.Text, "-->") {
		t.Errorf("Text = %q, want SRT content", doc.Text)
	}
	if p.req.AudioPath != "/tmp/extracted.mp3" {
		t.Errorf("provider received %q, want the extracted file", p.req.AudioPath)
	}
	if p.rFmt != transcription.FormatSRT || p.rWidth != 256 {
		t.Errorf("renderer called with (%q, %d), want (srt, 256)", p.rFmt, p.rWidth)
	}
	if len(prep.cleaned) != 1 || prep.cleaned[0] != "/tmp/extracted.mp3" {
		t.Errorf("cleaned = %v, want the extracted file", prep.cleaned)
	}
}

func TestTranscribe_CleanupAfterProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.Transcription("upstream exploded")}
	prep := &fakePreparer{out: "/tmp/extracted.mp3", temporary: true}
	r := newTestReader(t, transcription.DefaultOptions(), p, prep)

	_, err := r.Transcribe(context.Background(), "talk.mkv", nil)
	if !errors.IsTranscription(err) {
		t.Fatalf("error = %v, want the provider's transcription error", err)
	}
	if len(prep.cleaned) != 1 {
		t.Errorf("cleaned = %v, want exactly one cleanup despite the failure", prep.cleaned)
	}
}

func TestTranscribe_ExtractionFailureSkipsRemoteCall(t *testing.T) {
	p := &fakeProvider{}
	prep := &fakePreparer{err: errors.MediaExtraction("talk.mp4", os.ErrNotExist)}
	r := newTestReader(t, transcription.DefaultOptions(), p, prep)

	_, err := r.Transcribe(context.Background(), "talk.mp4", nil)
	if !errors.IsMediaExtraction(err) {
		t.Fatalf("error = %v, want media extraction", err)
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times after a failed extraction", p.calls)
	}
}

func TestTranscribe_EmptyTranscript(t *testing.T) {
	p := &fakeProvider{text: ""}
	r := newTestReader(t, transcription.DefaultOptions(), p, &fakePreparer{})

	doc, err := r.Transcribe(context.Background(), "silence.wav", nil)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("Text = %q, want empty string", doc.Text)
	}
}

func TestTranscribe_VTTFormat(t *testing.T) {
	opts := transcription.DefaultOptions()
	opts.Format = transcription.FormatVTT

	p := &fakeProvider{vtt: "WEBVTT\n\n00:00.000 --> 00:01.000\nhi\n"}
	r := newTestReader(t, opts, p, &fakePreparer{})

	doc, err := r.Transcribe(context.Background(), "episode.mp3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(doc.Text, "WEBVTT") {
		t.Errorf("Text = %q, want WebVTT content", doc.Text)
	}
	if p.rFmt != transcription.FormatVTT || p.rWidth != transcription.DefaultCharsPerCaption {
		t.Errorf("renderer called with (%q, %d)", p.rFmt, p.rWidth)
	}
}

func TestTranscribe_EmptyReference(t *testing.T) {
	r := newTestReader(t, transcription.DefaultOptions(), &fakeProvider{}, &fakePreparer{})
	if _, err := r.Transcribe(context.Background(), "", nil); err == nil {
		t.Error("expected an error for an empty media reference")
	}
}

func TestNew_MissingCredential(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("ASSEMBLY_AI_KEY", "")
	os.Unsetenv("ASSEMBLYAI_API_KEY")
	os.Unsetenv("ASSEMBLY_AI_KEY")

	_, err := New(Config{Options: transcription.DefaultOptions()})
	if !errors.HasCode(err, errors.ErrCodeMissingCredential) {
		t.Errorf("error = %v, want missing credential", err)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	opts := transcription.DefaultOptions()
	opts.Format = "pdf"
	if _, err := New(Config{APIKey: "k", Options: opts}); err == nil {
		t.Error("expected an error for invalid options")
	}
}
