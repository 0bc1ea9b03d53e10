package transcription

import (
	"context"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"path only", Request{AudioPath: "talk.mp3"}, false},
		{"url only", Request{AudioURL: "https://example.com/talk.mp3"}, false},
		{"neither", Request{}, true},
		{"both", Request{AudioPath: "talk.mp3", AudioURL: "https://example.com/talk.mp3"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResultSubtitles(t *testing.T) {
	var gotFormat Format
	var gotWidth int
	r := NewResult("tr_1", "hello world", func(ctx context.Context, format Format, charsPerCaption int) (string, error) {
		gotFormat = format
		gotWidth = charsPerCaption
		return "1\n00:00:00,000 --> 00:00:01,000\nhello world\n", nil
	})

	out, err := r.SRT(context.Background(), 64)
	if err != nil {
		t.Fatalf("SRT error: %v", err)
	}
	if out == "" {
		t.Error("SRT returned empty output")
	}
	if gotFormat != FormatSRT || gotWidth != 64 {
		t.Errorf("renderer called with (%q, %d), want (srt, 64)", gotFormat, gotWidth)
	}

	if _, err := r.VTT(context.Background(), 32); err != nil {
		t.Fatalf("VTT error: %v", err)
	}
	if gotFormat != FormatVTT || gotWidth != 32 {
		t.Errorf("renderer called with (%q, %d), want (vtt, 32)", gotFormat, gotWidth)
	}
}

func TestResultSubtitles_NoRenderer(t *testing.T) {
	r := NewResult("tr_1", "hello", nil)
	if _, err := r.SRT(context.Background(), 64); err == nil {
		t.Error("expected an error when the result has no subtitle renderer")
	}
}
