package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/process"
)

func TestPrepareAudio_PassThrough(t *testing.T) {
	e := NewExtractor(withRunner(func(ctx context.Context, cmd process.Command) (*process.Result, error) {
		t.Fatal("runner should not be invoked for pass-through inputs")
		return nil, nil
	}))

	for _, path := range []string{"episode.mp3", "take.wav", "notes.unknown", "noext"} {
		got, extracted, err := e.PrepareAudio(context.Background(), path)
		if err != nil {
			t.Fatalf("PrepareAudio(%q) error: %v", path, err)
		}
		if extracted {
			t.Errorf("PrepareAudio(%q) reported a temporary file", path)
		}
		if got != path {
			t.Errorf("PrepareAudio(%q) = %q, want unchanged path", path, got)
		}
	}
}

func TestPrepareAudio_ExtractsVideo(t *testing.T) {
	var captured process.Command
	e := NewExtractor(
		WithTempDir(t.TempDir()),
		withRunner(func(ctx context.Context, cmd process.Command) (*process.Result, error) {
			captured = cmd
			return &process.Result{ExitCode: 0}, nil
		}),
	)

	out, extracted, err := e.PrepareAudio(context.Background(), "/videos/talk.mp4")
	if err != nil {
		t.Fatalf("PrepareAudio error: %v", err)
	}
	if !extracted {
		t.Error("expected extracted = true for a video input")
	}
	if filepath.Ext(out) != ".mp3" {
		t.Errorf("output %q does not have an .mp3 extension", out)
	}

	if captured.Binary != "ffmpeg" {
		t.Errorf("binary = %q, want ffmpeg", captured.Binary)
	}
	args := strings.Join(captured.Args, " ")
	for _, want := range []string{"-i /videos/talk.mp4", "-ac 1", "-vn", out} {
		if !strings.Contains(args, want) {
			t.Errorf("ffmpeg args %q missing %q", args, want)
		}
	}
}

func TestPrepareAudio_UniqueOutputs(t *testing.T) {
	e := NewExtractor(
		WithTempDir(t.TempDir()),
		withRunner(func(ctx context.Context, cmd process.Command) (*process.Result, error) {
			return &process.Result{ExitCode: 0}, nil
		}),
	)

	first, _, err := e.PrepareAudio(context.Background(), "talk.mp4")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := e.PrepareAudio(context.Background(), "talk.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("consecutive extractions produced the same path %q", first)
	}
}

func TestPrepareAudio_RunnerFailure(t *testing.T) {
	e := NewExtractor(
		WithTempDir(t.TempDir()),
		withRunner(func(ctx context.Context, cmd process.Command) (*process.Result, error) {
			return &process.Result{ExitCode: 1, Stderr: []byte("moov atom not found")}, os.ErrInvalid
		}),
	)

	_, _, err := e.PrepareAudio(context.Background(), "broken.mkv")
	if err == nil {
		t.Fatal("expected an error for a failed extraction")
	}
	if !errors.IsMediaExtraction(err) {
		t.Errorf("error code = %v, want media extraction", errors.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "broken.mkv") {
		t.Errorf("error %q does not name the input file", err.Error())
	}
}

func TestCleanup(t *testing.T) {
	e := NewExtractor()

	path := filepath.Join(t.TempDir(), "transcribe-test.mp3")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	e.Cleanup(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %q still exists after Cleanup", path)
	}

	// Missing files and empty paths are ignored.
	e.Cleanup(path)
	e.Cleanup("")
}
