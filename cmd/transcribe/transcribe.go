package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/skillsenselab/transcribe/config"
	"github.com/skillsenselab/transcribe/reader"
	"github.com/skillsenselab/transcribe/util"
)

func runTranscribe(args []string, stdout, stderr io.Writer) int {
	mediaRef := args[0]
	if strings.HasPrefix(mediaRef, "-") {
		fmt.Fprintf(stderr, "transcribe: unknown command %q\n\n", mediaRef)
		usage(stderr)
		return exitInvalidInput
	}

	fs := flag.NewFlagSet("transcribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file path")
	format := fs.String("format", "", "output format: text, srt or vtt")
	output := fs.String("output", "", "write the transcript to this file")
	charsPerCaption := fs.Int("chars-per-caption", 0, "maximum characters per subtitle caption")
	speakerLabels := fs.Bool("speaker-labels", false, "enable speaker diarization")
	language := fs.String("language", "", "expected language code")
	speechModel := fs.String("speech-model", "", "speech model: best or nano")
	pollSeconds := fs.Int("poll-interval-seconds", 0, "seconds between status checks")
	timeoutSeconds := fs.Int("timeout-seconds", 0, "overall timeout in seconds")
	if err := fs.Parse(args[1:]); err != nil {
		return exitInvalidInput
	}

	var file config.File
	var loadOpts []config.LoaderOption
	if *configPath != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(*configPath))
	}
	if err := config.Load(&file, loadOpts...); err != nil {
		fmt.Fprintln(stderr, "transcribe:", err)
		return exitConfig
	}

	// Flags that were actually set override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			file.Format = *format
		case "output":
			file.Output = *output
		case "chars-per-caption":
			file.CharsPerCaption = *charsPerCaption
		case "speaker-labels":
			file.SpeakerLabels = util.Ptr(*speakerLabels)
		case "language":
			file.Language = *language
			file.LanguageDetection = util.Ptr(false)
		case "speech-model":
			file.SpeechModel = *speechModel
		case "poll-interval-seconds":
			file.PollIntervalSeconds = *pollSeconds
		case "timeout-seconds":
			file.TimeoutSeconds = *timeoutSeconds
		}
	})

	opts, err := file.TranscriptionOptions()
	if err != nil {
		fmt.Fprintln(stderr, "transcribe:", err)
		return exitInvalidInput
	}

	r, err := reader.New(reader.Config{
		APIKey:       file.APIKey,
		BaseURL:      file.BaseURL,
		PollInterval: file.PollInterval(),
		Timeout:      file.Timeout(),
		Options:      opts,
	})
	if err != nil {
		fmt.Fprintln(stderr, "transcribe:", err)
		return exitCodeFor(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := r.Transcribe(ctx, mediaRef, nil)
	if err != nil {
		fmt.Fprintln(stderr, "transcribe:", err)
		return exitCodeFor(err)
	}

	if file.Output != "" {
		if err := os.WriteFile(file.Output, []byte(doc.Text), 0o644); err != nil {
			fmt.Fprintf(stderr, "transcribe: write %s: %v\n", file.Output, err)
			return exitFailure
		}
		return exitOK
	}
	fmt.Fprintln(stdout, doc.Text)
	return exitOK
}
