// Command transcribe turns audio and video files or URLs into transcripts
// using the AssemblyAI API.
//
// Usage:
//
//	transcribe init                  store an API key in the config file
//	transcribe <file|url> [flags]    transcribe media and print the result
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/skillsenselab/transcribe/errors"
	"github.com/skillsenselab/transcribe/logger"
	"github.com/skillsenselab/transcribe/version"
)

// Exit codes, part of the CLI contract.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitConfig       = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger.Init(logger.Config{Level: os.Getenv("TRANSCRIBE_LOG_LEVEL")})

	if len(args) == 0 {
		usage(stderr)
		return exitInvalidInput
	}

	switch args[0] {
	case "init":
		return runInit(args[1:], stdin, stdout, stderr)
	case "version", "--version":
		fmt.Fprintln(stdout, version.String())
		return exitOK
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		return runTranscribe(args, stdout, stderr)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  transcribe init [--config PATH]
      Prompt for an AssemblyAI API key and store it in the config file.

  transcribe <file|url> [flags]
      Transcribe a local media file or a remote URL.

  transcribe version
      Print the build version.

Flags for transcribe:
  --config PATH              config file (default ~/.transcribe/config.json)
  --format FORMAT            output format: text, srt or vtt
  --output PATH              write the transcript to PATH instead of stdout
  --chars-per-caption N      maximum characters per subtitle caption
  --speaker-labels           enable speaker diarization
  --language CODE            expected language (disables language detection)
  --speech-model MODEL       speech model: best or nano
  --poll-interval-seconds N  seconds between transcript status checks
  --timeout-seconds N        overall timeout for the transcription call

The API key is read from the config file, the ASSEMBLYAI_API_KEY
environment variable, or the base64-encoded ASSEMBLY_AI_KEY variable.
`)
}

// exitCodeFor maps application errors onto the CLI exit code contract.
func exitCodeFor(err error) int {
	switch {
	case errors.HasCode(err, errors.ErrCodeInvalidInput),
		errors.HasCode(err, errors.ErrCodeMissingField):
		return exitInvalidInput
	case errors.IsConfiguration(err),
		errors.HasCode(err, errors.ErrCodeMissingCredential):
		return exitConfig
	default:
		return exitFailure
	}
}
