package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillsenselab/transcribe/config"
	"github.com/skillsenselab/transcribe/errors"
)

func runInit(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file to create or update")
	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultConfigPath(&config.RealFileSystem{})
		if err != nil {
			fmt.Fprintln(stderr, "transcribe:", err)
			return exitConfig
		}
		path = p
	}

	fmt.Fprint(stdout, "Enter your AssemblyAI API key: ")
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		fmt.Fprintln(stderr, "transcribe: no API key provided")
		return exitInvalidInput
	}
	key := strings.TrimSpace(scanner.Text())
	if key == "" {
		fmt.Fprintln(stderr, "transcribe: API key must not be empty")
		return exitInvalidInput
	}

	if err := storeAPIKey(path, key); err != nil {
		fmt.Fprintln(stderr, "transcribe:", err)
		return exitConfig
	}
	fmt.Fprintln(stdout, "Configuration saved to", path)
	return exitOK
}

// storeAPIKey writes the key into the config file, keeping every other
// field in an existing file untouched.
func storeAPIKey(path, key string) error {
	raw := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.Configuration("failed to parse config file: " + path).WithCause(err)
		}
	}
	raw["apiKey"] = key

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return errors.Internal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Configuration("cannot create config directory: " + filepath.Dir(path)).WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return errors.Configuration("cannot write config file: " + path).WithCause(err)
	}
	return nil
}
