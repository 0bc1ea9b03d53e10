package config

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/skillsenselab/transcribe/errors"
)

const (
	// EnvAPIKey is the environment variable holding the API key in plain text.
	EnvAPIKey = "ASSEMBLYAI_API_KEY"
	// EnvAPIKeyEncoded is the environment variable holding the API key
	// base64-encoded, possibly with padding stripped.
	EnvAPIKeyEncoded = "ASSEMBLY_AI_KEY"
)

// ResolveAPIKey resolves the API credential with precedence:
// explicit value, then EnvAPIKey, then base64-decoded EnvAPIKeyEncoded.
// Returns a MissingCredential error when nothing resolves.
func ResolveAPIKey(explicit string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}

	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	if encoded := strings.TrimSpace(os.Getenv(EnvAPIKeyEncoded)); encoded != "" {
		if key := decodeAPIKey(encoded); key != "" {
			return key, nil
		}
	}

	return "", errors.MissingCredential(EnvAPIKey, EnvAPIKeyEncoded)
}

// decodeAPIKey decodes a base64 key, restoring stripped padding first.
// Returns "" when the value does not decode to a usable key.
func decodeAPIKey(encoded string) string {
	for len(encoded)%4 != 0 {
		encoded += "="
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(decoded))
}
