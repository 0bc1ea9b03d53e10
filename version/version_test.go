package version

import (
	"strings"
	"testing"
)

func TestGetUsesLdflagsValues(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	Version = "1.2.3"
	Commit = "abcdef1234567890"

	info := Get()
	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", info.Version)
	}
	if info.Commit != "abcdef1" {
		t.Errorf("Commit = %q, want the 7-char prefix", info.Commit)
	}
}

func TestStringContainsVersion(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "2.0.0"
	if s := String(); !strings.HasPrefix(s, "2.0.0") {
		t.Errorf("String() = %q, want a 2.0.0 prefix", s)
	}
}
