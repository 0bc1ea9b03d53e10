package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a local media file by extension.
type Kind int

const (
	// KindUnknown is any extension outside the known audio/video sets.
	KindUnknown Kind = iota
	// KindAudio is a directly uploadable audio container.
	KindAudio
	// KindVideo is a video container requiring audio extraction.
	KindVideo
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// Classify returns the Kind of a local file based on its extension,
// case-insensitively.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case audioExtensions[ext]:
		return KindAudio
	case videoExtensions[ext]:
		return KindVideo
	default:
		return KindUnknown
	}
}

// IsURL reports whether the media reference is a remote URL rather than a
// local file path.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
