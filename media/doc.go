// Package media prepares local media files for transcription. Video
// containers get their audio track extracted to a temporary mono mp3 via
// ffmpeg; audio files and unrecognized extensions pass through untouched and
// the remote service decides whether it can handle them.
package media
