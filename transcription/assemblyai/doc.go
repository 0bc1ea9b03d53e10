// Package assemblyai implements the transcription.Provider interface
// against the AssemblyAI v2 REST API.
//
// Local files are uploaded to the service first; URLs are submitted
// directly. A call blocks through submit and poll until the transcript
// reaches a terminal status. Subtitle output (srt, vtt) is rendered by
// the service on demand.
package assemblyai
