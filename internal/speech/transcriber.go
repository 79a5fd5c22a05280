// Package speech provides pluggable audio transcription backends.
package speech

import "context"

// PlaceholderTranscript is returned by the stub backend in place of a
// real transcription.
const PlaceholderTranscript = "[Voice message processed - transcription not yet implemented]"

// Transcriber converts base64-encoded audio into text. The orchestrator
// only depends on this interface, so a real speech-to-text backend can
// be substituted without changing its shape.
type Transcriber interface {
	Transcribe(ctx context.Context, audioData string) (string, error)
}

// StubTranscriber is the default no-op backend. It fabricates a fixed
// placeholder transcript and never fails.
type StubTranscriber struct{}

// NewStubTranscriber creates the stub transcription backend.
func NewStubTranscriber() *StubTranscriber {
	return &StubTranscriber{}
}

// Ensure StubTranscriber implements the Transcriber interface.
var _ Transcriber = (*StubTranscriber)(nil)

func (t *StubTranscriber) Transcribe(ctx context.Context, audioData string) (string, error) {
	return PlaceholderTranscript, nil
}
