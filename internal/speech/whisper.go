package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// WhisperTranscriber transcribes audio through the OpenAI Whisper API.
// It is not wired by default; swap it in for the stub when real
// transcription is wanted.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber creates a Whisper-backed transcription backend.
func NewWhisperTranscriber(apiKey string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key not configured for transcription")
	}
	return &WhisperTranscriber{
		client: openai.NewClient(apiKey),
		model:  openai.Whisper1,
	}, nil
}

// Ensure WhisperTranscriber implements the Transcriber interface.
var _ Transcriber = (*WhisperTranscriber)(nil)

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioData string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(audioData)
	if err != nil {
		return "", fmt.Errorf("failed to decode audio data: %w", err)
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(raw),
		FilePath: "voice-message.webm",
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return resp.Text, nil
}
