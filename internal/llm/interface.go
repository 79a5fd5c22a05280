// Package llm provides an abstraction for chat-completion API clients.
package llm

import "context"

// Chat roles understood by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged turn of a prompt sequence.
type ChatMessage struct {
	Role    string
	Content string
}

// Client defines the interface for chat-completion operations.
type Client interface {
	// Complete sends the prompt sequence and returns the completion text.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
