// Package service implements the conversation orchestrator for mock
// interviews.
package service

import (
	"github.com/akshajravi/Intervue/internal/config"
	"github.com/akshajravi/Intervue/internal/domain"
	"github.com/akshajravi/Intervue/internal/llm"
	"github.com/akshajravi/Intervue/internal/speech"
	"github.com/akshajravi/Intervue/internal/store"
)

// AIService orchestrates conversation sessions: it assembles prompts
// from session history, calls the chat-completion API and records both
// sides of every exchange in the session store.
type AIService struct {
	store       store.Store
	llm         llm.Client
	transcriber speech.Transcriber
	config      *config.Config
}

// New creates the conversation orchestrator. The LLM client carries the
// credential check; constructing the client fails fast when no API key
// is provisioned, so a service is never built without one.
func New(sessionStore store.Store, llmClient llm.Client, transcriber speech.Transcriber, cfg *config.Config) *AIService {
	return &AIService{
		store:       sessionStore,
		llm:         llmClient,
		transcriber: transcriber,
		config:      cfg,
	}
}

// CreateSession creates a fresh conversation session and returns its id.
func (s *AIService) CreateSession() string {
	return s.store.GetOrCreate("")
}

// GetConversation returns a snapshot of the session, or
// domain.ErrSessionNotFound when the id is unknown.
func (s *AIService) GetConversation(sessionID string) (*domain.Session, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// UpdateContext applies a partial context update to an existing session.
// Unknown field names are ignored; an unknown session id is an error.
func (s *AIService) UpdateContext(sessionID string, fields map[string]any) error {
	if _, ok := s.store.Get(sessionID); !ok {
		return domain.ErrSessionNotFound
	}
	s.store.UpdateContextFields(sessionID, fields)
	return nil
}
