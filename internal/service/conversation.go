package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/akshajravi/Intervue/internal/domain"
	"github.com/akshajravi/Intervue/internal/speech"
)

// FallbackResponse is substituted for a genuine model reply whenever
// generation fails. It is appended to the session like any other
// assistant message.
const FallbackResponse = "I apologize, but I'm having trouble processing your message right now. Could you please try again?"

// GenerateResponse resolves the session, folds any supplied question and
// code context into it, records the user message, calls the
// chat-completion API with the assembled prompt and records the reply.
//
// Failures never reach the caller as errors: the fallback message is
// appended and returned instead. Either way the session grows by exactly
// two messages per call.
func (s *AIService) GenerateResponse(ctx context.Context, userMessage, sessionID string, questionContext *domain.QuestionContext, codeContext string) domain.Message {
	sessionID = s.store.GetOrCreate(sessionID)

	if questionContext != nil {
		s.store.UpdateContext(sessionID, domain.ContextUpdate{CurrentQuestion: questionContext})
	}
	if codeContext != "" {
		s.store.UpdateContext(sessionID, domain.ContextUpdate{UserCode: &codeContext})
	}

	userMsg := domain.Message{
		ID:        uuid.New().String(),
		Type:      domain.MessageTypeUser,
		Content:   userMessage,
		Timestamp: time.Now(),
		SessionID: sessionID,
	}

	// Snapshot history and context before appending the new user turn, so
	// the prompt holds every turn exactly once and no store lock is held
	// while the API call is in flight.
	session, ok := s.store.Get(sessionID)
	s.store.AppendMessage(sessionID, userMsg)
	if !ok {
		log.Printf("ERROR: session %s missing after GetOrCreate", sessionID)
		return s.appendFallback(sessionID)
	}

	prompt := buildPrompt(session, userMessage, questionContext, codeContext)

	callCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	content, err := s.llm.Complete(callCtx, prompt)
	if err != nil {
		log.Printf("ERROR: failed to generate response for session %s: %v", sessionID, err)
		return s.appendFallback(sessionID)
	}

	aiMsg := domain.Message{
		ID:        uuid.New().String(),
		Type:      domain.MessageTypeAI,
		Content:   content,
		Timestamp: time.Now(),
		SessionID: sessionID,
	}
	s.store.AppendMessage(sessionID, aiMsg)

	log.Printf("Generated response for session %s", sessionID)
	return aiMsg
}

// ProcessVoiceMessage transcribes the audio with the configured backend
// and forwards the transcript through GenerateResponse.
func (s *AIService) ProcessVoiceMessage(ctx context.Context, audioData, sessionID string) (string, domain.Message) {
	transcript, err := s.transcriber.Transcribe(ctx, audioData)
	if err != nil {
		log.Printf("WARN: transcription failed, using placeholder: %v", err)
		transcript = speech.PlaceholderTranscript
	}

	response := s.GenerateResponse(ctx, transcript, sessionID, nil, "")
	return transcript, response
}

func (s *AIService) appendFallback(sessionID string) domain.Message {
	fallback := domain.Message{
		ID:        uuid.New().String(),
		Type:      domain.MessageTypeAI,
		Content:   FallbackResponse,
		Timestamp: time.Now(),
		SessionID: sessionID,
	}
	s.store.AppendMessage(sessionID, fallback)
	return fallback
}
