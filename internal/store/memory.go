package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akshajravi/Intervue/internal/domain"
)

// MemoryStore is an in-memory Store keyed by session id. Sessions are
// never evicted; the map grows for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure MemoryStore implements the Store interface.
var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) GetOrCreate(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if _, ok := s.sessions[sessionID]; ok {
			return sessionID
		}
	}

	now := time.Now()
	newID := uuid.New().String()
	s.sessions[newID] = &domain.Session{
		SessionID: newID,
		Messages:  []domain.Message{},
		Context:   domain.DefaultContext(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return newID
}

func (s *MemoryStore) Get(sessionID string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return snapshot(session), true
}

func (s *MemoryStore) AppendMessage(sessionID string, msg domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	session.Messages = append(session.Messages, msg)
	session.UpdatedAt = time.Now()
	return true
}

func (s *MemoryStore) UpdateContext(sessionID string, update domain.ContextUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	if update.CurrentQuestion != nil {
		session.Context.CurrentQuestion = update.CurrentQuestion
	}
	if update.QuestionNumber != nil {
		session.Context.QuestionNumber = *update.QuestionNumber
	}
	if update.TotalQuestions != nil {
		session.Context.TotalQuestions = *update.TotalQuestions
	}
	if update.InterviewType != nil {
		session.Context.InterviewType = *update.InterviewType
	}
	if update.UserCode != nil {
		session.Context.UserCode = *update.UserCode
	}
	if update.ProgrammingLanguage != nil {
		session.Context.ProgrammingLanguage = *update.ProgrammingLanguage
	}
	session.UpdatedAt = time.Now()
	return true
}

func (s *MemoryStore) UpdateContextFields(sessionID string, fields map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	for name, value := range fields {
		applyField(&session.Context, name, value)
	}
	session.UpdatedAt = time.Now()
	return true
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// applyField sets a single context field by its JSON name. Unknown names
// and values of the wrong shape are ignored; the context schema is closed.
func applyField(c *domain.Context, name string, value any) {
	switch name {
	case "current_question":
		var qc domain.QuestionContext
		raw, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := json.Unmarshal(raw, &qc); err != nil {
			return
		}
		c.CurrentQuestion = &qc
	case "question_number":
		if n, ok := toInt(value); ok {
			c.QuestionNumber = n
		}
	case "total_questions":
		if n, ok := toInt(value); ok {
			c.TotalQuestions = n
		}
	case "interview_type":
		if s, ok := value.(string); ok {
			c.InterviewType = s
		}
	case "user_code":
		if s, ok := value.(string); ok {
			c.UserCode = s
		}
	case "programming_language":
		if s, ok := value.(string); ok {
			c.ProgrammingLanguage = s
		}
	}
}

// toInt accepts the numeric shapes a JSON body or a typed caller can
// produce.
func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// snapshot copies a session so callers can read it without holding the
// store lock. The message slice is copied; messages themselves are
// immutable.
func snapshot(session *domain.Session) *domain.Session {
	copied := *session
	copied.Messages = make([]domain.Message, len(session.Messages))
	copy(copied.Messages, session.Messages)
	return &copied
}
