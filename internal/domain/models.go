// Package domain defines the core domain models for the interview backend.
package domain

import (
	"time"
)

// MessageType distinguishes who produced a message.
type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeAI   MessageType = "ai"
)

// Message is a single chat message in a conversation session.
// Messages are immutable once created.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	AudioURL  string      `json:"audio_url,omitempty"`
	SessionID string      `json:"session_id,omitempty"`
}

// ProblemExample is a single input/output example of an interview problem.
type ProblemExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// QuestionContext is the caller-supplied description of the interview
// problem currently under discussion. It is folded into the session's
// Context when provided with a chat request.
type QuestionContext struct {
	ID          string           `json:"id"`
	Number      int              `json:"number"`
	Type        string           `json:"type"`
	Difficulty  string           `json:"difficulty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category,omitempty"`
	Examples    []ProblemExample `json:"examples,omitempty"`
	Constraints []string         `json:"constraints,omitempty"`
	Hints       []string         `json:"hints,omitempty"`
}

// Context is the mutable per-session interview state. Its field set is
// fixed; partial updates may only touch fields that exist here.
type Context struct {
	CurrentQuestion     *QuestionContext `json:"current_question,omitempty"`
	QuestionNumber      int              `json:"question_number"`
	TotalQuestions      int              `json:"total_questions"`
	InterviewType       string           `json:"interview_type"`
	UserCode            string           `json:"user_code,omitempty"`
	ProgrammingLanguage string           `json:"programming_language"`
}

// DefaultContext returns the context a fresh session starts with.
func DefaultContext() Context {
	return Context{
		QuestionNumber:      1,
		TotalQuestions:      5,
		InterviewType:       "mock_interview",
		ProgrammingLanguage: "python",
	}
}

// ContextUpdate is a partial update to a session Context. Nil fields are
// left untouched, so presence is explicit rather than inferred.
type ContextUpdate struct {
	CurrentQuestion     *QuestionContext
	QuestionNumber      *int
	TotalQuestions      *int
	InterviewType       *string
	UserCode            *string
	ProgrammingLanguage *string
}

// Session is a single ongoing interview conversation. Messages are
// append-only and kept in insertion order.
type Session struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	Context   Context   `json:"context"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
