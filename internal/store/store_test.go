package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/akshajravi/Intervue/internal/domain"
)

func newMessage(sessionID, content string) domain.Message {
	return domain.Message{
		ID:        fmt.Sprintf("m-%s-%d", content, time.Now().UnixNano()),
		Type:      domain.MessageTypeUser,
		Content:   content,
		Timestamp: time.Now(),
		SessionID: sessionID,
	}
}

func TestGetOrCreateReturnsExistingID(t *testing.T) {
	s := NewMemoryStore()

	id := s.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a generated session id")
	}

	got := s.GetOrCreate(id)
	if got != id {
		t.Fatalf("expected existing id %q, got %q", id, got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", s.Len())
	}
}

func TestGetOrCreateUnknownIDMintsFreshSession(t *testing.T) {
	s := NewMemoryStore()

	id := s.GetOrCreate("does-not-exist")
	if id == "does-not-exist" {
		t.Fatal("unknown id must not be adopted")
	}

	session, ok := s.Get(id)
	if !ok {
		t.Fatalf("expected session %q to exist", id)
	}
	if len(session.Messages) != 0 {
		t.Fatalf("expected empty message sequence, got %d", len(session.Messages))
	}
	if session.Context != domain.DefaultContext() {
		t.Fatalf("expected default context, got %+v", session.Context)
	}
	if session.CreatedAt.IsZero() || session.UpdatedAt.IsZero() {
		t.Fatal("expected created/updated timestamps to be set")
	}
}

func TestGetUnknownSession(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected lookup miss")
	}
	if s.Len() != 0 {
		t.Fatalf("lookup must not create sessions, got %d", s.Len())
	}
}

func TestAppendMessageUnknownSessionIsNoOp(t *testing.T) {
	s := NewMemoryStore()

	if s.AppendMessage("missing", newMessage("missing", "hello")) {
		t.Fatal("expected append on unknown session to report not applied")
	}
	if s.Len() != 0 {
		t.Fatalf("expected store size unchanged, got %d", s.Len())
	}
}

func TestAppendMessagePreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")

	const n = 5
	for i := 0; i < n; i++ {
		msg := newMessage(id, fmt.Sprintf("msg-%d", i))
		if !s.AppendMessage(id, msg) {
			t.Fatalf("append %d not applied", i)
		}
	}

	session, ok := s.Get(id)
	if !ok {
		t.Fatal("session disappeared")
	}
	if len(session.Messages) != n {
		t.Fatalf("expected %d messages, got %d", n, len(session.Messages))
	}
	for i, msg := range session.Messages {
		if want := fmt.Sprintf("msg-%d", i); msg.Content != want {
			t.Fatalf("message %d out of order: got %q, want %q", i, msg.Content, want)
		}
	}
}

func TestAppendMessageRefreshesUpdatedAt(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")

	before, _ := s.Get(id)
	time.Sleep(5 * time.Millisecond)
	s.AppendMessage(id, newMessage(id, "hello"))
	after, _ := s.Get(id)

	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("expected updated-at to advance after append")
	}
}

func TestUpdateContextTyped(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")

	lang := "go"
	number := 3
	qc := &domain.QuestionContext{ID: "q1", Title: "Two Sum", Difficulty: "Easy"}
	if !s.UpdateContext(id, domain.ContextUpdate{
		CurrentQuestion:     qc,
		QuestionNumber:      &number,
		ProgrammingLanguage: &lang,
	}) {
		t.Fatal("update not applied")
	}

	session, _ := s.Get(id)
	if session.Context.CurrentQuestion == nil || session.Context.CurrentQuestion.Title != "Two Sum" {
		t.Fatalf("current question not folded: %+v", session.Context.CurrentQuestion)
	}
	if session.Context.QuestionNumber != 3 {
		t.Fatalf("expected question number 3, got %d", session.Context.QuestionNumber)
	}
	if session.Context.ProgrammingLanguage != "go" {
		t.Fatalf("expected language go, got %q", session.Context.ProgrammingLanguage)
	}
	// Untouched fields keep their defaults.
	if session.Context.TotalQuestions != 5 || session.Context.InterviewType != "mock_interview" {
		t.Fatalf("unrelated fields changed: %+v", session.Context)
	}
}

func TestUpdateContextFieldsIgnoresUnknownNames(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")

	before, _ := s.Get(id)
	time.Sleep(5 * time.Millisecond)

	if !s.UpdateContextFields(id, map[string]any{"no_such_field": "value"}) {
		t.Fatal("update on existing session should report applied")
	}

	after, _ := s.Get(id)
	if after.Context != before.Context {
		t.Fatalf("context changed by unknown field: %+v", after.Context)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("expected updated-at to be refreshed")
	}
}

func TestUpdateContextFieldsFromJSONValues(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")

	// JSON numbers decode as float64; a question context arrives as a map.
	applied := s.UpdateContextFields(id, map[string]any{
		"question_number": float64(2),
		"user_code":       "def solve(): pass",
		"current_question": map[string]any{
			"id":         "q7",
			"title":      "Valid Parentheses",
			"difficulty": "Easy",
		},
	})
	if !applied {
		t.Fatal("update not applied")
	}

	session, _ := s.Get(id)
	if session.Context.QuestionNumber != 2 {
		t.Fatalf("expected question number 2, got %d", session.Context.QuestionNumber)
	}
	if session.Context.UserCode != "def solve(): pass" {
		t.Fatalf("unexpected user code: %q", session.Context.UserCode)
	}
	if session.Context.CurrentQuestion == nil || session.Context.CurrentQuestion.Title != "Valid Parentheses" {
		t.Fatalf("current question not decoded: %+v", session.Context.CurrentQuestion)
	}
}

func TestUpdateContextUnknownSessionIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	s.GetOrCreate("")

	if s.UpdateContextFields("missing", map[string]any{"question_number": 2}) {
		t.Fatal("expected update on unknown session to report not applied")
	}
	if s.Len() != 1 {
		t.Fatalf("expected store size unchanged, got %d", s.Len())
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := NewMemoryStore()
	id := s.GetOrCreate("")
	s.AppendMessage(id, newMessage(id, "original"))

	snapshot, _ := s.Get(id)
	snapshot.Messages[0].Content = "mutated"
	snapshot.Messages = append(snapshot.Messages, newMessage(id, "extra"))

	fresh, _ := s.Get(id)
	if len(fresh.Messages) != 1 || fresh.Messages[0].Content != "original" {
		t.Fatalf("snapshot mutation leaked into store: %+v", fresh.Messages)
	}
}
