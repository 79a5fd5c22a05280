// Package store defines the session storage interface and implementations.
package store

import (
	"github.com/akshajravi/Intervue/internal/domain"
)

// Store is the conversation session store. All state is in-process and
// lives for the lifetime of the process.
//
// Mutating operations on an unknown session id are silent no-ops and
// return false. Callers that need to distinguish a missing session must
// call Get first; the no-op policy is deliberate tolerance, not an error
// channel.
type Store interface {
	// GetOrCreate returns sessionID unchanged when a session with that id
	// exists. Otherwise it creates a fresh session with a generated id,
	// an empty message sequence and default context, and returns the new
	// id. It never fails.
	GetOrCreate(sessionID string) string

	// Get looks up a session by id. The returned session is a snapshot;
	// mutating it does not affect the store.
	Get(sessionID string) (*domain.Session, bool)

	// AppendMessage appends a message to the session and refreshes its
	// updated-at timestamp. Returns false when the session is unknown.
	AppendMessage(sessionID string, msg domain.Message) bool

	// UpdateContext applies a partial, typed context update and refreshes
	// the updated-at timestamp. Returns false when the session is unknown.
	UpdateContext(sessionID string, update domain.ContextUpdate) bool

	// UpdateContextFields applies a partial update given as loose JSON
	// field values. Field names that do not exist on the context schema
	// are ignored. Returns false when the session is unknown.
	UpdateContextFields(sessionID string, fields map[string]any) bool

	// Len reports the number of sessions currently held.
	Len() int
}
