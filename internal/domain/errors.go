package domain

import "errors"

// ErrSessionNotFound is returned when a session identifier is unknown.
// The HTTP boundary maps it to a 404.
var ErrSessionNotFound = errors.New("session not found")
