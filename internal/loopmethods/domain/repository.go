package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session state is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the interface for storing and retrieving
// session states. States are returned by reference: the host mutates them
// through the controller on its notification thread.
type SessionRepository interface {
	// Get returns the SessionState for the given session, or ErrSessionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*SessionState, error)

	// Save stores the SessionState.
	Save(ctx context.Context, state *SessionState) error

	// Delete removes the SessionState for the given session.
	Delete(ctx context.Context, id uuid.UUID) error
}
