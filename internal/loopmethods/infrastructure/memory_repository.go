package infrastructure

import (
	"context"
	"sync"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory implementation of SessionRepository.
// Session state is transient by design: if lost, it is rebuilt from
// defaults on the next attach.
type MemoryRepository struct {
	mu     sync.RWMutex
	states map[uuid.UUID]*domain.SessionState
}

// NewMemoryRepository creates a new MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		states: make(map[uuid.UUID]*domain.SessionState),
	}
}

// Get returns the SessionState for the given session, or ErrSessionNotFound.
func (r *MemoryRepository) Get(
	_ context.Context,
	id uuid.UUID,
) (*domain.SessionState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

// Save stores the SessionState.
func (r *MemoryRepository) Save(_ context.Context, state *domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.ID()] = state
	return nil
}

// Delete removes the SessionState for the given session.
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, id)
	return nil
}

// Count returns the number of session states (for testing/monitoring).
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.states)
}

// Ensure MemoryRepository implements SessionRepository.
var _ domain.SessionRepository = (*MemoryRepository)(nil)
