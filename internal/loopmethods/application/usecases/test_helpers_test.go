package usecases

import (
	"context"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/registry"
	"github.com/google/uuid"
)

type mockRepository struct {
	states  map[uuid.UUID]*domain.SessionState
	deleted []uuid.UUID
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		states: make(map[uuid.UUID]*domain.SessionState),
	}
}

func (m *mockRepository) Get(_ context.Context, id uuid.UUID) (*domain.SessionState, error) {
	state, ok := m.states[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

func (m *mockRepository) Save(_ context.Context, state *domain.SessionState) error {
	m.states[state.ID()] = state
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.states, id)
	return nil
}

// seedSession creates a SessionState with the given mode and stores it.
// Returns the session ID and the state for further modification.
func (m *mockRepository) seedSession(mode domain.ModeID) (uuid.UUID, *domain.SessionState) {
	id := uuid.New()
	state := domain.NewSessionState(id, mode)
	m.states[id] = state
	return id, state
}

// transportCall records one transport command issued by the controller.
type transportCall struct {
	op      string // "cancel", "play", "setFrame"
	restore bool
	reverse bool
	frame   int
}

type mockTransport struct {
	calls       []transportCall
	cancelErr   error
	playErr     error
	setFrameErr error
}

func (m *mockTransport) CancelPlayback(_ context.Context, _ uuid.UUID, restore bool) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.calls = append(m.calls, transportCall{op: "cancel", restore: restore})
	return nil
}

func (m *mockTransport) StartPlayback(_ context.Context, _ uuid.UUID, reverse bool) error {
	if m.playErr != nil {
		return m.playErr
	}
	m.calls = append(m.calls, transportCall{op: "play", reverse: reverse})
	return nil
}

func (m *mockTransport) SetCurrentFrame(_ context.Context, _ uuid.UUID, frame int) error {
	if m.setFrameErr != nil {
		return m.setFrameErr
	}
	m.calls = append(m.calls, transportCall{op: "setFrame", frame: frame})
	return nil
}

func (m *mockTransport) countOp(op string) int {
	n := 0
	for _, c := range m.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type mockPublisher struct {
	modeChanged     []domain.ModeChangedEvent
	boundaryReached []domain.BoundaryReachedEvent
}

func (m *mockPublisher) PublishModeChanged(event domain.ModeChangedEvent) {
	m.modeChanged = append(m.modeChanged, event)
}

func (m *mockPublisher) PublishBoundaryReached(event domain.BoundaryReachedEvent) {
	m.boundaryReached = append(m.boundaryReached, event)
}

// stubIcons satisfies ports.IconProvider without any assets.
type stubIcons struct{}

func (stubIcons) Resolve(domain.ModeID) string { return "" }
func (stubIcons) Release()                     {}

func newTestRegistry() *registry.Registry {
	return registry.New(stubIcons{})
}

// playingSnap builds a FrameSnapshot for an active-playback tick.
func playingSnap(frame, start, end int) domain.FrameSnapshot {
	return domain.FrameSnapshot{
		Playing: true,
		Frame:   frame,
		Range:   domain.PlaybackRange{Start: start, End: end},
	}
}
