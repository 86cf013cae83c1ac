package domain

import (
	"github.com/google/uuid"
)

// SessionState holds the per-timeline playback state the controller needs
// between frame-advance notifications: the selected mode, the direction
// memory for ping-pong, the origin frame for the restore mode, and the
// latch that keeps boundary commands to one per crossing.
//
// A SessionState is mutated only from the host's notification thread; the
// repository guards concurrent lookup, not field access.
type SessionState struct {
	id           uuid.UUID
	activeModeID ModeID
	direction    Direction

	originFrame   *int
	lastPlanFrame *int
}

// NewSessionState creates a SessionState with the given default mode.
func NewSessionState(id uuid.UUID, defaultMode ModeID) *SessionState {
	return &SessionState{
		id:           id,
		activeModeID: defaultMode,
		direction:    Forward,
	}
}

// ID returns the session ID.
func (s *SessionState) ID() uuid.UUID {
	// No setter: the ID must not change after creation.
	return s.id
}

// ActiveModeID returns the currently selected mode.
func (s *SessionState) ActiveModeID() ModeID {
	return s.activeModeID
}

// SetActiveModeID updates the selected mode.
func (s *SessionState) SetActiveModeID(id ModeID) {
	s.activeModeID = id
}

// Direction returns the current playback direction.
func (s *SessionState) Direction() Direction {
	return s.direction
}

// SetDirection updates the playback direction.
func (s *SessionState) SetDirection(d Direction) {
	s.direction = d
}

// BeginPlayback records the stopped-to-playing transition: the origin frame
// for the restore mode and the initial direction.
func (s *SessionState) BeginPlayback(frame int, d Direction) {
	origin := frame
	s.originFrame = &origin
	s.direction = d
}

// EndPlayback clears playback-scoped tracking. Called when the session goes
// idle; everything here is re-initialized on the next BeginPlayback.
func (s *SessionState) EndPlayback() {
	s.originFrame = nil
	s.direction = Forward
	s.lastPlanFrame = nil
}

// OriginFrame returns the frame playback started from, if playing.
func (s *SessionState) OriginFrame() (int, bool) {
	if s.originFrame == nil {
		return 0, false
	}
	return *s.originFrame, true
}

// MarkPlanIssued records that boundary commands were issued at frame.
func (s *SessionState) MarkPlanIssued(frame int) {
	f := frame
	s.lastPlanFrame = &f
}

// PlanIssuedAt reports whether boundary commands were already issued for
// this frame value since it was last left.
func (s *SessionState) PlanIssuedAt(frame int) bool {
	return s.lastPlanFrame != nil && *s.lastPlanFrame == frame
}

// ClearPlanLatch resets the once-per-crossing latch. Called whenever the
// observed frame moves off a boundary.
func (s *SessionState) ClearPlanLatch() {
	s.lastPlanFrame = nil
}
