package ports

import (
	"context"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/google/uuid"
)

// Transport defines the host transport primitives the controller issues
// commands through. Implementations must tolerate redundant commands:
// cancelling while already stopped is a no-op, not an error.
//
// Hosts must deliver no frame-advance notification between a CancelPlayback
// and a SetCurrentFrame issued from the same notification handler
// invocation; the jump-start mode relies on the pair being observed as one
// step.
type Transport interface {
	// CancelPlayback stops playback. With restorePosition the host resets
	// the current frame to the position it captured when playback started.
	CancelPlayback(ctx context.Context, sessionID uuid.UUID, restorePosition bool) error

	// StartPlayback starts playback in the given direction.
	StartPlayback(ctx context.Context, sessionID uuid.UUID, reverse bool) error

	// SetCurrentFrame moves the playhead without starting playback.
	SetCurrentFrame(ctx context.Context, sessionID uuid.UUID, frame int) error
}

// EventPublisher defines the interface for publishing controller events.
type EventPublisher interface {
	PublishModeChanged(event domain.ModeChangedEvent)
	PublishBoundaryReached(event domain.BoundaryReachedEvent)
}
