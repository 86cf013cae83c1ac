package domain

import (
	"github.com/google/uuid"
)

// ModeChangedEvent is published when a session's active mode changes.
// The UI collaborator subscribes to trigger redraws; the controller itself
// has no rendering responsibility.
type ModeChangedEvent struct {
	SessionID uuid.UUID
	Previous  ModeID
	New       ModeID
}

// BoundaryReachedEvent is published when a boundary policy issued transport
// commands for a crossing.
type BoundaryReachedEvent struct {
	SessionID uuid.UUID
	Frame     int
	Boundary  Boundary
	Mode      ModeID
}
