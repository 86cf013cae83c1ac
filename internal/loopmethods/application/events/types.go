package events

import (
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
)

// Re-export event types from domain for use by subscribers.
type (
	ModeChangedEvent     = domain.ModeChangedEvent
	BoundaryReachedEvent = domain.BoundaryReachedEvent
)
