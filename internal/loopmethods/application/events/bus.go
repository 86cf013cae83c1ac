package events

import (
	"log/slog"
	"sync"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/ports"
)

// DefaultEventBufferSize is the default buffer size for event channels.
const DefaultEventBufferSize = 16

// Compile-time check that Bus implements ports.EventPublisher.
var _ ports.EventPublisher = (*Bus)(nil)

// Bus provides a channel-based event bus for async event handling. Publish
// never blocks the host's notification thread: when a buffer is full the
// event is dropped with a warning.
type Bus struct {
	modeChanged     chan ModeChangedEvent
	boundaryReached chan BoundaryReachedEvent

	closed bool
	mu     sync.RWMutex
}

// NewBus creates a new Bus with the given buffer size.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultEventBufferSize
	}

	return &Bus{
		modeChanged:     make(chan ModeChangedEvent, bufferSize),
		boundaryReached: make(chan BoundaryReachedEvent, bufferSize),
	}
}

// PublishModeChanged publishes a ModeChangedEvent.
func (b *Bus) PublishModeChanged(event ModeChangedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", "ModeChanged")
		return
	}

	select {
	case b.modeChanged <- event:
		slog.Debug("published event", "type", "ModeChanged", "session", event.SessionID)
	default:
		slog.Warn("event buffer full, dropping event", "type", "ModeChanged")
	}
}

// PublishBoundaryReached publishes a BoundaryReachedEvent.
func (b *Bus) PublishBoundaryReached(event BoundaryReachedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", "BoundaryReached")
		return
	}

	select {
	case b.boundaryReached <- event:
		slog.Debug("published event", "type", "BoundaryReached", "session", event.SessionID)
	default:
		slog.Warn("event buffer full, dropping event", "type", "BoundaryReached")
	}
}

// ModeChanged returns the channel for ModeChangedEvent.
func (b *Bus) ModeChanged() <-chan ModeChangedEvent {
	return b.modeChanged
}

// BoundaryReached returns the channel for BoundaryReachedEvent.
func (b *Bus) BoundaryReached() <-chan BoundaryReachedEvent {
	return b.boundaryReached
}

// Close closes all event channels. After calling Close, publishing will no
// longer send events.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.modeChanged)
	close(b.boundaryReached)

	slog.Debug("event bus closed")
}
