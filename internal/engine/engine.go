// Package engine provides a reference timeline host: an animation clock,
// the primitive transport operations, and frame-advance fan-out to
// subscribed handlers. It is the runnable stand-in for the host interface
// the playback controller integrates against.
package engine

import (
	"context"
	"sync"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/ports"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/google/uuid"
)

// FrameHandler receives one snapshot per clock tick, in registration order.
type FrameHandler func(snap domain.FrameSnapshot)

// StartHandler is invoked when playback starts. frame is the position
// playback started from, reverse the chosen direction.
type StartHandler func(frame int, reverse bool)

// StopHandler is invoked when playback stops.
type StopHandler func()

// Compile-time check that Engine implements the controller's transport port.
var _ ports.Transport = (*Engine)(nil)

// Engine is a single-timeline host. All notifications are delivered
// synchronously on the caller's goroutine, in frame-advance order, and a
// handler is never re-entered for the same tick. The engine drives one
// timeline and ignores the session ID on transport calls.
type Engine struct {
	mu      sync.Mutex
	rng     domain.PlaybackRange
	frame   int
	playing bool
	reverse bool
	origin  int // frame playback started from, for restore-cancel

	frameHandlers []FrameHandler
	startHandlers []StartHandler
	stopHandlers  []StopHandler
}

// New creates an Engine with the playhead at the range start.
func New(rng domain.PlaybackRange) *Engine {
	return &Engine{
		rng:   rng,
		frame: rng.Start,
	}
}

// OnFrameAdvance subscribes a handler to clock ticks.
func (e *Engine) OnFrameAdvance(h FrameHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frameHandlers = append(e.frameHandlers, h)
}

// OnPlaybackStarted subscribes a handler to playback starts.
func (e *Engine) OnPlaybackStarted(h StartHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startHandlers = append(e.startHandlers, h)
}

// OnPlaybackStopped subscribes a handler to playback stops.
func (e *Engine) OnPlaybackStopped(h StopHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopHandlers = append(e.stopHandlers, h)
}

// Tick advances the clock by one whole frame while playing, wrapping at the
// range boundaries (the host's native looping), then delivers one snapshot
// to each frame handler. A tick while stopped does nothing.
func (e *Engine) Tick() {
	e.mu.Lock()
	if !e.playing {
		e.mu.Unlock()
		return
	}

	if e.reverse {
		e.frame--
		if e.frame < e.rng.Start {
			e.frame = e.rng.End
		}
	} else {
		e.frame++
		if e.frame > e.rng.End {
			e.frame = e.rng.Start
		}
	}

	snap := e.snapshotLocked()
	handlers := e.frameHandlers
	e.mu.Unlock()

	// Handlers may issue transport commands; the lock is released so those
	// calls do not deadlock, and no further tick runs until this returns.
	for _, h := range handlers {
		h(snap)
	}
}

// Snapshot returns the current clock state.
func (e *Engine) Snapshot() domain.FrameSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() domain.FrameSnapshot {
	return domain.FrameSnapshot{
		Playing: e.playing,
		Frame:   e.frame,
		Range:   e.rng,
	}
}

// Playing reports whether the clock is advancing.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// CurrentFrame returns the playhead position.
func (e *Engine) CurrentFrame() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// ReverseDirection reports whether playback runs backwards.
func (e *Engine) ReverseDirection() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reverse
}

// Range returns the playable range.
func (e *Engine) Range() domain.PlaybackRange {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng
}

// StartPlayback starts the clock in the given direction, capturing the
// current frame as the restore origin. Starting while already playing only
// updates the direction.
func (e *Engine) StartPlayback(_ context.Context, _ uuid.UUID, reverse bool) error {
	e.mu.Lock()
	if e.playing {
		e.reverse = reverse
		e.mu.Unlock()
		return nil
	}
	e.playing = true
	e.reverse = reverse
	e.origin = e.frame
	frame := e.frame
	handlers := e.startHandlers
	e.mu.Unlock()

	for _, h := range handlers {
		h(frame, reverse)
	}
	return nil
}

// CancelPlayback stops the clock. With restorePosition the playhead returns
// to the frame playback started from. Cancelling while already stopped is a
// no-op.
func (e *Engine) CancelPlayback(_ context.Context, _ uuid.UUID, restorePosition bool) error {
	e.mu.Lock()
	if !e.playing {
		e.mu.Unlock()
		return nil
	}
	e.playing = false
	if restorePosition {
		e.frame = e.origin
	}
	handlers := e.stopHandlers
	e.mu.Unlock()

	for _, h := range handlers {
		h()
	}
	return nil
}

// SetCurrentFrame moves the playhead directly. No frame-advance
// notification is delivered: notifications only accompany clock ticks, so a
// cancel followed by SetCurrentFrame in the same handler invocation is
// observed as one step.
func (e *Engine) SetCurrentFrame(_ context.Context, _ uuid.UUID, frame int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frame = frame
	return nil
}

// Reverse flips the playback direction. A host transport primitive; no-op
// while stopped.
func (e *Engine) Reverse() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playing {
		e.reverse = !e.reverse
	}
}
