package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/ports"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/registry"
	"github.com/google/uuid"
)

// Controller is the playback-mode state machine. It runs entirely inside
// the host's frame-advance notification callback: one boundary evaluation
// per notification, commands issued at most once per crossing, no
// re-entrant re-evaluation within the same tick. New playback state is
// picked up on the next host tick.
type Controller struct {
	repo      domain.SessionRepository
	registry  *registry.Registry
	transport ports.Transport
	publisher ports.EventPublisher // optional, may be nil
}

// NewController creates a Controller. The publisher may be nil, in which
// case no events are emitted.
func NewController(
	repo domain.SessionRepository,
	reg *registry.Registry,
	transport ports.Transport,
	publisher ports.EventPublisher,
) *Controller {
	return &Controller{
		repo:      repo,
		registry:  reg,
		transport: transport,
		publisher: publisher,
	}
}

// Attach creates a session for a timeline and seeds its state with the
// registry's default mode. Returns the new session ID.
func (c *Controller) Attach(ctx context.Context) (uuid.UUID, error) {
	id := uuid.New()
	state := domain.NewSessionState(id, c.registry.DefaultModeID())
	if err := c.repo.Save(ctx, state); err != nil {
		return uuid.Nil, err
	}
	slog.Debug("attached session", "session", id, "mode", state.ActiveModeID())
	return id, nil
}

// Detach removes a session's state.
func (c *Controller) Detach(ctx context.Context, sessionID uuid.UUID) error {
	return c.repo.Delete(ctx, sessionID)
}

// ActiveMode returns the session's currently selected mode ID.
func (c *Controller) ActiveMode(ctx context.Context, sessionID uuid.UUID) (domain.ModeID, error) {
	state, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return state.ActiveModeID(), nil
}

// SetActiveMode selects a mode for the session. Unknown IDs are rejected
// with ErrInvalidModeSelection and the prior selection is retained. On
// success a ModeChanged event is published for UI collaborators.
func (c *Controller) SetActiveMode(
	ctx context.Context,
	sessionID uuid.UUID,
	id domain.ModeID,
) error {
	state, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if _, err := c.registry.Resolve(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidModeSelection, id)
	}

	previous := state.ActiveModeID()
	state.SetActiveModeID(id)

	if c.publisher != nil && previous != id {
		c.publisher.PublishModeChanged(domain.ModeChangedEvent{
			SessionID: sessionID,
			Previous:  previous,
			New:       id,
		})
	}

	return nil
}

// HandlePlaybackStarted records the stopped-to-playing transition: the
// origin frame for the restore mode and the starting direction. Hosts call
// this from their playback-start event, including restarts the controller
// itself caused.
func (c *Controller) HandlePlaybackStarted(
	ctx context.Context,
	sessionID uuid.UUID,
	frame int,
	reverse bool,
) error {
	state, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	state.BeginPlayback(frame, domain.DirectionFor(reverse))
	return nil
}

// HandlePlaybackStopped clears playback-scoped tracking when the session
// goes idle. Direction and origin are re-initialized on the next start.
func (c *Controller) HandlePlaybackStopped(ctx context.Context, sessionID uuid.UUID) error {
	state, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	state.EndPlayback()
	return nil
}

// HandleFrameAdvance is the per-notification algorithm. Invoked once per
// frame-advance event; returns immediately when the host is not playing,
// which is what keeps scrubbing and manual frame-setting from triggering
// boundary actions.
func (c *Controller) HandleFrameAdvance(
	ctx context.Context,
	sessionID uuid.UUID,
	snap domain.FrameSnapshot,
) error {
	state, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if !snap.Playing {
		return nil
	}

	mode, err := c.registry.Resolve(state.ActiveModeID())
	if err != nil {
		// Stale ID from a prior registry version: fall back to standard
		// loop behavior for this tick rather than failing the host callback.
		slog.Warn("active mode not registered, treating as standard loop",
			"session", sessionID,
			"mode", state.ActiveModeID(),
		)
		return nil
	}

	plan := domain.EvaluateBoundary(mode.Kind, snap.Frame, snap.Range)
	if plan.None() {
		state.ClearPlanLatch()
		return nil
	}

	// Exactly once per crossing: the latch holds until the frame value
	// moves away from the boundary or playback stops.
	if state.PlanIssuedAt(snap.Frame) {
		return nil
	}

	if err := c.issuePlan(ctx, sessionID, state, snap, plan); err != nil {
		return err
	}
	state.MarkPlanIssued(snap.Frame)

	if c.publisher != nil {
		c.publisher.PublishBoundaryReached(domain.BoundaryReachedEvent{
			SessionID: sessionID,
			Frame:     snap.Frame,
			Boundary:  plan.Boundary,
			Mode:      mode.ID,
		})
	}

	return nil
}

// issuePlan executes a command plan against the host transport. The host
// may observe the commands as state changes (and call the playback
// started/stopped hooks re-entrantly), but the frame handler itself is not
// re-run for this tick.
func (c *Controller) issuePlan(
	ctx context.Context,
	sessionID uuid.UUID,
	state *domain.SessionState,
	snap domain.FrameSnapshot,
	plan domain.CommandPlan,
) error {
	if err := c.transport.CancelPlayback(ctx, sessionID, plan.RestoreOrigin); err != nil {
		return err
	}

	if plan.JumpTo != nil {
		if err := c.transport.SetCurrentFrame(ctx, sessionID, *plan.JumpTo); err != nil {
			return err
		}
	}

	if plan.Resume != nil {
		if err := c.transport.StartPlayback(ctx, sessionID, *plan.Resume); err != nil {
			return err
		}
		state.SetDirection(domain.DirectionFor(*plan.Resume))
	}

	slog.Debug("issued boundary commands",
		"session", sessionID,
		"frame", snap.Frame,
		"boundary", plan.Boundary.String(),
	)

	return nil
}
