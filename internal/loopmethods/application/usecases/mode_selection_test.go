package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
)

func TestController_Attach(t *testing.T) {
	repo := newMockRepository()
	ctrl := NewController(repo, newTestRegistry(), &mockTransport{}, nil)

	id, err := ctrl.Attach(context.Background())
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	mode, err := ctrl.ActiveMode(context.Background(), id)
	if err != nil {
		t.Fatalf("ActiveMode() error = %v", err)
	}
	if mode != domain.ModeLoop {
		t.Errorf("default mode = %v, want %v (registry's lowest sort index)", mode, domain.ModeLoop)
	}
}

func TestController_SetActiveMode(t *testing.T) {
	tests := []struct {
		name       string
		initial    domain.ModeID
		selected   domain.ModeID
		wantErr    error
		wantActive domain.ModeID
		wantEvents int
	}{
		{
			name:       "valid selection",
			initial:    domain.ModeLoop,
			selected:   domain.ModePingPong,
			wantActive: domain.ModePingPong,
			wantEvents: 1,
		},
		{
			name:       "unknown id rejected, prior selection retained",
			initial:    domain.ModeStop,
			selected:   domain.ModeID("nonsense"),
			wantErr:    ErrInvalidModeSelection,
			wantActive: domain.ModeStop,
			wantEvents: 0,
		},
		{
			name:       "reselecting the active mode emits no event",
			initial:    domain.ModeStop,
			selected:   domain.ModeStop,
			wantActive: domain.ModeStop,
			wantEvents: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepository()
			publisher := &mockPublisher{}
			ctrl := NewController(repo, newTestRegistry(), &mockTransport{}, publisher)

			id, state := repo.seedSession(tt.initial)

			err := ctrl.SetActiveMode(context.Background(), id, tt.selected)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SetActiveMode() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("SetActiveMode() error = %v", err)
			}

			if state.ActiveModeID() != tt.wantActive {
				t.Errorf("active mode = %v, want %v", state.ActiveModeID(), tt.wantActive)
			}
			if len(publisher.modeChanged) != tt.wantEvents {
				t.Errorf("published %d mode events, want %d",
					len(publisher.modeChanged), tt.wantEvents)
			}
		})
	}
}

func TestController_SetActiveMode_EventPayload(t *testing.T) {
	repo := newMockRepository()
	publisher := &mockPublisher{}
	ctrl := NewController(repo, newTestRegistry(), &mockTransport{}, publisher)

	id, _ := repo.seedSession(domain.ModeLoop)

	if err := ctrl.SetActiveMode(context.Background(), id, domain.ModeRestore); err != nil {
		t.Fatalf("SetActiveMode() error = %v", err)
	}

	if len(publisher.modeChanged) != 1 {
		t.Fatalf("published %d mode events, want 1", len(publisher.modeChanged))
	}
	event := publisher.modeChanged[0]
	if event.SessionID != id || event.Previous != domain.ModeLoop || event.New != domain.ModeRestore {
		t.Errorf("mode event = %+v", event)
	}
}

func TestController_SetActiveMode_UnknownSession(t *testing.T) {
	repo := newMockRepository()
	ctrl := NewController(repo, newTestRegistry(), &mockTransport{}, nil)

	id, _ := repo.seedSession(domain.ModeLoop)
	_ = ctrl.Detach(context.Background(), id)

	err := ctrl.SetActiveMode(context.Background(), id, domain.ModeStop)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("SetActiveMode() error = %v, want ErrSessionNotFound", err)
	}
}
