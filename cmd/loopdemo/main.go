package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/L0Lock/LoopMethods/internal/engine"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/events"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/usecases"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/domain"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/infrastructure"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/registry"
	"github.com/L0Lock/LoopMethods/internal/tui"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/loopdemo
var version = "dev"

func main() {
	// Logs go to stderr so they do not fight the TUI for stdout.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	slog.Info("starting loopdemo", "version", version)

	cfg, err := tui.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Mode catalog with terminal glyphs as icon handles.
	icons := infrastructure.NewGlyphIconProvider()
	reg := registry.New(icons)
	defer reg.Teardown()

	bus := events.NewBus(events.DefaultEventBufferSize)
	defer bus.Close()

	eng := engine.New(domain.PlaybackRange{Start: cfg.FrameStart, End: cfg.FrameEnd})
	ctrl := usecases.NewController(infrastructure.NewMemoryRepository(), reg, eng, bus)

	sessionID, err := ctrl.Attach(ctx)
	if err != nil {
		slog.Error("failed to attach session", "error", err)
		os.Exit(1)
	}

	if cfg.DefaultMode != "" {
		if err := ctrl.SetActiveMode(ctx, sessionID, domain.ModeID(cfg.DefaultMode)); err != nil {
			slog.Error("failed to select default mode", "mode", cfg.DefaultMode, "error", err)
			os.Exit(1)
		}
	}

	// Host-side wiring: the controller observes the engine's playback
	// lifecycle and frame advancement.
	eng.OnPlaybackStarted(func(frame int, reverse bool) {
		if err := ctrl.HandlePlaybackStarted(ctx, sessionID, frame, reverse); err != nil {
			slog.Warn("playback start hook failed", "error", err)
		}
	})
	eng.OnPlaybackStopped(func() {
		if err := ctrl.HandlePlaybackStopped(ctx, sessionID); err != nil {
			slog.Warn("playback stop hook failed", "error", err)
		}
	})
	eng.OnFrameAdvance(func(snap domain.FrameSnapshot) {
		if err := ctrl.HandleFrameAdvance(ctx, sessionID, snap); err != nil {
			slog.Warn("frame handler failed", "error", err)
		}
	})

	program := tea.NewProgram(
		tui.New(eng, ctrl, reg, bus, sessionID, cfg),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		slog.Error("demo exited with error", "error", err)
		os.Exit(1)
	}

	slog.Info("completed loopdemo shutdown")
}
