// Package tui hosts the demo timeline UI: a playhead over the playable
// range, a loop-method selector, and the transport keys. It is the UI
// collaborator from the controller's point of view: it selects modes and
// redraws on mode-changed events, nothing more.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/L0Lock/LoopMethods/internal/engine"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/events"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/application/usecases"
	"github.com/L0Lock/LoopMethods/internal/loopmethods/registry"
	"github.com/google/uuid"
)

type tickMsg time.Time

type modeChangedMsg events.ModeChangedEvent

type boundaryMsg events.BoundaryReachedEvent

// Model is the bubbletea model for the demo.
type Model struct {
	eng       *engine.Engine
	ctrl      *usecases.Controller
	reg       *registry.Registry
	bus       *events.Bus
	sessionID uuid.UUID

	interval  time.Duration
	iconsOnly bool
	keys      keyMap
	help      help.Model
	styles    styles

	width      int
	lastStatus string
}

// New creates the demo model for one attached session.
func New(
	eng *engine.Engine,
	ctrl *usecases.Controller,
	reg *registry.Registry,
	bus *events.Bus,
	sessionID uuid.UUID,
	cfg *Config,
) Model {
	return Model{
		eng:       eng,
		ctrl:      ctrl,
		reg:       reg,
		bus:       bus,
		sessionID: sessionID,
		interval:  time.Second / time.Duration(cfg.FPS),
		iconsOnly: cfg.IconsOnly,
		keys:      defaultKeyMap(),
		help:      help.New(),
		styles:    defaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tick(),
		waitForModeChanged(m.bus.ModeChanged()),
		waitForBoundary(m.bus.BoundaryReached()),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForModeChanged(ch <-chan events.ModeChangedEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return modeChangedMsg(event)
	}
}

func waitForBoundary(ch <-chan events.BoundaryReachedEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return boundaryMsg(event)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.eng.Tick()
		return m, m.tick()

	case modeChangedMsg:
		m.lastStatus = fmt.Sprintf("mode: %s → %s", msg.Previous, msg.New)
		return m, waitForModeChanged(m.bus.ModeChanged())

	case boundaryMsg:
		m.lastStatus = fmt.Sprintf("%s boundary at frame %d (%s)",
			msg.Boundary, msg.Frame, msg.Mode)
		return m, waitForBoundary(m.bus.BoundaryReached())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayStop):
		if m.eng.Playing() {
			_ = m.eng.CancelPlayback(ctx, m.sessionID, false)
		} else {
			_ = m.eng.StartPlayback(ctx, m.sessionID, false)
		}

	case key.Matches(msg, m.keys.Reverse):
		m.eng.Reverse()

	case key.Matches(msg, m.keys.NextMode):
		m.selectMode(ctx, 1)

	case key.Matches(msg, m.keys.PrevMode):
		m.selectMode(ctx, -1)

	case key.Matches(msg, m.keys.ScrubLeft):
		m.scrub(ctx, -1)

	case key.Matches(msg, m.keys.ScrubRight):
		m.scrub(ctx, 1)

	case key.Matches(msg, m.keys.IconsOnly):
		m.iconsOnly = !m.iconsOnly

	case key.Matches(msg, m.keys.ReloadIcons):
		if err := m.reg.Reload(); err != nil {
			m.lastStatus = fmt.Sprintf("icon reload failed: %v", err)
		} else {
			m.lastStatus = "icons reloaded"
		}
	}

	return m, nil
}

// selectMode moves the active mode by offset within the registry order.
func (m *Model) selectMode(ctx context.Context, offset int) {
	active, err := m.ctrl.ActiveMode(ctx, m.sessionID)
	if err != nil {
		return
	}

	list := m.reg.List()
	if len(list) == 0 {
		return
	}
	idx := 0
	for i, mode := range list {
		if mode.ID == active {
			idx = i
			break
		}
	}
	next := list[((idx+offset)%len(list)+len(list))%len(list)]
	if err := m.ctrl.SetActiveMode(ctx, m.sessionID, next.ID); err != nil {
		m.lastStatus = fmt.Sprintf("mode selection rejected: %v", err)
	}
}

// scrub moves the playhead manually while stopped.
func (m *Model) scrub(ctx context.Context, delta int) {
	if m.eng.Playing() {
		return
	}
	rng := m.eng.Range()
	frame := m.eng.CurrentFrame() + delta
	if frame < rng.Start {
		frame = rng.Start
	}
	if frame > rng.End {
		frame = rng.End
	}
	_ = m.eng.SetCurrentFrame(ctx, m.sessionID, frame)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Loop Methods"))
	b.WriteString("\n\n")
	b.WriteString(m.modeSelector())
	b.WriteString("\n\n")
	b.WriteString(m.timeline())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// modeSelector renders the catalog with the active entry highlighted,
// mirroring the host's dropdown. Entries without an icon always fall back
// to their label.
func (m Model) modeSelector() string {
	active, err := m.ctrl.ActiveMode(context.Background(), m.sessionID)
	if err != nil {
		return ""
	}

	var cells []string
	for _, mode := range m.reg.List() {
		label := mode.DisplayName
		switch {
		case m.iconsOnly && mode.IconRef != "":
			label = mode.IconRef
		case mode.IconRef != "":
			label = mode.IconRef + " " + mode.DisplayName
		}

		style := m.styles.ModeIdle
		if mode.ID == active {
			style = m.styles.ModeActive
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

// timeline renders the playable range with the playhead on it.
func (m Model) timeline() string {
	snap := m.eng.Snapshot()
	span := snap.Range.End - snap.Range.Start + 1

	width := span
	if m.width > 20 && width > m.width-12 {
		width = m.width - 12
	}
	if width < 1 {
		width = 1
	}

	pos := 0
	if span > 1 {
		pos = (snap.Frame - snap.Range.Start) * (width - 1) / (span - 1)
	}

	var cells []string
	for i := range width {
		if i == pos {
			cells = append(cells, m.styles.Playhead.Render("●"))
		} else {
			cells = append(cells, m.styles.Timeline.Render("─"))
		}
	}
	return fmt.Sprintf("%4d %s %d", snap.Range.Start, strings.Join(cells, ""), snap.Range.End)
}

func (m Model) statusLine() string {
	snap := m.eng.Snapshot()

	state := "stopped"
	if snap.Playing {
		state = "playing"
		if m.eng.ReverseDirection() {
			state = "playing (reverse)"
		}
	}

	line := fmt.Sprintf("frame %d · %s", snap.Frame, state)
	if m.lastStatus != "" {
		line += " · " + m.lastStatus
	}
	return m.styles.Status.Render(line)
}
