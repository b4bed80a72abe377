// Package tui renders the in-ride countdown for an active journey. It is a
// presentation collaborator: it drives Coordinator.OnTick once per second
// and only ever observes the published snapshot.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HSellappan/RailFocus-sub001/coordinator"
	"github.com/HSellappan/RailFocus-sub001/internal/clock"
	"github.com/HSellappan/RailFocus-sub001/timer"
)

const (
	padding  = 2
	maxWidth = 60
)

type keymap struct {
	togglePlay key.Binding
	enter      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "disembark"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "end journey"),
	),
}

type tickMsg time.Time

// Model is the bubbletea model for a single journey.
type Model struct {
	coord          *coordinator.Coordinator
	clock          clock.Clock
	progress       progress.Model
	help           help.Model
	snap           coordinator.Snapshot
	styles         styles
	twentyFourHour bool
	arrived        bool
	quitting       bool
}

// New builds the countdown model for the coordinator's active journey.
func New(c *coordinator.Coordinator, clk clock.Clock, twentyFourHour bool) Model {
	return Model{
		coord:          c,
		clock:          clk,
		progress:       progress.New(progress.WithDefaultGradient()),
		help:           help.New(),
		snap:           c.Snapshot(),
		styles:         defaultStyles(),
		twentyFourHour: twentyFourHour,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.coord.OnTick(m.clock.Now())

		if m.snap.Timer.State == timer.StateCompleted {
			m.arrived = true
			return m, nil
		}

		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if m.arrived {
			return m, nil
		}

		switch m.snap.Timer.State {
		case timer.StateRunning:
			_ = m.coord.Pause()
		case timer.StatePaused:
			_ = m.coord.Resume()
		}

		m.snap = m.coord.Snapshot()

		return m, nil

	case key.Matches(msg, defaultKeymap.enter):
		if m.arrived {
			m.quitting = true
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.quit):
		if !m.arrived {
			// persistence warnings are already logged
			_, _ = m.coord.InterruptJourney()
		}

		m.quitting = true

		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}
