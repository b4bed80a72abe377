package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/HSellappan/RailFocus-sub001/internal/timeutil"
	"github.com/HSellappan/RailFocus-sub001/timer"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		base: lipgloss.NewStyle().Padding(1, padding),
		main: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}),
		secondary: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "241", Dark: "247"}),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "246", Dark: "241"}),
	}
}

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (m Model) formatTimeRemaining() string {
	mins, secs := timeutil.SecsToMinsAndSecs(m.snap.Timer.Remaining.Seconds())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

func (m Model) arrivalView() string {
	var s strings.Builder

	j := m.snap.Active

	title := "You have arrived"
	msg := "Journey recorded."

	if j != nil {
		title = "Welcome to " + j.Destination.City
		msg = fmt.Sprintf(
			"%.0f miles of focus recorded. Current streak: %d days.",
			j.DistanceMiles,
			m.snap.Progress.CurrentStreak,
		)
	}

	s.WriteString(m.styles.main.SetString(title).String())
	s.WriteString("\n\n" + m.styles.secondary.SetString(msg).String())
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m Model) journeyView() string {
	var s strings.Builder

	j := m.snap.Active
	if j == nil {
		return ""
	}

	s.WriteString(m.styles.main.SetString(j.Route()).String())

	if j.Tag != "" {
		s.WriteString(m.styles.hint.SetString(" [" + string(j.Tag) + "]").String())
	}

	s.WriteString("\n")

	if m.snap.Timer.State == timer.StatePaused {
		s.WriteString(m.styles.secondary.SetString("[Paused]").String())
	} else {
		timeFormat := "03:04 PM"
		if m.twentyFourHour {
			timeFormat = "15:04"
		}

		eta := m.clock.Now().Add(m.snap.Timer.Remaining)

		s.WriteString(m.styles.hint.
			SetString("arriving " + eta.Format(timeFormat)).String())
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.main.SetString(m.formatTimeRemaining()).String())
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.snap.Timer.Progress))
	s.WriteString("\n\n")
	s.WriteString(m.styles.hint.
		SetString(fmt.Sprintf("%.0f miles", j.DistanceMiles)).String())

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.arrived {
		return m.styles.base.Render(m.arrivalView())
	}

	return m.styles.base.Render(m.journeyView())
}
