// Package summary shows the outcome of a finished game session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/router"
	"github.com/atreya/mindplay/internal/screen"
	"github.com/atreya/mindplay/internal/session"
	"github.com/atreya/mindplay/internal/ui/components"
	"github.com/atreya/mindplay/internal/ui/layout"
	"github.com/atreya/mindplay/internal/ui/theme"
)

// SummaryScreen displays the session result, mood readout and any
// progression rewards.
type SummaryScreen struct {
	result     *session.Result
	update     *progression.Update
	persistErr error
	refresh    tea.Cmd
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. refresh runs after the screen closes so
// the home screen reloads its stats.
func New(result *session.Result, update *progression.Update, persistErr error, refresh tea.Cmd) *SummaryScreen {
	return &SummaryScreen{
		result:     result,
		update:     update,
		persistErr: persistErr,
		refresh:    refresh,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Well Played"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ":
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			if s.refresh != nil {
				return s, tea.Sequence(pop, s.refresh)
			}
			return s, pop
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s complete!", res.Variant.DisplayName())))
	b.WriteString("\n\n")

	mins := int(res.CompletionTime.Minutes())
	secs := int(res.CompletionTime.Seconds()) % 60
	statsLine := fmt.Sprintf("Score: %d        Time: %d:%02d        Tries: %d",
		res.Score, mins, secs, res.RetryCount+1)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("How it went")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-20, 44)
	moods := []struct {
		label string
		value float64
	}{
		{"Joy       ", res.Emotion.Joy},
		{"Engagement", res.Emotion.Engagement},
		{"Focus     ", res.Emotion.Focus},
		{"Frustration", res.Emotion.Frustration},
	}
	for _, m := range moods {
		bar := components.NewProgressBar(m.label, m.value, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	if s.update != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		streakLine := fmt.Sprintf("🔥 %d day streak", s.update.StreakDays)
		if s.update.StreakExtended {
			streakLine += "  — keep it going!"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(streakLine)))
		b.WriteString("\n")

		if s.update.ChallengeCompleted {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
					Render("★ Daily quest complete!")))
			b.WriteString("\n")
		}

		for _, a := range s.update.Unlocked {
			line := fmt.Sprintf("🏆 %s — %s", a.Name, a.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)))
			b.WriteString("\n")
		}
	}

	if s.persistErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render("Couldn't save this game: "+s.persistErr.Error())))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
