// Package trophies shows the achievement collection.
package trophies

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/router"
	"github.com/atreya/mindplay/internal/screen"
	"github.com/atreya/mindplay/internal/store"
	"github.com/atreya/mindplay/internal/ui/components"
	"github.com/atreya/mindplay/internal/ui/layout"
	"github.com/atreya/mindplay/internal/ui/theme"
)

type trophiesLoadedMsg struct {
	States []store.AchievementState
	Err    error
}

// TrophiesScreen displays every achievement with its progress.
type TrophiesScreen struct {
	prog    *progression.Service
	childID string

	states       map[string]store.AchievementState
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*TrophiesScreen)(nil)
var _ screen.KeyHintProvider = (*TrophiesScreen)(nil)

// New creates a trophies screen.
func New(prog *progression.Service, childID string) *TrophiesScreen {
	return &TrophiesScreen{
		prog:    prog,
		childID: childID,
		states:  make(map[string]store.AchievementState),
	}
}

func (s *TrophiesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		states, err := s.prog.Achievements(context.Background(), s.childID)
		return trophiesLoadedMsg{States: states, Err: err}
	}
}

func (s *TrophiesScreen) Title() string {
	return "Trophy Room"
}

func (s *TrophiesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trophiesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			for _, st := range msg.States {
				s.states[st.AchievementID] = st
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(progression.Achievements)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TrophiesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Opening the trophy room...")
	}

	var b strings.Builder

	unlockedCount := 0
	for _, st := range s.states {
		if st.UnlockedAt != nil {
			unlockedCount++
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d of %d trophies earned\n", unlockedCount, len(progression.Achievements))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Each trophy takes three lines; clip to the visible window.
	maxVisible := (height - 8) / 3
	if maxVisible < 2 {
		maxVisible = 2
	}
	defs := progression.Achievements
	start := s.scrollOffset
	if start > len(defs)-1 {
		start = len(defs) - 1
	}
	end := start + maxVisible
	if end > len(defs) {
		end = len(defs)
	}

	barWidth := min(width-24, 40)
	for i := start; i < end; i++ {
		def := defs[i]
		st, have := s.states[def.ID]

		nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		icon := "🔒"
		detail := def.Description
		if have && st.UnlockedAt != nil {
			nameStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			icon = "🏆"
			detail = fmt.Sprintf("%s · earned %s", def.Description, st.UnlockedAt.Format("Jan 02, 2006"))
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			nameStyle.Render(fmt.Sprintf("%s %s", icon, def.Name))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		b.WriteString("\n")

		progress := 0.0
		if have && def.MaxProgress > 0 {
			progress = float64(st.Progress) / float64(def.MaxProgress)
		}
		bar := components.NewProgressBar("", progress, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	if end < len(defs) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(defs)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
