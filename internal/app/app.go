// Package app owns the root Bubble Tea model: terminal sizing, the
// screen router and the global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/router"
	"github.com/atreya/mindplay/internal/screen"
	gamescreen "github.com/atreya/mindplay/internal/screens/game"
	"github.com/atreya/mindplay/internal/screens/home"
	"github.com/atreya/mindplay/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Progression *progression.Service
	Catalog     *level.Catalog
	ChildID     string

	// StartLevel, when set, pushes a game screen for that level on top
	// of the home screen at startup. Used by `play <variant>`.
	StartLevel *level.Level
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	startLevel *level.Level
	prog       *progression.Service
	childID    string
	width      int
	height     int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router:     router.New(home.New(opts.Progression, opts.Catalog, opts.ChildID)),
		startLevel: opts.StartLevel,
		prog:       opts.Progression,
		childID:    opts.ChildID,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	cmd := active.Init()
	if m.startLevel == nil {
		return cmd
	}
	lvl := *m.startLevel
	push := func() tea.Msg {
		return router.PushScreenMsg{
			Screen: gamescreen.New(m.prog, m.childID, lvl, func() tea.Msg {
				return home.RefreshStatsMsg{}
			}),
		}
	}
	return tea.Batch(cmd, push)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak, challengeDone := 0, false
	if sp, ok := active.(screen.StreakProvider); ok {
		streak, challengeDone = sp.HeaderStats()
	}
	header := layout.RenderHeader(title, streak, challengeDone, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
