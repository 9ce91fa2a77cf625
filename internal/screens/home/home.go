package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/router"
	"github.com/atreya/mindplay/internal/screen"
	gamescreen "github.com/atreya/mindplay/internal/screens/game"
	"github.com/atreya/mindplay/internal/screens/trophies"
	"github.com/atreya/mindplay/internal/store"
	"github.com/atreya/mindplay/internal/ui/components"
)

// RefreshStatsMsg asks the home screen to reload streak and challenge
// state, typically after a game session finished.
type RefreshStatsMsg struct{}

type statsLoadedMsg struct {
	Streak     int
	TotalGames int
	Challenge  *store.DailyChallenge
	Err        error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	prog    *progression.Service
	catalog *level.Catalog
	childID string

	menu       components.Menu
	menuLabels []string

	// Difficulty picker shown after a game is chosen.
	picking     bool
	pickVariant level.Variant
	pickIndex   int

	streak        int
	totalGames    int
	challenge     *store.DailyChallenge
	challengeDone bool
	loaded        bool
}

var _ screen.Screen = (*HomeScreen)(nil)

var difficulties = []level.Difficulty{
	level.DifficultyEasy,
	level.DifficultyMedium,
	level.DifficultyHard,
}

var difficultyLabels = []string{"EASY", "MEDIUM", "HARD"}

// New creates the home screen.
func New(prog *progression.Service, catalog *level.Catalog, childID string) *HomeScreen {
	h := &HomeScreen{
		prog:    prog,
		catalog: catalog,
		childID: childID,
	}

	labels := []string{"DAILY QUEST"}
	items := []components.MenuItem{
		{Label: "DAILY QUEST", Action: h.startDailyQuest},
	}
	for _, v := range level.Variants {
		variant := v
		labels = append(labels, strings.ToUpper(variant.DisplayName()))
		items = append(items, components.MenuItem{
			Label: variant.DisplayName(),
			Action: func() tea.Cmd {
				h.picking = true
				h.pickVariant = variant
				h.pickIndex = 0
				return nil
			},
		})
	}
	labels = append(labels, "TROPHY ROOM", "EXIT")
	items = append(items,
		components.MenuItem{Label: "TROPHY ROOM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trophies.New(prog, childID)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	h.menuLabels = labels
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// HeaderStats feeds the header bar.
func (h *HomeScreen) HeaderStats() (int, bool) {
	return h.streak, h.challengeDone
}

// loadStats fetches streak, game count and today's challenge.
func (h *HomeScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		challenge, err := h.prog.DailyChallenge(ctx, h.childID, now)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		streak, total, err := h.prog.Stats(ctx, h.childID, now)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{
			Streak:     streak,
			TotalGames: total,
			Challenge:  challenge,
		}
	}
}

// startDailyQuest launches today's challenge level.
func (h *HomeScreen) startDailyQuest() tea.Cmd {
	if h.challenge == nil {
		return nil
	}
	v, err := level.ParseVariant(h.challenge.Variant)
	if err != nil {
		return nil
	}
	lvl, err := h.catalog.Get(v, h.challenge.LevelID)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: gamescreen.New(h.prog, h.childID, lvl, refreshCmd()),
		}
	}
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return RefreshStatsMsg{} }
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.streak = msg.Streak
			h.totalGames = msg.TotalGames
			h.challenge = msg.Challenge
			h.challengeDone = msg.Challenge != nil && msg.Challenge.Completed
		}
		h.loaded = true
		return h, nil

	case RefreshStatsMsg:
		return h, h.loadStats()

	case tea.KeyMsg:
		if h.picking {
			return h.updatePicker(msg)
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updatePicker(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "a":
		if h.pickIndex > 0 {
			h.pickIndex--
		}
	case "right", "l", "d":
		if h.pickIndex < len(difficulties)-1 {
			h.pickIndex++
		}
	case "esc":
		h.picking = false
	case "enter":
		lvl, err := h.catalog.ByDifficulty(h.pickVariant, difficulties[h.pickIndex])
		if err != nil {
			h.picking = false
			return h, nil
		}
		h.picking = false
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: gamescreen.New(h.prog, h.childID, lvl, refreshCmd()),
			}
		}
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		mascot := MascotIdle
		if h.challengeDone {
			mascot = MascotCelebrating
		} else if h.streak > 1 {
			mascot = MascotWaving
		}
		sections = append(sections, renderMascotBox(mascot, cw))
	}

	sections = append(sections, renderStatsBar(
		h.streak, h.totalGames, h.challengeDone, cw, compact))

	if h.picking {
		sections = append(sections, renderDifficultyRow(
			difficultyLabels, h.pickIndex, cw))
	} else {
		disabled := map[int]bool{}
		if h.challenge == nil {
			disabled[0] = true
		}
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, disabled))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}
