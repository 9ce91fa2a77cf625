package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/store"
)

func testHome() *HomeScreen {
	return New(nil, level.DefaultCatalog(), "kid")
}

func TestHomeScreen_StatsLoaded(t *testing.T) {
	h := testHome()
	h.Update(statsLoadedMsg{
		Streak:     4,
		TotalGames: 12,
		Challenge:  &store.DailyChallenge{Variant: "runner", LevelID: "runner-easy", Completed: true},
	})

	streak, done := h.HeaderStats()
	if streak != 4 {
		t.Errorf("streak = %d, want 4", streak)
	}
	if !done {
		t.Error("expected challenge marked done")
	}
}

func TestHomeScreen_MenuHasAllEntries(t *testing.T) {
	h := testHome()
	// daily quest + four games + trophy room + exit
	if len(h.menuLabels) != 7 {
		t.Errorf("menu entries = %d, want 7", len(h.menuLabels))
	}
}

func TestHomeScreen_PickerNavigation(t *testing.T) {
	h := testHome()
	h.picking = true
	h.pickVariant = level.VariantSnake

	h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if h.pickIndex != 1 {
		t.Errorf("pickIndex = %d, want 1", h.pickIndex)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if h.picking {
		t.Error("esc should close the difficulty picker")
	}
}

func TestHomeScreen_PickerEnterPushesGame(t *testing.T) {
	h := testHome()
	h.picking = true
	h.pickVariant = level.VariantMaze

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command on Enter")
	}
	if h.picking {
		t.Error("picker should close after selection")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := testHome()
	h.Update(statsLoadedMsg{Streak: 1, TotalGames: 2})
	if view := h.View(100, 32); view == "" {
		t.Error("expected non-empty home view")
	}
}
