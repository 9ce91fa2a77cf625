package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/scoring"
	"github.com/atreya/mindplay/internal/session"
)

func testResult() *session.Result {
	return &session.Result{
		SessionID:      "test-session",
		ChildID:        "kid",
		Variant:        level.VariantMaze,
		LevelID:        "maze-easy",
		Score:          76,
		CompletionTime: 42 * time.Second,
		RetryCount:     1,
		SuccessRate:    0.76,
		Emotion: scoring.Emotion{
			Joy:         0.8,
			Frustration: 0.2,
			Engagement:  0.7,
			Focus:       0.6,
			Overall:     0.55,
		},
		FinishedAt: time.Now(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), nil, nil, nil)
	if s.Title() != "Well Played" {
		t.Errorf("Title = %q, want %q", s.Title(), "Well Played")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), &progression.Update{StreakDays: 3, StreakExtended: true}, nil, nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(), nil, nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult(), nil, nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult(), nil, nil, nil)
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
