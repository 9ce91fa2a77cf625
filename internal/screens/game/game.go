// Package game hosts one playable session inside the TUI: it drives the
// machine with tick messages, translates key presses into directional
// input and hands the finished result to the summary screen.
package game

import (
	"context"
	"math/rand"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/atreya/mindplay/internal/game"
	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/router"
	"github.com/atreya/mindplay/internal/screen"
	"github.com/atreya/mindplay/internal/screens/summary"
	"github.com/atreya/mindplay/internal/session"
	"github.com/atreya/mindplay/internal/ui/layout"
)

// GameScreen runs one level from instructions to completion.
type GameScreen struct {
	prog    *progression.Service
	childID string
	lvl     level.Level
	ctrl    *session.Controller

	// gen counts attempts; tick messages carrying an older gen are
	// stale and ignored.
	gen int

	result  *session.Result
	saving  bool
	spin    spinner.Model
	refresh tea.Cmd
	errMsg  string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a game screen for the given level. refresh is replayed to
// the home screen after the summary closes so its stats reload.
func New(prog *progression.Service, childID string, lvl level.Level, refresh tea.Cmd) *GameScreen {
	factory := func() (game.Machine, error) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		switch lvl.Variant {
		case level.VariantPattern:
			return game.NewPattern(lvl, rng), nil
		case level.VariantSnake:
			return game.NewSnake(lvl, rng), nil
		case level.VariantMaze:
			return game.NewMazeNav(lvl, rng)
		default:
			return game.NewRunner(lvl, rng), nil
		}
	}

	return &GameScreen{
		prog:    prog,
		childID: childID,
		lvl:     lvl,
		ctrl:    session.NewController(childID, lvl, factory),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		refresh: refresh,
	}
}

func (s *GameScreen) Init() tea.Cmd {
	return nil
}

func (s *GameScreen) Title() string {
	return s.lvl.Variant.DisplayName()
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Phase() {
	case session.PhaseInstructions:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case session.PhaseAwaitingStart:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case session.PhaseAwaitingRetry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "Esc", Description: "Give up"},
		}
	case session.PhaseActive:
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
	return nil
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		return s.handleFrameTick(msg)
	case secondTickMsg:
		return s.handleSecondTick(msg)
	case recordedMsg:
		return s.handleRecorded(msg)
	case spinner.TickMsg:
		if s.saving {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popCmd()
	}

	switch s.ctrl.Phase() {
	case session.PhaseInstructions:
		if key == "esc" {
			return s, popCmd()
		}
		s.ctrl.Ready()
		return s, nil

	case session.PhaseAwaitingStart:
		switch key {
		case "esc":
			return s, popCmd()
		case "enter", " ":
			return s.startAttempt()
		}

	case session.PhaseAwaitingRetry:
		switch key {
		case "esc":
			return s, popCmd()
		case "enter", " ", "r":
			s.ctrl.Retry()
			return s.startAttempt()
		}

	case session.PhaseActive:
		if key == "esc" {
			s.ctrl.Abandon()
			s.gen++
			return s, popCmd()
		}
		if dir, ok := keyDirection(key); ok {
			res := s.ctrl.HandleInput(dir, time.Now())
			return s.afterEvent(res)
		}
	}

	return s, nil
}

func (s *GameScreen) startAttempt() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.StartAttempt(time.Now()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.gen++
	return s, tea.Batch(s.frameTick(), s.secondTick())
}

func (s *GameScreen) handleFrameTick(msg frameTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen || s.ctrl.Phase() != session.PhaseActive {
		return s, nil
	}
	res := s.ctrl.TickFrame(msg.At)
	next, cmd := s.afterEvent(res)
	if cmd == nil && s.ctrl.Phase() == session.PhaseActive {
		cmd = s.frameTick()
	}
	return next, cmd
}

func (s *GameScreen) handleSecondTick(msg secondTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen || s.ctrl.Phase() != session.PhaseActive {
		return s, nil
	}
	res := s.ctrl.TickSecond(msg.At)
	next, cmd := s.afterEvent(res)
	if cmd == nil && s.ctrl.Phase() == session.PhaseActive {
		cmd = s.secondTick()
	}
	return next, cmd
}

// afterEvent inspects the controller phase after an input or tick. A
// non-nil result means the level was beaten and persistence starts.
func (s *GameScreen) afterEvent(res *session.Result) (screen.Screen, tea.Cmd) {
	if res == nil {
		return s, nil
	}
	s.result = res
	s.saving = true
	s.gen++
	return s, tea.Batch(s.record(res), s.spin.Tick)
}

// record persists the result and runs progression in the background.
func (s *GameScreen) record(res *session.Result) tea.Cmd {
	return func() tea.Msg {
		up, err := s.prog.RecordSession(context.Background(), res, time.Now())
		return recordedMsg{Update: up, Err: err}
	}
}

func (s *GameScreen) handleRecorded(msg recordedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.result, msg.Update, msg.Err, s.refresh),
		}
	}
}

func (s *GameScreen) frameTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(game.FrameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg{Gen: gen, At: t}
	})
}

func (s *GameScreen) secondTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return secondTickMsg{Gen: gen, At: t}
	})
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func keyDirection(key string) (game.Direction, bool) {
	switch key {
	case "up", "w", "k":
		return game.Up, true
	case "down", "s", "j":
		return game.Down, true
	case "left", "a", "h":
		return game.Left, true
	case "right", "d", "l":
		return game.Right, true
	}
	return 0, false
}
