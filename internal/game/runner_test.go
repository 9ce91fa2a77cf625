package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/atreya/mindplay/internal/level"
)

func runnerLevel() level.Level {
	return level.Level{
		ID: "runner-test", Variant: level.VariantRunner,
		Difficulty: level.DifficultyEasy,
		Speed:      1.0, ObstacleCount: 4, TimeLimitSecs: 60,
	}
}

func TestRunner_ScoreCapsAtHundred(t *testing.T) {
	lvl := runnerLevel()
	lvl.ObstacleCount = 0 // no collisions possible
	r := NewRunner(lvl, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)
	r.Start(now)

	var out *Outcome
	for i := 0; i < 10000; i++ {
		out = r.Step(now)
		if r.Score() > MaxScore {
			t.Fatalf("score %d exceeds cap", r.Score())
		}
		if out != nil {
			break
		}
	}
	if out == nil {
		t.Fatal("runner never terminated")
	}
	if !out.Success || out.Score != MaxScore {
		t.Errorf("outcome = %+v, want success at score 100", out)
	}
	if r.Status() != StatusSucceeded {
		t.Errorf("status = %v, want Succeeded", r.Status())
	}
}

func TestRunner_TerminalIsOneShot(t *testing.T) {
	lvl := runnerLevel()
	lvl.ObstacleCount = 0
	r := NewRunner(lvl, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)
	r.Start(now)

	for i := 0; i < 10000; i++ {
		if out := r.Step(now); out != nil {
			break
		}
	}
	if out := r.Step(now); out != nil {
		t.Error("Step after terminal should return nil")
	}
	if out := r.TickSecond(); out != nil {
		t.Error("TickSecond after terminal should return nil")
	}
	if out := r.HandleInput(Up, now); out != nil {
		t.Error("HandleInput after terminal should return nil")
	}
}

func TestRunner_CountdownFails(t *testing.T) {
	r := NewRunner(runnerLevel(), rand.New(rand.NewSource(2)))
	now := time.Unix(0, 0)
	r.Start(now)

	var out *Outcome
	for i := 0; i < 60; i++ {
		out = r.TickSecond()
	}
	if out == nil || out.Success {
		t.Fatalf("outcome = %+v, want failure on countdown expiry", out)
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", r.Remaining())
	}
}

func TestRunner_InputStaysInBounds(t *testing.T) {
	r := NewRunner(runnerLevel(), rand.New(rand.NewSource(3)))
	now := time.Unix(0, 0)
	r.Start(now)

	w, h := r.Size()
	for i := 0; i < 50; i++ {
		r.HandleInput(Up, now)
		r.HandleInput(Left, now)
	}
	x, y := r.Player()
	if x != 0 || y != 0 {
		t.Errorf("player = (%d,%d), want clamped to (0,0)", x, y)
	}
	for i := 0; i < 100; i++ {
		r.HandleInput(Down, now)
		r.HandleInput(Right, now)
	}
	x, y = r.Player()
	if x != w-1 || y != h-1 {
		t.Errorf("player = (%d,%d), want clamped to (%d,%d)", x, y, w-1, h-1)
	}
}

func TestRunner_CollisionFails(t *testing.T) {
	lvl := runnerLevel()
	lvl.ObstacleCount = 10
	r := NewRunner(lvl, rand.New(rand.NewSource(4)))
	now := time.Unix(0, 0)
	r.Start(now)

	// The player never dodges, so some obstacle eventually hits.
	var out *Outcome
	for i := 0; i < 100000 && out == nil; i++ {
		out = r.Step(now)
	}
	if out == nil {
		t.Fatal("runner never terminated")
	}
	if out.Success && out.Score < MaxScore {
		t.Errorf("unexpected outcome %+v", out)
	}
}
