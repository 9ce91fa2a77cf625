// Package session wraps one game machine in the attempt lifecycle:
// instructions, start, active play, retry accounting and terminal
// result assembly.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/atreya/mindplay/internal/game"
	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/scoring"
)

// Phase is the controller lifecycle state.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseAwaitingStart
	PhaseActive
	PhaseAwaitingRetry
	PhaseCompleted
)

// MachineFactory builds a fresh machine for each attempt.
type MachineFactory func() (game.Machine, error)

// Controller owns the lifecycle around one variant instance. Retry
// count accumulates across attempts of the same level; reaction samples
// belong to the current attempt only and reset on each (re)start.
type Controller struct {
	sessionID string
	childID   string
	variant   level.Variant
	level     level.Level

	newMachine MachineFactory
	machine    game.Machine

	phase        Phase
	retryCount   int
	attemptStart time.Time

	recorder game.Recorder
	samples  []time.Duration

	// terminalSeen latches the first terminal signal of an attempt;
	// every later signal for the same attempt is a no-op.
	terminalSeen bool

	weights scoring.Weights
	result  *Result
}

// NewController creates a controller in the instructions phase.
func NewController(childID string, lvl level.Level, factory MachineFactory) *Controller {
	return &Controller{
		sessionID:  uuid.New().String(),
		childID:    childID,
		variant:    lvl.Variant,
		level:      lvl,
		newMachine: factory,
		phase:      PhaseInstructions,
		weights:    scoring.DefaultWeights(),
	}
}

func (c *Controller) SessionID() string     { return c.sessionID }
func (c *Controller) ChildID() string       { return c.childID }
func (c *Controller) Level() level.Level    { return c.level }
func (c *Controller) Phase() Phase          { return c.phase }
func (c *Controller) RetryCount() int       { return c.retryCount }
func (c *Controller) Machine() game.Machine { return c.machine }
func (c *Controller) Result() *Result       { return c.result }

// Samples returns the current attempt's reaction latencies.
func (c *Controller) Samples() []time.Duration { return c.samples }

// Ready leaves the instructions phase.
func (c *Controller) Ready() {
	if c.phase == PhaseInstructions {
		c.phase = PhaseAwaitingStart
	}
}

// Retry acknowledges a failed attempt and arms the next one. The retry
// count was already incremented when the attempt failed.
func (c *Controller) Retry() {
	if c.phase == PhaseAwaitingRetry {
		c.phase = PhaseAwaitingStart
	}
}

// StartAttempt builds a fresh machine and enters active play. The
// attempt's reaction recorder and sample buffer start empty.
func (c *Controller) StartAttempt(now time.Time) error {
	if c.phase != PhaseAwaitingStart {
		return nil
	}
	m, err := c.newMachine()
	if err != nil {
		return err
	}
	c.machine = m
	c.recorder.Reset()
	c.samples = nil
	c.terminalSeen = false
	c.attemptStart = now
	c.machine.Start(now)
	c.phase = PhaseActive
	return nil
}

// HandleInput records the input's inter-arrival latency, then forwards
// the direction to the machine.
func (c *Controller) HandleInput(dir game.Direction, now time.Time) *Result {
	if c.phase != PhaseActive {
		return nil
	}
	if lat, ok := c.recorder.Record(now); ok {
		c.samples = append(c.samples, lat)
	}
	return c.onTerminal(c.machine.HandleInput(dir, now), now)
}

// TickFrame forwards a frame tick to the machine.
func (c *Controller) TickFrame(now time.Time) *Result {
	if c.phase != PhaseActive {
		return nil
	}
	return c.onTerminal(c.machine.Step(now), now)
}

// TickSecond forwards a countdown tick to the machine.
func (c *Controller) TickSecond(now time.Time) *Result {
	if c.phase != PhaseActive {
		return nil
	}
	return c.onTerminal(c.machine.TickSecond(), now)
}

// Abandon stops the session without producing a result. Used when the
// player navigates away mid-attempt.
func (c *Controller) Abandon() {
	if c.phase == PhaseActive {
		c.terminalSeen = true
		c.phase = PhaseCompleted
	}
}

// onTerminal applies the at-most-once terminal transition. A nil
// outcome means the attempt continues.
func (c *Controller) onTerminal(out *game.Outcome, now time.Time) *Result {
	if out == nil {
		return nil
	}
	if c.terminalSeen || c.phase != PhaseActive {
		return nil
	}
	c.terminalSeen = true

	if !out.Success {
		c.retryCount++
		c.phase = PhaseAwaitingRetry
		return nil
	}

	completion := now.Sub(c.attemptStart)
	if completion <= 0 {
		completion = time.Millisecond
	}
	successRate := float64(out.Score) / 100
	if successRate > 1 {
		successRate = 1
	}

	samples := make([]time.Duration, len(c.samples))
	copy(samples, c.samples)

	emotion := scoring.Score(scoring.Inputs{
		CompletionTime: completion,
		TimeLimit:      time.Duration(c.level.TimeLimitSecs) * time.Second,
		RetryCount:     c.retryCount,
		SuccessRate:    successRate,
		Samples:        samples,
	}, c.weights)

	c.result = &Result{
		SessionID:      c.sessionID,
		ChildID:        c.childID,
		Variant:        c.variant,
		LevelID:        c.level.ID,
		Score:          out.Score,
		CompletionTime: completion,
		RetryCount:     c.retryCount,
		SuccessRate:    successRate,
		Samples:        samples,
		Emotion:        emotion,
		FinishedAt:     now,
	}
	c.phase = PhaseCompleted
	return c.result
}
