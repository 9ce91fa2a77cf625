// Package game implements the four mini-game state machines.
//
// Every machine is an explicit state struct driven from the outside by
// three serialized event sources: directional input, a per-frame tick
// and a one-second countdown tick. All randomness comes from an
// injected *rand.Rand so simulations are deterministic under test.
// A machine reports its terminal outcome exactly once; any event after
// that returns nil.
package game

import "time"

// Direction is a discrete directional input event.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Status is the lifecycle state of a machine.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusSucceeded
	StatusFailed
)

// Outcome is the single terminal event of an attempt.
type Outcome struct {
	Score   int
	Success bool
}

// Machine is the shape shared by all four variants. Start moves the
// machine from Idle to Active; HandleInput, Step and TickSecond return
// a non-nil Outcome exactly once, when the attempt ends.
type Machine interface {
	Start(now time.Time)
	HandleInput(dir Direction, now time.Time) *Outcome
	Step(now time.Time) *Outcome
	TickSecond() *Outcome
	Status() Status
	Score() int
	Remaining() int
}

// FrameInterval is the cooperative tick period the UI drives machines at.
const FrameInterval = 50 * time.Millisecond

// MaxScore is the success score cap shared by the runner and snake variants.
const MaxScore = 100
