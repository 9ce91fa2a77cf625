package game

import (
	"time"

	"github.com/atreya/mindplay/internal/progression"
)

// frameTickMsg drives the simulation at game.FrameInterval. The gen
// field ties a tick to the attempt that armed it so ticks from a
// finished attempt are dropped.
type frameTickMsg struct {
	Gen int
	At  time.Time
}

// secondTickMsg drives the one-second countdown.
type secondTickMsg struct {
	Gen int
	At  time.Time
}

// recordedMsg reports that the finished session was persisted and the
// progression rules ran.
type recordedMsg struct {
	Update *progression.Update
	Err    error
}
