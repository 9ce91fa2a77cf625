package session

import (
	"time"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/scoring"
)

// Result is the immutable record of a successful session. It is
// produced exactly once, when an attempt succeeds, and handed to the
// progression engine and the profile store.
type Result struct {
	SessionID      string
	ChildID        string
	Variant        level.Variant
	LevelID        string
	Score          int
	CompletionTime time.Duration
	RetryCount     int
	SuccessRate    float64
	Samples        []time.Duration
	Emotion        scoring.Emotion
	FinishedAt     time.Time
}
