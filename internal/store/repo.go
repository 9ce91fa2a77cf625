package store

import (
	"context"
	"time"
)

// SessionResultData is the flattened row written for each successful
// session.
type SessionResultData struct {
	SessionID       string
	ChildID         string
	Variant         string
	LevelID         string
	Score           int
	CompletionMs    int64
	RetryCount      int
	SuccessRate     float64
	ReactionSamples []int64 // milliseconds
	Joy             float64
	Frustration     float64
	Engagement      float64
	Focus           float64
	Overall         float64
	FinishedAt      time.Time
}

// ResultRepo appends and queries session results.
type ResultRepo interface {
	Append(ctx context.Context, data SessionResultData) error

	// Recent returns the newest results for a child, newest first.
	Recent(ctx context.Context, childID string, limit int) ([]SessionResultData, error)

	// Count returns the number of successful sessions for a child.
	Count(ctx context.Context, childID string) (int, error)

	// CountWhere returns successful sessions for a child where the
	// named emotion column meets the threshold.
	CountWhere(ctx context.Context, childID, emotion string, threshold float64) (int, error)

	// DistinctVariants returns how many distinct variants the child has
	// completed successfully.
	DistinctVariants(ctx context.Context, childID string) (int, error)
}

// DailyChallenge is one per-child, per-calendar-day assignment.
type DailyChallenge struct {
	ChildID   string
	Date      string // YYYY-MM-DD
	Variant   string
	LevelID   string
	Completed bool
}

// ChallengeRepo manages daily challenge rows keyed by (child, date).
type ChallengeRepo interface {
	Get(ctx context.Context, childID, date string) (*DailyChallenge, error)

	// Put upserts a challenge. Writing the same (child, date) twice is
	// idempotent.
	Put(ctx context.Context, c DailyChallenge) error
}

// StreakState is a child's play-streak bookkeeping.
type StreakState struct {
	ChildID      string
	StreakDays   int
	LastPlayDate string // YYYY-MM-DD, empty when never played
}

// StreakRepo manages per-child streak state.
type StreakRepo interface {
	Get(ctx context.Context, childID string) (*StreakState, error)
	Put(ctx context.Context, s StreakState) error
}

// AchievementState is a child's progress toward one achievement.
type AchievementState struct {
	ChildID       string
	AchievementID string
	Progress      int
	MaxProgress   int
	UnlockedAt    *time.Time
}

// AchievementRepo manages achievement progress keyed by
// (child, achievement). Upserts never decrease progress and never
// clear unlocked_at.
type AchievementRepo interface {
	Get(ctx context.Context, childID, achievementID string) (*AchievementState, error)
	List(ctx context.Context, childID string) ([]AchievementState, error)
	Upsert(ctx context.Context, a AchievementState) error
}
