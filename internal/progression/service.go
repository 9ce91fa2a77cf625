// Package progression turns finished sessions into streaks, daily
// challenge completion and achievement unlocks.
package progression

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/session"
	"github.com/atreya/mindplay/internal/store"
)

// Service consumes session results and answers daily-challenge queries.
// Calendar-day comparisons use local dates, never timestamp deltas.
type Service struct {
	catalog      *level.Catalog
	results      store.ResultRepo
	challenges   store.ChallengeRepo
	streaks      store.StreakRepo
	achievements store.AchievementRepo
	rng          *rand.Rand
	log          zerolog.Logger
}

// New creates a progression service. The rng drives daily-challenge
// selection only.
func New(catalog *level.Catalog, st *store.Store, rng *rand.Rand, log zerolog.Logger) *Service {
	return &Service{
		catalog:      catalog,
		results:      st.ResultRepo(),
		challenges:   st.ChallengeRepo(),
		streaks:      st.StreakRepo(),
		achievements: st.AchievementRepo(),
		rng:          rng,
		log:          log.With().Str("component", "progression").Logger(),
	}
}

// Update summarizes what one recorded session changed.
type Update struct {
	StreakDays         int
	StreakExtended     bool
	ChallengeCompleted bool
	Unlocked           []Achievement
}

// DateOf formats a timestamp as its local calendar day.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// DailyChallenge returns today's challenge for the child, creating one
// lazily on the first query of the day: a uniformly drawn variant, then
// a uniformly drawn level of that variant.
func (s *Service) DailyChallenge(ctx context.Context, childID string, now time.Time) (*store.DailyChallenge, error) {
	today := DateOf(now)
	existing, err := s.challenges.Get(ctx, childID, today)
	if err != nil {
		return nil, fmt.Errorf("load daily challenge: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	variant := level.Variants[s.rng.Intn(len(level.Variants))]
	levels := s.catalog.Levels(variant)
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels for variant %s", variant)
	}
	lvl := levels[s.rng.Intn(len(levels))]

	challenge := store.DailyChallenge{
		ChildID: childID,
		Date:    today,
		Variant: string(variant),
		LevelID: lvl.ID,
	}
	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, fmt.Errorf("store daily challenge: %w", err)
	}
	s.log.Info().Str("child", childID).Str("variant", string(variant)).
		Str("level", lvl.ID).Msg("assigned daily challenge")
	return &challenge, nil
}

// Stats returns the current streak length and total recorded sessions
// for display. A streak whose last play day is before yesterday has
// lapsed and reads as zero.
func (s *Service) Stats(ctx context.Context, childID string, now time.Time) (streakDays, totalGames int, err error) {
	total, err := s.results.Count(ctx, childID)
	if err != nil {
		return 0, 0, fmt.Errorf("count sessions: %w", err)
	}

	state, err := s.streaks.Get(ctx, childID)
	if err != nil {
		return 0, 0, fmt.Errorf("load streak: %w", err)
	}
	if state == nil {
		return 0, total, nil
	}
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))
	if state.LastPlayDate != today && state.LastPlayDate != yesterday {
		return 0, total, nil
	}
	return state.StreakDays, total, nil
}

// Achievements returns the stored achievement states for a child.
func (s *Service) Achievements(ctx context.Context, childID string) ([]store.AchievementState, error) {
	return s.achievements.List(ctx, childID)
}

// RecordSession persists a successful result and applies all
// progression rules. Persistence of the result row and the progression
// updates are independent: a failed write never corrupts the in-memory
// result.
func (s *Service) RecordSession(ctx context.Context, res *session.Result, now time.Time) (*Update, error) {
	if err := s.results.Append(ctx, toRow(res)); err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	up := &Update{}

	streak, err := s.updateStreak(ctx, res.ChildID, now)
	if err != nil {
		return up, err
	}
	up.StreakDays = streak.StreakDays
	up.StreakExtended = streak.StreakDays > 1

	completed, err := s.completeChallenge(ctx, res, now)
	if err != nil {
		return up, err
	}
	up.ChallengeCompleted = completed

	unlocked, err := s.updateAchievements(ctx, res, streak.StreakDays, now)
	if err != nil {
		return up, err
	}
	up.Unlocked = unlocked

	return up, nil
}

// updateStreak applies the calendar-day streak rules and advances
// lastPlayDate to today.
func (s *Service) updateStreak(ctx context.Context, childID string, now time.Time) (*store.StreakState, error) {
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	state, err := s.streaks.Get(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	if state == nil {
		state = &store.StreakState{ChildID: childID}
	}

	switch state.LastPlayDate {
	case today:
		// Already counted today.
	case yesterday:
		state.StreakDays++
	default:
		state.StreakDays = 1
	}
	state.LastPlayDate = today

	if err := s.streaks.Put(ctx, *state); err != nil {
		return nil, fmt.Errorf("store streak: %w", err)
	}
	return state, nil
}

// completeChallenge flips today's challenge to completed when the
// session matches it. The flip is one-way.
func (s *Service) completeChallenge(ctx context.Context, res *session.Result, now time.Time) (bool, error) {
	today := DateOf(now)
	challenge, err := s.challenges.Get(ctx, res.ChildID, today)
	if err != nil {
		return false, fmt.Errorf("load daily challenge: %w", err)
	}
	if challenge == nil || challenge.Completed {
		return false, nil
	}
	if challenge.Variant != string(res.Variant) || challenge.LevelID != res.LevelID {
		return false, nil
	}

	challenge.Completed = true
	if err := s.challenges.Put(ctx, *challenge); err != nil {
		return false, fmt.Errorf("store daily challenge: %w", err)
	}
	s.log.Info().Str("child", res.ChildID).Str("level", res.LevelID).Msg("daily challenge completed")
	return true, nil
}

// updateAchievements recomputes progress for every rule and upserts it.
// Stored progress is monotone; unlocks are detected by comparing the
// stored state before and after.
func (s *Service) updateAchievements(ctx context.Context, res *session.Result, streakDays int, now time.Time) ([]Achievement, error) {
	total, err := s.results.Count(ctx, res.ChildID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	focused, err := s.results.CountWhere(ctx, res.ChildID, "focus", focusThreshold)
	if err != nil {
		return nil, fmt.Errorf("count focused sessions: %w", err)
	}
	joyful, err := s.results.CountWhere(ctx, res.ChildID, "joy", joyThreshold)
	if err != nil {
		return nil, fmt.Errorf("count joyful sessions: %w", err)
	}
	variants, err := s.results.DistinctVariants(ctx, res.ChildID)
	if err != nil {
		return nil, fmt.Errorf("count variants: %w", err)
	}

	progressFor := map[string]int{
		"first-play":  min(total, 1),
		"ten-games":   total,
		"fifty-games": total,
		"laser-focus": focused,
		"sunny-days":  joyful,
		"week-streak": streakDays,
		"all-rounder": variants,
	}

	var unlocked []Achievement
	for _, def := range Achievements {
		progress := progressFor[def.ID]
		if progress > def.MaxProgress {
			progress = def.MaxProgress
		}

		before, err := s.achievements.Get(ctx, res.ChildID, def.ID)
		if err != nil {
			return nil, fmt.Errorf("load achievement %s: %w", def.ID, err)
		}
		wasUnlocked := before != nil && before.UnlockedAt != nil

		state := store.AchievementState{
			ChildID:       res.ChildID,
			AchievementID: def.ID,
			Progress:      progress,
			MaxProgress:   def.MaxProgress,
		}
		if progress >= def.MaxProgress {
			t := now
			state.UnlockedAt = &t
		}
		if err := s.achievements.Upsert(ctx, state); err != nil {
			return nil, fmt.Errorf("store achievement %s: %w", def.ID, err)
		}

		if !wasUnlocked && progress >= def.MaxProgress {
			unlocked = append(unlocked, def)
			s.log.Info().Str("child", res.ChildID).Str("achievement", def.ID).Msg("achievement unlocked")
		}
	}
	return unlocked, nil
}

func toRow(res *session.Result) store.SessionResultData {
	samples := make([]int64, len(res.Samples))
	for i, d := range res.Samples {
		samples[i] = d.Milliseconds()
	}
	return store.SessionResultData{
		SessionID:       res.SessionID,
		ChildID:         res.ChildID,
		Variant:         string(res.Variant),
		LevelID:         res.LevelID,
		Score:           res.Score,
		CompletionMs:    res.CompletionTime.Milliseconds(),
		RetryCount:      res.RetryCount,
		SuccessRate:     res.SuccessRate,
		ReactionSamples: samples,
		Joy:             res.Emotion.Joy,
		Frustration:     res.Emotion.Frustration,
		Engagement:      res.Emotion.Engagement,
		Focus:           res.Emotion.Focus,
		Overall:         res.Emotion.Overall,
		FinishedAt:      res.FinishedAt,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
