package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type challengeRepo struct {
	db *sql.DB
}

func (r *challengeRepo) Get(ctx context.Context, childID, date string) (*DailyChallenge, error) {
	var c DailyChallenge
	var completed int
	err := r.db.QueryRowContext(ctx, `
SELECT child_id, date, variant, level_id, completed
FROM daily_challenges
WHERE child_id = ? AND date = ?
`, childID, date).Scan(&c.ChildID, &c.Date, &c.Variant, &c.LevelID, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query challenge: %w", err)
	}
	c.Completed = completed != 0
	return &c, nil
}

func (r *challengeRepo) Put(ctx context.Context, c DailyChallenge) error {
	completed := 0
	if c.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_challenges (child_id, date, variant, level_id, completed)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(child_id, date) DO UPDATE SET
	variant = excluded.variant,
	level_id = excluded.level_id,
	completed = excluded.completed
`, c.ChildID, c.Date, c.Variant, c.LevelID, completed)
	if err != nil {
		return fmt.Errorf("upsert challenge: %w", err)
	}
	return nil
}

type streakRepo struct {
	db *sql.DB
}

func (r *streakRepo) Get(ctx context.Context, childID string) (*StreakState, error) {
	var s StreakState
	err := r.db.QueryRowContext(ctx, `
SELECT child_id, streak_days, last_play_date
FROM streaks
WHERE child_id = ?
`, childID).Scan(&s.ChildID, &s.StreakDays, &s.LastPlayDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query streak: %w", err)
	}
	return &s, nil
}

func (r *streakRepo) Put(ctx context.Context, s StreakState) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO streaks (child_id, streak_days, last_play_date)
VALUES (?, ?, ?)
ON CONFLICT(child_id) DO UPDATE SET
	streak_days = excluded.streak_days,
	last_play_date = excluded.last_play_date
`, s.ChildID, s.StreakDays, s.LastPlayDate)
	if err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	return nil
}

type achievementRepo struct {
	db *sql.DB
}

func (r *achievementRepo) Get(ctx context.Context, childID, achievementID string) (*AchievementState, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT child_id, achievement_id, progress, max_progress, unlocked_at
FROM achievements
WHERE child_id = ? AND achievement_id = ?
`, childID, achievementID)
	a, err := scanAchievement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query achievement: %w", err)
	}
	return a, nil
}

func (r *achievementRepo) List(ctx context.Context, childID string) ([]AchievementState, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT child_id, achievement_id, progress, max_progress, unlocked_at
FROM achievements
WHERE child_id = ?
ORDER BY achievement_id
`, childID)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	var list []AchievementState
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

// Upsert writes the achievement row, clamping progress to never
// decrease and preserving an existing unlocked_at.
func (r *achievementRepo) Upsert(ctx context.Context, a AchievementState) error {
	var unlocked any
	if a.UnlockedAt != nil {
		unlocked = a.UnlockedAt.UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO achievements (child_id, achievement_id, progress, max_progress, unlocked_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(child_id, achievement_id) DO UPDATE SET
	progress = MAX(achievements.progress, excluded.progress),
	max_progress = excluded.max_progress,
	unlocked_at = COALESCE(achievements.unlocked_at, excluded.unlocked_at)
`, a.ChildID, a.AchievementID, a.Progress, a.MaxProgress, unlocked)
	if err != nil {
		return fmt.Errorf("upsert achievement: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAchievement(row rowScanner) (*AchievementState, error) {
	var a AchievementState
	var unlocked sql.NullString
	if err := row.Scan(&a.ChildID, &a.AchievementID, &a.Progress, &a.MaxProgress, &unlocked); err != nil {
		return nil, err
	}
	if unlocked.Valid {
		if t, err := time.Parse(time.RFC3339, unlocked.String); err == nil {
			a.UnlockedAt = &t
		}
	}
	return &a, nil
}
