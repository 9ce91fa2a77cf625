package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, data SessionResultData) error {
	samples, err := json.Marshal(data.ReactionSamples)
	if err != nil {
		return fmt.Errorf("marshal samples: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO session_results
	(session_id, child_id, variant, level_id, score, completion_ms, retry_count,
	 success_rate, reaction_samples, joy, frustration, engagement, focus, overall, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		data.SessionID, data.ChildID, data.Variant, data.LevelID, data.Score,
		data.CompletionMs, data.RetryCount, data.SuccessRate, string(samples),
		data.Joy, data.Frustration, data.Engagement, data.Focus, data.Overall,
		data.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, childID string, limit int) ([]SessionResultData, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT session_id, child_id, variant, level_id, score, completion_ms, retry_count,
       success_rate, reaction_samples, joy, frustration, engagement, focus, overall, finished_at
FROM session_results
WHERE child_id = ?
ORDER BY finished_at DESC, id DESC
LIMIT ?
`, childID, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []SessionResultData
	for rows.Next() {
		var d SessionResultData
		var samples string
		var finished string
		if err := rows.Scan(
			&d.SessionID, &d.ChildID, &d.Variant, &d.LevelID, &d.Score,
			&d.CompletionMs, &d.RetryCount, &d.SuccessRate, &samples,
			&d.Joy, &d.Frustration, &d.Engagement, &d.Focus, &d.Overall, &finished,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(samples), &d.ReactionSamples); err != nil {
			return nil, fmt.Errorf("unmarshal samples: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, finished); err == nil {
			d.FinishedAt = t
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

func (r *resultRepo) Count(ctx context.Context, childID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_results WHERE child_id = ?`, childID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

// emotionColumns whitelists queryable emotion columns; the column name
// is interpolated into SQL and must never come from user input.
var emotionColumns = map[string]bool{
	"joy": true, "frustration": true, "engagement": true, "focus": true, "overall": true,
}

func (r *resultRepo) CountWhere(ctx context.Context, childID, emotion string, threshold float64) (int, error) {
	if !emotionColumns[emotion] {
		return 0, fmt.Errorf("unknown emotion column %q", emotion)
	}
	var n int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM session_results WHERE child_id = ? AND %s >= ?`, emotion),
		childID, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count results by %s: %w", emotion, err)
	}
	return n, nil
}

func (r *resultRepo) DistinctVariants(ctx context.Context, childID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT variant) FROM session_results WHERE child_id = ?`, childID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count distinct variants: %w", err)
	}
	return n, nil
}
