package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/joaovmb/trilha/internal/progress"
)

// ContentProgress is one row of per-content reading progress.
type ContentProgress struct {
	ContentID          string
	Completed          bool
	ProgressPercentage int
	TimeSpentSecs      int
	UpdatedAt          time.Time
}

// UpdateProgress merges a partial update into the learner's progress row for
// contentID. Unset fields are left untouched. Progress never regresses:
// the percentage only ratchets up, the completed flag is sticky, and time
// spent accumulates.
func (r *LearnerRepo) UpdateProgress(ctx context.Context, contentID string, u progress.Update) error {
	completed := 0
	if u.Completed != nil && *u.Completed {
		completed = 1
	}
	pct := 0
	if u.ProgressPercentage != nil {
		pct = *u.ProgressPercentage
	}
	secs := 0
	if u.TimeSpentSecs != nil {
		secs = *u.TimeSpentSecs
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO content_progress (content_id, completed, progress_percentage, time_spent_secs, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (content_id) DO UPDATE SET
			completed = MAX(completed, excluded.completed),
			progress_percentage = MAX(progress_percentage, excluded.progress_percentage),
			time_spent_secs = time_spent_secs + excluded.time_spent_secs,
			updated_at = CURRENT_TIMESTAMP`,
		contentID, completed, pct, secs,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// ProgressFor returns the progress row for contentID, or nil if the learner
// has never opened it.
func (r *LearnerRepo) ProgressFor(ctx context.Context, contentID string) (*ContentProgress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT content_id, completed, progress_percentage, time_spent_secs, updated_at
		FROM content_progress WHERE content_id = ?`, contentID)

	var cp ContentProgress
	err := row.Scan(&cp.ContentID, &cp.Completed, &cp.ProgressPercentage, &cp.TimeSpentSecs, &cp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return &cp, nil
}

// AllProgress returns every progress row, most recently touched first.
func (r *LearnerRepo) AllProgress(ctx context.Context) ([]ContentProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT content_id, completed, progress_percentage, time_spent_secs, updated_at
		FROM content_progress ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}
	defer rows.Close()

	var out []ContentProgress
	for rows.Next() {
		var cp ContentProgress
		if err := rows.Scan(&cp.ContentID, &cp.Completed, &cp.ProgressPercentage, &cp.TimeSpentSecs, &cp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}
