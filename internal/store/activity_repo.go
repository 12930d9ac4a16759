package store

import (
	"context"
	"fmt"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
)

func (r *LearnerRepo) RecordActivityResult(ctx context.Context, contentID string, subject catalog.Subject, rec progress.ActivityRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO activity_results (sequence, content_id, subject, activity_type, score, total_questions, time_spent_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, contentID, string(subject), rec.ActivityType, rec.Score, rec.TotalQuestions, rec.TimeSpentSecs,
	)
	if err != nil {
		return fmt.Errorf("record activity result: %w", err)
	}
	return nil
}
