package store

import (
	"context"
	"fmt"
	"time"
)

// Affinity is the accumulated bond with one mentor.
type Affinity struct {
	MentorID  string
	Points    int
	UpdatedAt time.Time
}

// UpdateAffinity adds xpDelta to the mentor's affinity, creating the row on
// first contact.
func (r *LearnerRepo) UpdateAffinity(ctx context.Context, mentorID string, xpDelta int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mentor_affinity (mentor_id, points, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (mentor_id) DO UPDATE SET
			points = points + excluded.points,
			updated_at = CURRENT_TIMESTAMP`,
		mentorID, xpDelta,
	)
	if err != nil {
		return fmt.Errorf("update affinity: %w", err)
	}
	return nil
}

// AllAffinities returns every mentor bond, strongest first.
func (r *LearnerRepo) AllAffinities(ctx context.Context) ([]Affinity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mentor_id, points, updated_at
		FROM mentor_affinity ORDER BY points DESC, mentor_id`)
	if err != nil {
		return nil, fmt.Errorf("query affinities: %w", err)
	}
	defer rows.Close()

	var out []Affinity
	for rows.Next() {
		var a Affinity
		if err := rows.Scan(&a.MentorID, &a.Points, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan affinity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
