package store

import (
	"context"
	"fmt"
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
)

// Badge is one earned badge row.
type Badge struct {
	ID            int64
	BadgeID       string
	Name          string
	Description   string
	Icon          string
	Subject       catalog.Subject
	ContentID     string
	PointsAwarded int
	EarnedAt      time.Time
}

// AwardBadge records a badge grant. Regranting the same badge for the same
// content is a no-op, so replaying a challenge never duplicates the award.
func (r *LearnerRepo) AwardBadge(ctx context.Context, grant progress.BadgeGrant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO badges (badge_id, name, description, icon, subject, content_id, points_awarded)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		grant.BadgeID, grant.Name, grant.Description, grant.Icon,
		string(grant.Subject), grant.ContentID, grant.PointsAwarded,
	)
	if err != nil {
		return fmt.Errorf("award badge: %w", err)
	}
	return nil
}

// AllBadges returns every earned badge, newest first.
func (r *LearnerRepo) AllBadges(ctx context.Context) ([]Badge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, badge_id, name, description, icon, subject, content_id, points_awarded, earned_at
		FROM badges ORDER BY earned_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	defer rows.Close()

	var out []Badge
	for rows.Next() {
		var b Badge
		var subject string
		if err := rows.Scan(&b.ID, &b.BadgeID, &b.Name, &b.Description, &b.Icon, &subject, &b.ContentID, &b.PointsAwarded, &b.EarnedAt); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		b.Subject = catalog.Subject(subject)
		out = append(out, b)
	}
	return out, rows.Err()
}

// HasBadge reports whether the learner already earned badgeID for contentID.
func (r *LearnerRepo) HasBadge(ctx context.Context, badgeID, contentID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM badges WHERE badge_id = ? AND content_id = ?`,
		badgeID, contentID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query badge: %w", err)
	}
	return n > 0, nil
}
