// Package progress translates session outcomes into calls against the
// external persistence boundary: progress records, quiz scores, badge
// grants, mentor affinity and activity analytics.
package progress

import (
	"context"

	"github.com/joaovmb/trilha/internal/catalog"
)

// Update is a partial progress record. Nil fields are left untouched by the
// store; set fields merge with prior state.
type Update struct {
	Completed          *bool
	ProgressPercentage *int // 0..100, monotonically non-decreasing per session
	TimeSpentSecs      *int
}

// BadgeGrant describes one badge award. Grants are idempotent per
// (badge id, content id): repeated grants for an already-held badge are a
// no-op at the storage layer.
type BadgeGrant struct {
	BadgeID       string
	Name          string
	Description   string
	Icon          string
	Subject       catalog.Subject
	ContentID     string
	PointsAwarded int
}

// ActivityRecord is one practice activity result for the analytics sink.
type ActivityRecord struct {
	ActivityType   string
	Score          int
	TotalQuestions int
	TimeSpentSecs  int
}

// ProgressStore persists per-content progress records.
type ProgressStore interface {
	// UpdateProgress merges a partial update into the record for contentID.
	UpdateProgress(ctx context.Context, contentID string, update Update) error
}

// ScoreStore appends quiz scores.
type ScoreStore interface {
	SaveQuizScore(ctx context.Context, subject catalog.Subject, score, totalQuestions, timeSpentSecs int) error
}

// BadgeStore grants badges idempotently.
type BadgeStore interface {
	AwardBadge(ctx context.Context, grant BadgeGrant) error
}

// AffinityStore tracks mentor affinity experience. Deltas are additive and
// never reset by this subsystem.
type AffinityStore interface {
	UpdateAffinity(ctx context.Context, mentorID string, xpDelta int) error
}

// ActivityStore is the append-only analytics sink. Failures here must not
// block phase progression.
type ActivityStore interface {
	RecordActivityResult(ctx context.Context, contentID string, subject catalog.Subject, rec ActivityRecord) error
}

// Store is the full persistence boundary the Reporter writes through.
type Store interface {
	ProgressStore
	ScoreStore
	BadgeStore
	AffinityStore
	ActivityStore
}
