package progress

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/session"
)

// AffinityChallengeBonus is the mentor affinity awarded on challenge success.
const AffinityChallengeBonus = 25

// FailedWrite retains a persistence failure for a future retry pass.
// Analytics failures are not retained; they are logged and dropped.
type FailedWrite struct {
	Op  string
	Err error
	At  time.Time
}

// Reporter is the single write path from a session to the external store.
// Write failures never block a learner's forward progress: they are logged,
// retained on the Reporter, and the phase transition proceeds.
type Reporter struct {
	store  Store
	log    *zap.Logger
	failed []FailedWrite
}

// NewReporter wraps a store. A nil logger is replaced with a no-op logger.
func NewReporter(store Store, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{store: store, log: log}
}

// ReadingDone reports a completed reading section: progress percentage and,
// at 100%, the completion flag.
func (r *Reporter) ReadingDone(ctx context.Context, contentID string, completedSections, totalSections int) error {
	pct := session.ProgressPercent(completedSections, totalSections)
	completed := pct == 100
	update := Update{
		Completed:          &completed,
		ProgressPercentage: &pct,
	}
	if err := r.store.UpdateProgress(ctx, contentID, update); err != nil {
		r.retain("update-progress", err)
		return err
	}
	return nil
}

// QuizDone reports a finished (non-game-over) quiz to the score store.
func (r *Reporter) QuizDone(ctx context.Context, subject catalog.Subject, score, totalQuestions, timeSpentSecs int) error {
	if err := r.store.SaveQuizScore(ctx, subject, score, totalQuestions, timeSpentSecs); err != nil {
		r.retain("save-quiz-score", err)
		return err
	}
	return nil
}

// ChallengeDone grants the content item's badge and credits the mentor
// affinity bonus. The grant is idempotent at the storage layer.
func (r *Reporter) ChallengeDone(ctx context.Context, grant BadgeGrant, mentorID string) error {
	var firstErr error
	if err := r.store.AwardBadge(ctx, grant); err != nil {
		r.retain("award-badge", err)
		firstErr = err
	}
	if mentorID != "" {
		if err := r.store.UpdateAffinity(ctx, mentorID, AffinityChallengeBonus); err != nil {
			r.retain("update-affinity", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// SessionDone reports the cumulative session time at Results entry.
func (r *Reporter) SessionDone(ctx context.Context, contentID string, timeSpentSecs int) error {
	update := Update{TimeSpentSecs: &timeSpentSecs}
	if err := r.store.UpdateProgress(ctx, contentID, update); err != nil {
		r.retain("update-progress", err)
		return err
	}
	return nil
}

// ActivityDone writes one practice result to the analytics sink.
// Best-effort: failures are logged and dropped, never retained.
func (r *Reporter) ActivityDone(ctx context.Context, contentID string, subject catalog.Subject, rec ActivityRecord) {
	if err := r.store.RecordActivityResult(ctx, contentID, subject, rec); err != nil {
		r.log.Warn("activity result write failed",
			zap.String("content_id", contentID),
			zap.String("activity_type", rec.ActivityType),
			zap.Error(err),
		)
	}
}

// Failures returns writes retained for a future retry pass.
func (r *Reporter) Failures() []FailedWrite {
	return r.failed
}

func (r *Reporter) retain(op string, err error) {
	r.log.Warn("persistence write failed",
		zap.String("op", op),
		zap.Error(err),
	)
	r.failed = append(r.failed, FailedWrite{Op: op, Err: err, At: time.Now()})
}
