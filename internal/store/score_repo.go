package store

import (
	"context"
	"fmt"
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// QuizScore is one recorded quiz result.
type QuizScore struct {
	ID             int64
	Sequence       int64
	Subject        catalog.Subject
	Score          int
	TotalQuestions int
	TimeSpentSecs  int
	CreatedAt      time.Time
}

// SubjectTotals aggregates quiz performance for one subject.
type SubjectTotals struct {
	Subject        catalog.Subject
	Quizzes        int
	TotalScore     int
	TotalQuestions int
}

func (r *LearnerRepo) SaveQuizScore(ctx context.Context, subject catalog.Subject, score, totalQuestions, timeSpentSecs int) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_scores (sequence, subject, score, total_questions, time_spent_secs)
		VALUES (?, ?, ?, ?, ?)`,
		seqNum, string(subject), score, totalQuestions, timeSpentSecs,
	)
	if err != nil {
		return fmt.Errorf("save quiz score: %w", err)
	}
	return nil
}

// RecentScores returns the newest quiz scores, up to limit (0 = unlimited).
func (r *LearnerRepo) RecentScores(ctx context.Context, limit int) ([]QuizScore, error) {
	q := `SELECT id, sequence, subject, score, total_questions, time_spent_secs, created_at
		FROM quiz_scores ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var out []QuizScore
	for rows.Next() {
		var qs QuizScore
		var subject string
		if err := rows.Scan(&qs.ID, &qs.Sequence, &subject, &qs.Score, &qs.TotalQuestions, &qs.TimeSpentSecs, &qs.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz score: %w", err)
		}
		qs.Subject = catalog.Subject(subject)
		out = append(out, qs)
	}
	return out, rows.Err()
}

// TotalsBySubject aggregates all quiz scores grouped by subject.
func (r *LearnerRepo) TotalsBySubject(ctx context.Context) ([]SubjectTotals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT subject, COUNT(*), SUM(score), SUM(total_questions)
		FROM quiz_scores GROUP BY subject ORDER BY subject`)
	if err != nil {
		return nil, fmt.Errorf("query subject totals: %w", err)
	}
	defer rows.Close()

	var out []SubjectTotals
	for rows.Next() {
		var st SubjectTotals
		var subject string
		if err := rows.Scan(&subject, &st.Quizzes, &st.TotalScore, &st.TotalQuestions); err != nil {
			return nil, fmt.Errorf("scan subject totals: %w", err)
		}
		st.Subject = catalog.Subject(subject)
		out = append(out, st)
	}
	return out, rows.Err()
}
