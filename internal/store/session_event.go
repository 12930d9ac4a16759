package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Session event actions.
const (
	SessionStarted   = "started"
	SessionFinished  = "finished"
	SessionGameOver  = "game_over"
	SessionAbandoned = "abandoned"
)

// SessionEvent is one row in the session ledger.
type SessionEvent struct {
	ID           int64
	Sequence     int64
	SessionID    string
	ContentID    string
	Action       string
	XP           int
	DurationSecs int
	CreatedAt    time.Time
}

// SessionRepo appends and queries the session ledger that backs the
// history view.
type SessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Append records one session lifecycle event.
func (r *SessionRepo) Append(ctx context.Context, ev SessionEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_events (sequence, session_id, content_id, action, xp, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, ev.SessionID, ev.ContentID, ev.Action, ev.XP, ev.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

// Recent returns the newest session events, up to limit (0 = unlimited).
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]SessionEvent, error) {
	q := `SELECT id, sequence, session_id, content_id, action, xp, duration_secs, created_at
		FROM session_events ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var ev SessionEvent
		if err := rows.Scan(&ev.ID, &ev.Sequence, &ev.SessionID, &ev.ContentID, &ev.Action, &ev.XP, &ev.DurationSecs, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// TotalXP sums XP across all finished sessions.
func (r *SessionRepo) TotalXP(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(xp), 0) FROM session_events WHERE action IN (?, ?)`,
		SessionFinished, SessionGameOver,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum session xp: %w", err)
	}
	return total, nil
}
