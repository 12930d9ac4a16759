package store

import (
	"database/sql"

	"github.com/joaovmb/trilha/internal/progress"
)

// LearnerRepo persists everything a learner earns: reading progress, quiz
// scores, badges, mentor affinity, and practice results. It is the storage
// side of the session write path.
type LearnerRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var _ progress.Store = (*LearnerRepo)(nil)
