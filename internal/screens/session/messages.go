package session

import "time"

// tickMsg drives the reading timer. The generation number guards against
// stale ticks from a previous section or an abandoned session.
type tickMsg struct {
	gen int
	at  time.Time
}

// readingReportedMsg confirms the async progress write for a section.
type readingReportedMsg struct {
	err error
}

// quizSavedMsg confirms the async quiz score write.
type quizSavedMsg struct {
	err error
}

// challengeReportedMsg confirms the async badge grant and affinity credit.
type challengeReportedMsg struct {
	err error
}

// sessionSavedMsg confirms the session ledger append at results entry.
type sessionSavedMsg struct {
	err error
}
