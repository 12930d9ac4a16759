package session

import "time"

// Summary holds the data displayed on the results screen and pushed to the
// progress store when the session finishes.
type Summary struct {
	ContentID    string
	Title        string
	Duration     time.Duration
	TotalXP      int
	ReadingXP    int
	PracticeXP   int
	QuizXP       int
	ChallengeXP  int
	SectionsRead int
	Sections     int
	Quiz         *QuizOutcome
	Challenge    *ChallengeOutcome
	BadgeEarned  bool
}

// BuildSummary creates a Summary from the session state at Results entry.
func BuildSummary(s *State, now time.Time) *Summary {
	var duration time.Duration
	if !s.StartTime.IsZero() {
		duration = now.Sub(s.StartTime)
	}
	return &Summary{
		ContentID:    s.Content.ID,
		Title:        s.Content.Title,
		Duration:     duration,
		TotalXP:      s.XP,
		ReadingXP:    s.ReadingXP,
		PracticeXP:   s.PracticeXP,
		QuizXP:       s.QuizXP,
		ChallengeXP:  s.ChallengeXP,
		SectionsRead: s.CompletedCount(),
		Sections:     len(s.Sections),
		Quiz:         s.Quiz,
		Challenge:    s.Challenge,
		BadgeEarned:  s.BadgeEarned,
	}
}
