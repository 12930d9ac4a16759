package session

import (
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// Phase is the current phase of the learning session state machine.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseReading
	PhaseCheckpoint
	PhasePractice
	PhaseQuiz
	PhaseChallenge
	PhaseResults
)

// String returns the phase name for display and event records.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseReading:
		return "reading"
	case PhaseCheckpoint:
		return "checkpoint"
	case PhasePractice:
		return "practice"
	case PhaseQuiz:
		return "quiz"
	case PhaseChallenge:
		return "challenge"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// QuizOutcome carries the quiz phase result into the session summary.
type QuizOutcome struct {
	Score          int
	CorrectAnswers int
	TotalQuestions int
	DurationSecs   int
	GameOver       bool
}

// ChallengeOutcome carries the challenge phase result.
type ChallengeOutcome struct {
	Correct bool
	XP      int
}

// State is the mutable core of one learning session. It is owned exclusively
// by the session controller; activity plugins and the quiz sub-state receive
// copies of the data they need and return results through completion events.
type State struct {
	SessionID string
	Content   *catalog.ContentItem
	Sections  []Section

	Phase        Phase
	SectionIndex int          // index into Sections while in Reading/Checkpoint
	Completed    map[int]bool // completed section indices (membership only)

	// tail is the ordered list of phases after the reading sequence,
	// computed once at session start and never re-derived.
	tail []Phase

	// afterCheckpoint is where a pending mentor checkpoint resumes to.
	afterCheckpoint Phase

	XP          int // accumulated XP, never decreases
	ReadingXP   int
	PracticeXP  int
	QuizXP      int
	ChallengeXP int

	StartTime    time.Time
	SectionStart time.Time

	Quiz      *QuizOutcome
	Challenge *ChallengeOutcome

	// BadgeEarned is set when the challenge grants the item's badge.
	BadgeEarned bool
}

// NewState creates a session over a content item, in the Intro phase.
// The section list and the post-reading phase plan are both fixed here.
func NewState(content *catalog.ContentItem, sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Content:   content,
		Sections:  SplitSections(content.Text),
		Phase:     PhaseIntro,
		Completed: make(map[int]bool),
		tail:      buildPhasePlan(content),
	}
}

// buildPhasePlan computes the ordered list of phases that follow the reading
// sequence. Practice, Quiz and Challenge are each optional per content item;
// Results is always terminal.
func buildPhasePlan(content *catalog.ContentItem) []Phase {
	var plan []Phase
	if content.HasPractice() {
		plan = append(plan, PhasePractice)
	}
	if content.HasQuiz() {
		plan = append(plan, PhaseQuiz)
	}
	if content.HasChallenge() {
		plan = append(plan, PhaseChallenge)
	}
	return append(plan, PhaseResults)
}

// PhasePlan returns a copy of the remaining post-reading phases.
func (s *State) PhasePlan() []Phase {
	out := make([]Phase, len(s.tail))
	copy(out, s.tail)
	return out
}

// CurrentSection returns the active section, or a zero Section when the
// index is out of the reading range.
func (s *State) CurrentSection() Section {
	if s.SectionIndex < 0 || s.SectionIndex >= len(s.Sections) {
		return Section{}
	}
	return s.Sections[s.SectionIndex]
}

// CompletedCount returns how many sections have been read.
func (s *State) CompletedCount() int {
	return len(s.Completed)
}

// addXP accumulates experience points. Negative deltas are ignored so the
// total never decreases within a session.
func (s *State) addXP(delta int) {
	if delta > 0 {
		s.XP += delta
	}
}
