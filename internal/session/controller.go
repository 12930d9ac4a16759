package session

import (
	"math"
	"time"
)

// The controller reducers below are the only way session state advances.
// Each takes the current state plus a completion event from the active
// component and moves the machine forward. The controller never rewinds
// phases; backward navigation lives inside the quiz and activity components.

// Start exits the Intro phase, timestamping the session and the first
// reading section. It is a no-op outside Intro.
func Start(s *State, now time.Time) {
	if s.Phase != PhaseIntro {
		return
	}
	s.StartTime = now
	s.SectionStart = now
	s.SectionIndex = 0
	s.Phase = PhaseReading
}

// SectionDone records a completed reading section: accumulates XP from
// elapsed time, marks the section read, and advances either to a mentor
// checkpoint or directly onward. Returns the XP earned for the section.
func SectionDone(s *State, elapsedSecs int, now time.Time) int {
	if s.Phase != PhaseReading {
		return 0
	}

	s.Completed[s.SectionIndex] = true
	xp := SectionXP(elapsedSecs)
	s.ReadingXP += xp
	s.addXP(xp)

	next := s.afterReading()
	if CheckpointDue(s.CompletedCount(), len(s.Sections)) {
		s.afterCheckpoint = next
		s.Phase = PhaseCheckpoint
	} else {
		s.enterPhase(next, now)
	}
	return xp
}

// CheckpointContinue resumes from a mentor checkpoint. Exactly one continue
// action is required; the checkpoint itself performs no scoring.
func CheckpointContinue(s *State, now time.Time) {
	if s.Phase != PhaseCheckpoint {
		return
	}
	s.enterPhase(s.afterCheckpoint, now)
}

// PracticeDone records the aggregated XP of all completed activity plugins
// and advances past the practice phase.
func PracticeDone(s *State, totalXP int, now time.Time) {
	if s.Phase != PhasePractice {
		return
	}
	s.PracticeXP = totalXP
	s.addXP(totalXP)
	s.enterPhase(s.popTail(), now)
}

// QuizDone records the quiz outcome and advances. The transition happens
// only on an explicit terminal event: all questions answered, or game over
// followed by an exit choice.
func QuizDone(s *State, outcome QuizOutcome, now time.Time) {
	if s.Phase != PhaseQuiz {
		return
	}
	s.Quiz = &outcome
	if !outcome.GameOver {
		s.QuizXP = outcome.Score
		s.addXP(outcome.Score)
	}
	s.enterPhase(s.popTail(), now)
}

// ChallengeDone records the judged challenge submission and advances.
func ChallengeDone(s *State, answer string, now time.Time) ChallengeOutcome {
	if s.Phase != PhaseChallenge {
		return ChallengeOutcome{}
	}
	points := 0
	if s.Content.Challenge != nil {
		points = s.Content.Challenge.Points
	}
	outcome := ChallengeOutcome{
		Correct: JudgeChallenge(answer),
		XP:      ChallengeXP(points, answer),
	}
	s.Challenge = &outcome
	s.ChallengeXP = outcome.XP
	s.addXP(outcome.XP)
	if outcome.Correct {
		s.BadgeEarned = s.Content.HasChallenge()
	}
	s.enterPhase(s.popTail(), now)
	return outcome
}

// afterReading returns the phase that follows the current reading section:
// the next section, or the first tail phase when none remain.
func (s *State) afterReading() Phase {
	if s.SectionIndex+1 < len(s.Sections) {
		return PhaseReading
	}
	return s.popTail()
}

// popTail consumes the next post-reading phase from the fixed plan.
func (s *State) popTail() Phase {
	if len(s.tail) == 0 {
		return PhaseResults
	}
	next := s.tail[0]
	s.tail = s.tail[1:]
	return next
}

// enterPhase performs the bookkeeping for entering a phase.
func (s *State) enterPhase(p Phase, now time.Time) {
	if p == PhaseReading {
		s.SectionIndex++
		s.SectionStart = now
	}
	s.Phase = p
}

// ProgressPercent returns the reading progress percentage reported after a
// section completes: round(100 * completed / total). It is monotonically
// non-decreasing across consecutive reports within one session.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
