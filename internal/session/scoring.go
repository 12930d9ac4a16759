package session

import (
	"strings"
	"unicode/utf8"
)

const (
	// sectionXPMin and sectionXPMax bound the XP earned per reading section.
	// Time-on-task is rewarded, but stalling indefinitely is not.
	sectionXPMin = 10
	sectionXPMax = 25

	// UnitXP is the reward per fully-correct practice unit: a known
	// flashcard, a correctly categorized item, a correctly filled blank,
	// or a correct quiz answer.
	UnitXP = 10

	// challengeMinAnswerLen is the minimum answer length (in characters,
	// trimmed) for an open challenge submission to count as an engaged
	// attempt.
	challengeMinAnswerLen = 10
)

// SectionXP converts elapsed reading seconds into experience points,
// clamped to [10, 25].
func SectionXP(elapsedSecs int) int {
	if elapsedSecs < sectionXPMin {
		return sectionXPMin
	}
	if elapsedSecs > sectionXPMax {
		return sectionXPMax
	}
	return elapsedSecs
}

// JudgeChallenge reports whether an open-ended challenge answer counts as
// correct. Textual answers are judged solely by a minimum-length heuristic:
// a non-trivial answer is accepted as an engaged attempt.
func JudgeChallenge(answer string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(answer)) >= challengeMinAnswerLen
}

// ChallengeXP returns the XP for a challenge submission: the declared point
// value when the answer is judged correct, half that value otherwise.
func ChallengeXP(points int, answer string) int {
	if JudgeChallenge(answer) {
		return points
	}
	return points / 2
}
