// Package quiz implements the hearts-based quiz state machine: a finite
// budget of allowed wrong answers before a terminal game-over state, with
// explicit restart and exit actions.
package quiz

import "github.com/joaovmb/trilha/internal/catalog"

const (
	// StartingHearts is the wrong-answer budget per quiz attempt.
	StartingHearts = 3

	// QuestionXP is the fixed per-question reward for a correct answer.
	QuestionXP = 10

	// unanswered marks a question with no recorded selection.
	unanswered = -1
)

// Result carries the terminal outcome of a finished quiz attempt.
type Result struct {
	Score          int
	CorrectAnswers int
	TotalQuestions int
}

// Attempt is one entry into the quiz phase. It is discarded on exit unless
// restarted, which resets it entirely.
type Attempt struct {
	questions []catalog.QuizQuestion
	answers   []int
	index     int
	hearts    int
	score     int

	// unlimited disables the hearts model (the degenerate sampled-quiz
	// variant); game over can never trigger.
	unlimited bool
}

// NewAttempt starts a fresh hearts-based attempt over the given questions.
func NewAttempt(questions []catalog.QuizQuestion) *Attempt {
	a := &Attempt{
		questions: questions,
		unlimited: false,
	}
	a.Restart()
	return a
}

// NewUnlimitedAttempt starts an attempt without the hearts model.
func NewUnlimitedAttempt(questions []catalog.QuizQuestion) *Attempt {
	a := &Attempt{
		questions: questions,
		unlimited: true,
	}
	a.Restart()
	return a
}

// Restart resets hearts, score, all answers and the question index.
// It is also valid from game over.
func (a *Attempt) Restart() {
	a.answers = make([]int, len(a.questions))
	for i := range a.answers {
		a.answers[i] = unanswered
	}
	a.index = 0
	a.hearts = StartingHearts
	a.score = 0
}

// Index returns the current question index.
func (a *Attempt) Index() int { return a.index }

// Hearts returns the remaining hearts.
func (a *Attempt) Hearts() int { return a.hearts }

// Score returns the running score.
func (a *Attempt) Score() int { return a.score }

// Total returns the number of questions.
func (a *Attempt) Total() int { return len(a.questions) }

// Current returns the active question.
func (a *Attempt) Current() catalog.QuizQuestion {
	if a.index < 0 || a.index >= len(a.questions) {
		return catalog.QuizQuestion{}
	}
	return a.questions[a.index]
}

// AnswerAt returns the recorded selection for question i, or -1.
func (a *Attempt) AnswerAt(i int) int {
	if i < 0 || i >= len(a.answers) {
		return unanswered
	}
	return a.answers[i]
}

// CurrentAnswered reports whether the active question has a recorded answer.
func (a *Attempt) CurrentAnswered() bool {
	return a.AnswerAt(a.index) != unanswered
}

// Unlimited reports whether the hearts model is disabled.
func (a *Attempt) Unlimited() bool { return a.unlimited }

// GameOver reports whether the hearts budget is exhausted. It holds exactly
// when hearts reaches zero; the only transitions out are Restart or exit.
func (a *Attempt) GameOver() bool {
	return !a.unlimited && a.hearts == 0
}

// Answer records a selection for the current question. A question answers
// at most once: re-selecting an already-answered question changes neither
// hearts nor score. Returns whether the selection was registered and, if
// so, whether it was correct.
func (a *Attempt) Answer(choice int) (registered, correct bool) {
	if a.GameOver() {
		return false, false
	}
	if a.index < 0 || a.index >= len(a.questions) {
		return false, false
	}
	if a.answers[a.index] != unanswered {
		return false, false
	}
	q := a.questions[a.index]
	if choice < 0 || choice >= len(q.Options) {
		return false, false
	}

	a.answers[a.index] = choice
	if choice == q.CorrectIndex {
		a.score += QuestionXP
		return true, true
	}
	if !a.unlimited && a.hearts > 0 {
		a.hearts--
	}
	return true, false
}

// Next advances to the following question. It is permitted only once the
// current question has a recorded answer, and never from game over.
func (a *Attempt) Next() bool {
	if a.GameOver() || !a.CurrentAnswered() {
		return false
	}
	if a.index+1 >= len(a.questions) {
		return false
	}
	a.index++
	return true
}

// Prev navigates backward. Always allowed; revisiting never re-triggers
// heart loss because answered questions cannot be re-answered.
func (a *Attempt) Prev() bool {
	if a.index <= 0 {
		return false
	}
	a.index--
	return true
}

// OnLastQuestion reports whether the active question is the final one.
func (a *Attempt) OnLastQuestion() bool {
	return a.index == len(a.questions)-1
}

// Finished reports whether every question has a recorded answer without
// game over having triggered.
func (a *Attempt) Finished() bool {
	if a.GameOver() {
		return false
	}
	for _, ans := range a.answers {
		if ans == unanswered {
			return false
		}
	}
	return len(a.answers) > 0
}

// CorrectCount returns how many recorded answers are correct.
func (a *Attempt) CorrectCount() int {
	count := 0
	for i, ans := range a.answers {
		if ans != unanswered && ans == a.questions[i].CorrectIndex {
			count++
		}
	}
	return count
}

// Result builds the terminal outcome. Valid once Finished.
func (a *Attempt) Result() Result {
	return Result{
		Score:          a.score,
		CorrectAnswers: a.CorrectCount(),
		TotalQuestions: len(a.questions),
	}
}
