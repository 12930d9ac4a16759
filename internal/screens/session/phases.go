package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/joaovmb/trilha/internal/activity"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/quiz"
	"github.com/joaovmb/trilha/internal/screen"
	sess "github.com/joaovmb/trilha/internal/session"
	"github.com/joaovmb/trilha/internal/ui/components"
)

func (s *SessionScreen) currentPlugin() activity.Plugin {
	if s.activityIdx < 0 || s.activityIdx >= len(s.plugins) {
		return nil
	}
	return s.plugins[s.activityIdx]
}

func (s *SessionScreen) currentFillBlank() *activity.FillBlank {
	fb, _ := s.currentPlugin().(*activity.FillBlank)
	return fb
}

// initActivityUI resets per-plugin cursor state when a new activity starts.
func (s *SessionScreen) initActivityUI() tea.Cmd {
	s.actDone = false
	s.ddCursor = 0
	s.fbQuestion = 0
	s.fbBlank = 0
	if fb := s.currentFillBlank(); fb != nil {
		s.fbInput = components.NewTextInput("Digite a resposta...", false, 40)
		s.fbInput.Model.SetValue(fb.InputAt(0, 0))
		return s.fbInput.Init()
	}
	return nil
}

func (s *SessionScreen) handlePracticeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		s.showQuitConfirm = true
		return s, nil
	}

	if s.actDone {
		if key == "enter" || key == " " || key == "space" {
			return s.nextActivity()
		}
		return s, nil
	}

	p := s.currentPlugin()
	if p == nil {
		return s.finishPractice()
	}

	switch p := p.(type) {
	case *activity.Flashcards:
		return s.handleFlashcardKey(p, key)
	case *activity.DragDrop:
		return s.handleDragDropKey(p, key)
	case *activity.FillBlank:
		return s.handleFillBlankKey(p, msg)
	}
	return s, nil
}

func (s *SessionScreen) handleFlashcardKey(fc *activity.Flashcards, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter", " ", "space":
		if !fc.Revealed() {
			fc.Reveal()
		}
	case "1", "s", "S":
		if fc.Revealed() {
			fc.Mark(true)
		}
	case "2", "n", "N":
		if fc.Revealed() {
			fc.Mark(false)
		}
	case "left":
		fc.Prev()
	}
	if fc.Completed() {
		return s.completeActivity(fc)
	}
	return s, nil
}

func (s *SessionScreen) handleDragDropKey(dd *activity.DragDrop, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.ddCursor > 0 {
			s.ddCursor--
		}
	case "down", "j":
		if s.ddCursor < len(dd.Items())-1 {
			s.ddCursor++
		}
	case "r", "R":
		dd.Reset()
	case "enter":
		if dd.AllPlaced() {
			dd.Submit()
			return s.completeActivity(dd)
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(dd.Categories()) {
			if dd.Place(s.ddCursor, n-1) && s.ddCursor < len(dd.Items())-1 {
				s.ddCursor++
			}
		}
	}
	return s, nil
}

func (s *SessionScreen) handleFillBlankKey(fb *activity.FillBlank, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.storeBlank(fb)
		s.moveBlank(fb, 1)
		return s, nil
	case "shift+tab", "up":
		s.storeBlank(fb)
		s.moveBlank(fb, -1)
		return s, nil
	case "enter":
		s.storeBlank(fb)
		if fb.AllFilled() {
			fb.Submit()
			return s.completeActivity(fb)
		}
		s.moveBlank(fb, 1)
		return s, nil
	}
	var cmd tea.Cmd
	s.fbInput, cmd = s.fbInput.Update(msg)
	return s, cmd
}

func (s *SessionScreen) storeBlank(fb *activity.FillBlank) {
	fb.SetInput(s.fbQuestion, s.fbBlank, strings.TrimSpace(s.fbInput.Value()))
}

// moveBlank walks to the next or previous blank across questions, wrapping
// at the ends, and loads its stored value into the input.
func (s *SessionScreen) moveBlank(fb *activity.FillBlank, dir int) {
	qs := fb.Questions()
	if len(qs) == 0 {
		return
	}
	q, b := s.fbQuestion, s.fbBlank+dir
	for b < 0 || b >= len(qs[q].Blanks) {
		q += dir
		if q < 0 {
			q = len(qs) - 1
		} else if q >= len(qs) {
			q = 0
		}
		if dir >= 0 {
			b = 0
		} else {
			b = len(qs[q].Blanks) - 1
		}
	}
	s.fbQuestion, s.fbBlank = q, b
	s.fbInput = components.NewTextInput("Digite a resposta...", false, 40)
	s.fbInput.Model.SetValue(fb.InputAt(q, b))
}

// completeActivity shows the outcome panel for a finished plugin and logs
// the result. The learner confirms before the next activity starts.
func (s *SessionScreen) completeActivity(p activity.Plugin) (screen.Screen, tea.Cmd) {
	now := time.Now()
	s.actOutcome = p.Outcome(now)
	s.practiceXP += s.actOutcome.Score
	s.actDone = true

	rec := progress.ActivityRecord{
		ActivityType:   string(s.actOutcome.Kind),
		Score:          s.actOutcome.Score,
		TotalQuestions: s.actOutcome.Units,
		TimeSpentSecs:  s.actOutcome.SecondsSpent,
	}
	reporter := s.reporter
	contentID := s.item.ID
	subject := s.item.Subject
	return s, func() tea.Msg {
		if reporter != nil {
			reporter.ActivityDone(context.Background(), contentID, subject, rec)
		}
		return nil
	}
}

func (s *SessionScreen) nextActivity() (screen.Screen, tea.Cmd) {
	s.activityIdx++
	if s.activityIdx >= len(s.plugins) {
		return s.finishPractice()
	}
	return s, s.initActivityUI()
}

func (s *SessionScreen) finishPractice() (screen.Screen, tea.Cmd) {
	sess.PracticeDone(s.st, s.practiceXP, time.Now())
	return s, s.enterPhase()
}

func (s *SessionScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	a := s.attempt
	if a == nil {
		return s, nil
	}

	if a.GameOver() {
		switch key {
		case "r", "R":
			a.Restart()
			s.quizCursor = 0
		case "enter", "esc":
			return s.finishQuiz(true)
		}
		return s, nil
	}

	if key == "esc" {
		s.showQuitConfirm = true
		return s, nil
	}

	q := a.Current()

	if a.CurrentAnswered() {
		switch key {
		case "enter", " ", "space":
			if a.OnLastQuestion() && a.Finished() {
				return s.finishQuiz(false)
			}
			if a.Next() {
				s.quizCursor = answerCursor(a)
			}
		case "left", "h":
			if a.Prev() {
				s.quizCursor = answerCursor(a)
			}
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.quizCursor > 0 {
			s.quizCursor--
		}
	case "down", "j":
		if s.quizCursor < len(q.Options)-1 {
			s.quizCursor++
		}
	case "enter", " ", "space":
		a.Answer(s.quizCursor)
	case "left", "h":
		if a.Prev() {
			s.quizCursor = answerCursor(a)
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(q.Options) {
			s.quizCursor = n - 1
			a.Answer(s.quizCursor)
		}
	}
	return s, nil
}

// answerCursor restores the cursor to the recorded answer when revisiting a
// question, or the first option when it is still open.
func answerCursor(a *quiz.Attempt) int {
	if c := a.AnswerAt(a.Index()); c >= 0 {
		return c
	}
	return 0
}

func (s *SessionScreen) finishQuiz(gameOver bool) (screen.Screen, tea.Cmd) {
	a := s.attempt
	duration := int(time.Since(s.quizStart).Seconds())
	outcome := sess.QuizOutcome{
		Score:          a.Score(),
		CorrectAnswers: a.CorrectCount(),
		TotalQuestions: a.Total(),
		DurationSecs:   duration,
		GameOver:       gameOver,
	}
	s.gameOver = gameOver
	sess.QuizDone(s.st, outcome, time.Now())

	if gameOver {
		// Nothing to save; the next phase starts right away.
		return s, s.enterPhase()
	}
	s.inflight = true
	// The next phase starts in the quizSavedMsg handler.
	return s, s.saveQuiz(quiz.Result{
		Score:          outcome.Score,
		CorrectAnswers: outcome.CorrectAnswers,
		TotalQuestions: outcome.TotalQuestions,
	}, duration)
}

func (s *SessionScreen) handleChallengeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "enter":
		answer := strings.TrimSpace(s.chInput.Value())
		if answer == "" {
			return s, nil
		}
		sess.ChallengeDone(s.st, answer, time.Now())

		if s.st.BadgeEarned && s.item.Challenge != nil {
			s.inflight = true
			// Results entry waits in the challengeReportedMsg handler.
			return s, s.reportChallenge()
		}
		return s, s.enterPhase()
	}
	var cmd tea.Cmd
	s.chInput, cmd = s.chInput.Update(msg)
	return s, cmd
}
