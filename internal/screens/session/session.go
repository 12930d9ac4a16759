package session

import (
	"context"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/activity"
	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/quiz"
	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	"github.com/joaovmb/trilha/internal/screens/summary"
	sess "github.com/joaovmb/trilha/internal/session"
	"github.com/joaovmb/trilha/internal/store"
	"github.com/joaovmb/trilha/internal/ui/components"
	"github.com/joaovmb/trilha/internal/ui/layout"
)

// SessionScreen runs one learning session over a content item, driving the
// phase machine in internal/session and persisting results through the
// progress reporter and the session ledger.
type SessionScreen struct {
	item     *catalog.ContentItem
	reporter *progress.Reporter
	sessions *store.SessionRepo
	log      *zap.Logger

	st *sess.State

	// tickGen invalidates in-flight ticks whenever the reading timer
	// restarts or the phase leaves Reading.
	tickGen int
	elapsed int

	// inflight is set while a store write is pending; phase-advancing
	// inputs are ignored until the completion message arrives so writes
	// never overlap.
	inflight bool

	plugins     []activity.Plugin
	activityIdx int
	practiceXP  int
	actDone     bool
	actOutcome  activity.Outcome
	ddCursor    int
	fbQuestion  int
	fbBlank     int
	fbInput     components.TextInput

	attempt    *quiz.Attempt
	quizCursor int
	quizStart  time.Time
	gameOver   bool

	chInput components.TextInput

	summary *sess.Summary

	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen over a content item.
func New(item *catalog.ContentItem, reporter *progress.Reporter, sessions *store.SessionRepo, logger *zap.Logger) *SessionScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionScreen{
		item:     item,
		reporter: reporter,
		sessions: sessions,
		log:      logger,
	}
	if item == nil || strings.TrimSpace(item.Text) == "" {
		s.errMsg = "Este conteúdo não está disponível no momento."
		return s
	}
	s.st = sess.NewState(item, uuid.New().String())
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.st == nil {
		return nil
	}
	return s.appendEvent(store.SessionStarted, 0, 0)
}

func (s *SessionScreen) Title() string {
	if s.item == nil {
		return "Sessão"
	}
	return s.item.Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "qualquer tecla", Description: "Voltar"}}
	}
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "S", Description: "Encerrar"},
			{Key: "N", Description: "Continuar"},
		}
	}
	switch s.st.Phase {
	case sess.PhaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Começar"},
			{Key: "Esc", Description: "Voltar"},
		}
	case sess.PhaseReading:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Próxima seção"},
			{Key: "Esc", Description: "Sair"},
		}
	case sess.PhaseCheckpoint:
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}}
	case sess.PhasePractice:
		return s.practiceKeyHints()
	case sess.PhaseQuiz:
		if s.attempt != nil && s.attempt.GameOver() {
			return []layout.KeyHint{
				{Key: "R", Description: "Tentar de novo"},
				{Key: "Enter", Description: "Encerrar quiz"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Alternativa"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Sair"},
		}
	case sess.PhaseChallenge:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enviar resposta"},
			{Key: "Esc", Description: "Sair"},
		}
	}
	return nil
}

func (s *SessionScreen) practiceKeyHints() []layout.KeyHint {
	if s.actDone {
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}}
	}
	p := s.currentPlugin()
	if p == nil {
		return nil
	}
	switch p.Kind() {
	case catalog.ActivityFlashcards:
		return []layout.KeyHint{
			{Key: "Espaço", Description: "Virar carta"},
			{Key: "1/2", Description: "Sabia / Não sabia"},
		}
	case catalog.ActivityDragDrop:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Item"},
			{Key: "1-9", Description: "Categoria"},
			{Key: "Enter", Description: "Conferir"},
		}
	case catalog.ActivityFillBlank:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Próxima lacuna"},
			{Key: "Enter", Description: "Conferir"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case readingReportedMsg:
		return s, s.phaseReported()

	case quizSavedMsg:
		return s, s.phaseReported()

	case challengeReportedMsg:
		return s, s.phaseReported()

	case sessionSavedMsg:
		return s.handleSessionSaved()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

// forwardToInput routes non-key messages (cursor blinks) to whichever text
// input is active.
func (s *SessionScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.st == nil || s.showQuitConfirm || s.inflight {
		return s, nil
	}
	var cmd tea.Cmd
	switch {
	case s.st.Phase == sess.PhaseChallenge:
		s.chInput, cmd = s.chInput.Update(msg)
	case s.st.Phase == sess.PhasePractice && !s.actDone && s.currentFillBlank() != nil:
		s.fbInput, cmd = s.fbInput.Update(msg)
	}
	return s, cmd
}

func (s *SessionScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.tickGen || s.inflight || s.st == nil || s.st.Phase != sess.PhaseReading {
		return s, nil
	}
	s.elapsed = int(msg.at.Sub(s.st.SectionStart).Seconds())
	if s.elapsed < 0 {
		s.elapsed = 0
	}
	return s, tickCmd(s.tickGen)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.st == nil {
		return s, nil
	}

	if s.showQuitConfirm {
		switch key {
		case "s", "S", "y", "Y":
			return s.abandon()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	// A write is pending; the next phase has not started yet. Only the
	// quit confirmation is reachable until the report lands.
	if s.inflight {
		if key == "esc" {
			s.showQuitConfirm = true
		}
		return s, nil
	}

	switch s.st.Phase {
	case sess.PhaseIntro:
		switch key {
		case "enter", " ", "space":
			sess.Start(s.st, time.Now())
			return s, s.enterPhase()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case sess.PhaseReading:
		switch key {
		case "esc":
			s.showQuitConfirm = true
		case "enter", " ", "space":
			return s.advanceSection()
		}

	case sess.PhaseCheckpoint:
		switch key {
		case "esc":
			s.showQuitConfirm = true
		case "enter", " ", "space":
			sess.CheckpointContinue(s.st, time.Now())
			return s, s.enterPhase()
		}

	case sess.PhasePractice:
		return s.handlePracticeKey(msg)

	case sess.PhaseQuiz:
		return s.handleQuizKey(key)

	case sess.PhaseChallenge:
		return s.handleChallengeKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) advanceSection() (screen.Screen, tea.Cmd) {
	if !sess.MayAdvance(s.st.CurrentSection(), s.elapsed) {
		return s, nil
	}
	sess.SectionDone(s.st, s.elapsed, time.Now())
	s.inflight = true
	s.tickGen++
	// The next phase, and its timer if it reads, starts in the
	// readingReportedMsg handler once the write has resolved.
	return s, s.reportReading()
}

// phaseReported enters the phase the reducer moved into, now that the write
// for the finished phase has resolved. No later timer runs ahead of it.
func (s *SessionScreen) phaseReported() tea.Cmd {
	s.inflight = false
	if s.st == nil {
		return nil
	}
	if s.st.Phase == sess.PhaseReading {
		// The dwell clock starts when the report lands, not when the
		// previous section was finished.
		s.st.SectionStart = time.Now()
	}
	return s.enterPhase()
}

// enterPhase initializes screen state for the phase the reducer just moved
// into and returns its startup command.
func (s *SessionScreen) enterPhase() tea.Cmd {
	s.tickGen++
	now := time.Now()

	switch s.st.Phase {
	case sess.PhaseReading:
		s.elapsed = 0
		return tickCmd(s.tickGen)

	case sess.PhasePractice:
		s.plugins = s.plugins[:0]
		for _, def := range s.item.Activities {
			s.plugins = append(s.plugins, activity.FromDef(def, now))
		}
		s.activityIdx = 0
		s.practiceXP = 0
		s.actDone = false
		return s.initActivityUI()

	case sess.PhaseQuiz:
		// Oversized pools run as a sampled quick quiz without the
		// hearts model.
		questions := s.item.Quiz
		if len(questions) > quiz.DefaultSampleSize {
			rng := rand.New(rand.NewSource(now.UnixNano()))
			questions = quiz.SampleQuestions(rng, questions, quiz.DefaultSampleSize)
			s.attempt = quiz.NewUnlimitedAttempt(questions)
		} else {
			s.attempt = quiz.NewAttempt(questions)
		}
		s.quizCursor = 0
		s.quizStart = now
		return nil

	case sess.PhaseChallenge:
		s.chInput = components.NewTextInput("Escreva sua resposta...", false, 280)
		return s.chInput.Init()

	case sess.PhaseResults:
		s.summary = sess.BuildSummary(s.st, now)
		s.inflight = true
		return s.saveSession()
	}
	return nil
}

func (s *SessionScreen) handleSessionSaved() (screen.Screen, tea.Cmd) {
	s.inflight = false
	sum := s.summary
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *SessionScreen) abandon() (screen.Screen, tea.Cmd) {
	s.showQuitConfirm = false
	s.tickGen++
	var dur int
	if !s.st.StartTime.IsZero() {
		dur = int(time.Since(s.st.StartTime).Seconds())
	}
	logged := s.appendEvent(store.SessionAbandoned, s.st.XP, dur)
	return s, tea.Sequence(logged, func() tea.Msg { return router.PopScreenMsg{} })
}

// tickCmd schedules the next one-second reading tick.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (s *SessionScreen) reportReading() tea.Cmd {
	contentID := s.item.ID
	done := s.st.CompletedCount()
	total := len(s.st.Sections)
	return func() tea.Msg {
		if s.reporter == nil {
			return readingReportedMsg{}
		}
		err := s.reporter.ReadingDone(context.Background(), contentID, done, total)
		return readingReportedMsg{err: err}
	}
}

func (s *SessionScreen) saveQuiz(res quiz.Result, durationSecs int) tea.Cmd {
	subject := s.item.Subject
	return func() tea.Msg {
		if s.reporter == nil {
			return quizSavedMsg{}
		}
		err := s.reporter.QuizDone(context.Background(), subject, res.Score, res.TotalQuestions, durationSecs)
		return quizSavedMsg{err: err}
	}
}

func (s *SessionScreen) reportChallenge() tea.Cmd {
	ch := s.item.Challenge
	grant := progress.BadgeGrant{
		BadgeID:       ch.BadgeID,
		Name:          ch.BadgeName,
		Description:   ch.BadgeDescription,
		Icon:          ch.BadgeIcon,
		Subject:       s.item.Subject,
		ContentID:     s.item.ID,
		PointsAwarded: ch.Points,
	}
	mentorID := s.item.MentorID
	return func() tea.Msg {
		if s.reporter == nil {
			return challengeReportedMsg{}
		}
		err := s.reporter.ChallengeDone(context.Background(), grant, mentorID)
		return challengeReportedMsg{err: err}
	}
}

func (s *SessionScreen) saveSession() tea.Cmd {
	sum := s.summary
	action := store.SessionFinished
	if s.gameOver {
		action = store.SessionGameOver
	}
	ev := store.SessionEvent{
		SessionID:    s.st.SessionID,
		ContentID:    s.item.ID,
		Action:       action,
		XP:           sum.TotalXP,
		DurationSecs: int(sum.Duration.Seconds()),
	}
	repo := s.sessions
	reporter := s.reporter
	log := s.log
	return func() tea.Msg {
		ctx := context.Background()
		var first error
		if repo != nil {
			if err := repo.Append(ctx, ev); err != nil {
				log.Warn("session event write failed",
					zap.String("action", ev.Action),
					zap.Error(err))
				first = err
			}
		}
		if reporter != nil {
			if err := reporter.SessionDone(ctx, ev.ContentID, ev.DurationSecs); err != nil && first == nil {
				first = err
			}
		}
		return sessionSavedMsg{err: first}
	}
}

// appendEvent writes a session ledger record outside the results flow
// (session start, abandonment). Failures are logged and otherwise ignored.
func (s *SessionScreen) appendEvent(action string, xp, durationSecs int) tea.Cmd {
	ev := store.SessionEvent{
		SessionID:    s.st.SessionID,
		ContentID:    s.item.ID,
		Action:       action,
		XP:           xp,
		DurationSecs: durationSecs,
	}
	repo := s.sessions
	log := s.log
	return func() tea.Msg {
		if repo == nil {
			return nil
		}
		if err := repo.Append(context.Background(), ev); err != nil {
			log.Warn("session event write failed",
				zap.String("action", ev.Action),
				zap.Error(err))
		}
		return nil
	}
}
