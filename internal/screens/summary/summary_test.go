package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		ContentID:    "mat-funcoes-01",
		Title:        "Funções do 1º grau",
		Duration:     12*time.Minute + 30*time.Second,
		TotalXP:      185,
		ReadingXP:    60,
		PracticeXP:   45,
		QuizXP:       80,
		SectionsRead: 4,
		Sections:     4,
		Quiz: &session.QuizOutcome{
			Score:          80,
			CorrectAnswers: 8,
			TotalQuestions: 10,
			DurationSecs:   240,
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Resumo da sessão" {
		t.Errorf("Title = %q, want %q", s.Title(), "Resumo da sessão")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Trilha concluída!", "185 XP", "8 de 10", "12:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_GameOverHeading(t *testing.T) {
	sum := testSummary()
	sum.Quiz.GameOver = true
	view := New(sum).View(80, 24)
	if !strings.Contains(view, "Sessão encerrada") {
		t.Error("expected game over heading")
	}
	if strings.Contains(view, "Trilha concluída!") {
		t.Error("did not expect completion heading on game over")
	}
}

func TestSummaryScreen_BadgeBanner(t *testing.T) {
	sum := testSummary()
	sum.BadgeEarned = true
	sum.Challenge = &session.ChallengeOutcome{Correct: true, XP: 75}
	view := New(sum).View(80, 24)
	if !strings.Contains(view, "Nova medalha conquistada!") {
		t.Error("expected badge banner")
	}
}

func TestSummaryScreen_EnterPopsToRoot(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg on Enter")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if view := New(nil).View(80, 24); view != "" {
		t.Errorf("expected empty view for nil summary, got %q", view)
	}
}
