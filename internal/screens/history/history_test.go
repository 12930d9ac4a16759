package history

import (
	"strings"
	"testing"
	"time"

	"github.com/joaovmb/trilha/internal/store"
)

func TestHistoryScreen_RendersLedgerRows(t *testing.T) {
	s := New(nil, nil)
	s.Update(historyLoadedMsg{Events: []store.SessionEvent{
		{SessionID: "a", ContentID: "mat-funcoes-01", Action: store.SessionFinished, XP: 160, DurationSecs: 754, CreatedAt: time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC)},
		{SessionID: "b", ContentID: "red-dissertacao-01", Action: store.SessionAbandoned, XP: 35, CreatedAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)},
	}})

	view := s.View(120, 30)
	for _, want := range []string{"Concluída", "Abandonada", "160", "12:34"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	s := New(nil, nil)
	s.Update(historyLoadedMsg{})
	if !strings.Contains(s.View(80, 24), "Nenhuma sessão") {
		t.Error("expected empty state message")
	}
}

func TestActionLabel(t *testing.T) {
	cases := map[string]string{
		store.SessionFinished:  "Concluída",
		store.SessionGameOver:  "Game over",
		store.SessionAbandoned: "Abandonada",
		"custom":               "custom",
	}
	for action, want := range cases {
		if got := actionLabel(action); got != want {
			t.Errorf("actionLabel(%q) = %q, want %q", action, got, want)
		}
	}
}
