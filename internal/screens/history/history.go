package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	"github.com/joaovmb/trilha/internal/store"
	"github.com/joaovmb/trilha/internal/ui/layout"
	"github.com/joaovmb/trilha/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.SessionEvent
	Err    error
}

// HistoryScreen displays past session records from the ledger.
type HistoryScreen struct {
	sessions *store.SessionRepo
	catalog  *catalog.Catalog
	events   []store.SessionEvent
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(sessions *store.SessionRepo, cat *catalog.Catalog) *HistoryScreen {
	return &HistoryScreen{sessions: sessions, catalog: cat}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.sessions
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		events, err := repo.Recent(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// The start record of every session is implied by its end record.
		var ends []store.SessionEvent
		for _, ev := range events {
			if ev.Action != store.SessionStarted {
				ends = append(ends, ev)
			}
		}
		return historyLoadedMsg{Events: ends}
	}
}

func (s *HistoryScreen) Title() string {
	return "Histórico"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErro: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Carregando histórico...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nNenhuma sessão registrada ainda. Hora de estudar!")
	}

	var b strings.Builder
	b.WriteString("\n")

	maxVisible := height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if s.selected >= maxVisible {
		start = s.selected - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(s.events) {
		end = len(s.events)
	}

	for i := start; i < end; i++ {
		ev := s.events[i]
		line := fmt.Sprintf("%s  %-34s %-12s ✦ %-4d %s",
			ev.CreatedAt.Format("02/01 15:04"),
			truncate(s.contentTitle(ev.ContentID), 34),
			actionLabel(ev.Action),
			ev.XP,
			formatDuration(ev.DurationSecs),
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.events) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... mais %d", len(s.events)-end)))
	}

	return b.String()
}

func (s *HistoryScreen) contentTitle(contentID string) string {
	if s.catalog == nil {
		return contentID
	}
	item, err := s.catalog.Get(context.Background(), contentID)
	if err != nil || item == nil {
		return contentID
	}
	return item.Title
}

func actionLabel(action string) string {
	switch action {
	case store.SessionFinished:
		return "Concluída"
	case store.SessionGameOver:
		return "Game over"
	case store.SessionAbandoned:
		return "Abandonada"
	case store.SessionStarted:
		return "Iniciada"
	default:
		return action
	}
}

func formatDuration(secs int) string {
	if secs <= 0 {
		return "—"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
