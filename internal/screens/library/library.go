package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	sessionscreen "github.com/joaovmb/trilha/internal/screens/session"
	"github.com/joaovmb/trilha/internal/store"
	"github.com/joaovmb/trilha/internal/ui/layout"
	"github.com/joaovmb/trilha/internal/ui/theme"
)

// pickStage is which level of the browser the learner is on.
type pickStage int

const (
	stageSubject pickStage = iota
	stageContent
)

type progressLoadedMsg struct {
	rows map[string]store.ContentProgress
}

// LibraryScreen lets the learner browse trails by subject and start one.
type LibraryScreen struct {
	catalog  *catalog.Catalog
	reporter *progress.Reporter
	learner  *store.LearnerRepo
	sessions *store.SessionRepo
	logger   *zap.Logger

	stage    pickStage
	subjects []catalog.Subject
	items    []catalog.ContentItem
	cursor   int
	progress map[string]store.ContentProgress
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(cat *catalog.Catalog, reporter *progress.Reporter, learner *store.LearnerRepo, sessions *store.SessionRepo, logger *zap.Logger) *LibraryScreen {
	// Only offer subjects that actually have content.
	var subjects []catalog.Subject
	for _, s := range catalog.AllSubjects() {
		if len(cat.BySubject(s)) > 0 {
			subjects = append(subjects, s)
		}
	}

	return &LibraryScreen{
		catalog:  cat,
		reporter: reporter,
		learner:  learner,
		sessions: sessions,
		logger:   logger,
		subjects: subjects,
		progress: make(map[string]store.ContentProgress),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	learner := s.learner
	if learner == nil {
		return nil
	}
	return func() tea.Msg {
		rows, err := learner.AllProgress(context.Background())
		if err != nil {
			return nil
		}
		byID := make(map[string]store.ContentProgress, len(rows))
		for _, cp := range rows {
			byID[cp.ContentID] = cp
		}
		return progressLoadedMsg{rows: byID}
	}
}

func (s *LibraryScreen) Title() string {
	return "Biblioteca"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Escolher"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		s.progress = msg.rows
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.stage == stageContent {
				s.stage = stageSubject
				s.cursor = 0
				s.items = nil
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "j":
			if s.cursor < s.listLen()-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			return s.choose()
		}
	}
	return s, nil
}

func (s *LibraryScreen) listLen() int {
	if s.stage == stageSubject {
		return len(s.subjects)
	}
	return len(s.items)
}

func (s *LibraryScreen) choose() (screen.Screen, tea.Cmd) {
	if s.stage == stageSubject {
		if s.cursor >= len(s.subjects) {
			return s, nil
		}
		s.items = s.catalog.BySubject(s.subjects[s.cursor])
		s.stage = stageContent
		s.cursor = 0
		return s, nil
	}

	if s.cursor >= len(s.items) {
		return s, nil
	}
	item := s.items[s.cursor]
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(&item, s.reporter, s.sessions, s.logger),
		}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	heading := "Escolha uma área"
	if s.stage == stageContent {
		heading = catalog.SubjectDisplayName(s.subjects[s.subjectCursorForItems()])
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	if s.stage == stageSubject {
		for i, subj := range s.subjects {
			label := fmt.Sprintf("%s  (%d trilhas)",
				catalog.SubjectDisplayName(subj), len(s.catalog.BySubject(subj)))
			b.WriteString(s.renderRow(label, i == s.cursor, width))
		}
		return b.String()
	}

	for i, item := range s.items {
		label := fmt.Sprintf("%s  ·  %s  ·  ~%d min",
			item.Title, item.Difficulty.DisplayName(), item.EstimatedMinutes)
		if cp, ok := s.progress[item.ID]; ok {
			if cp.Completed {
				label += "  ✔"
			} else if cp.ProgressPercentage > 0 {
				label += fmt.Sprintf("  (%d%%)", cp.ProgressPercentage)
			}
		}
		b.WriteString(s.renderRow(label, i == s.cursor, width))
	}
	return b.String()
}

// subjectCursorForItems finds which subject the current item list belongs to.
func (s *LibraryScreen) subjectCursorForItems() int {
	if len(s.items) == 0 {
		return 0
	}
	for i, subj := range s.subjects {
		if subj == s.items[0].Subject {
			return i
		}
	}
	return 0
}

func (s *LibraryScreen) renderRow(label string, selected bool, width int) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		style.Render(prefix+label)) + "\n"
}
