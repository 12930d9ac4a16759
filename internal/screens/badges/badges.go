package badges

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

type badgesLoadedMsg struct {
	Badges []store.Badge
	Err    error
}

// BadgesScreen displays the learner's earned badges, filterable by subject.
type BadgesScreen struct {
	learner      *store.LearnerRepo
	all          []store.Badge
	subjects     []catalog.Subject
	selectedTab  int // 0 = all subjects, i+1 = subjects[i]
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen.
func New(learner *store.LearnerRepo) *BadgesScreen {
	return &BadgesScreen{
		learner:  learner,
		subjects: catalog.AllSubjects(),
	}
}

func (s *BadgesScreen) Init() tea.Cmd {
	learner := s.learner
	return func() tea.Msg {
		if learner == nil {
			return badgesLoadedMsg{}
		}
		badges, err := learner.AllBadges(context.Background())
		return badgesLoadedMsg{Badges: badges, Err: err}
	}
}

func (s *BadgesScreen) Title() string {
	return "Conquistas"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Mudar área"},
		{Key: "↑↓", Description: "Rolar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.all = msg.Badges
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.selectedTab = (s.selectedTab + 1) % (len(s.subjects) + 1)
			s.scrollOffset = 0
		case "shift+tab", "left", "h":
			s.selectedTab = (s.selectedTab + len(s.subjects)) % (len(s.subjects) + 1)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErro: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Carregando conquistas...")
	}

	var b strings.Builder

	totalPoints := 0
	for _, badge := range s.all {
		totalPoints += badge.PointsAwarded
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n🏅 %d medalhas · ✦ %d pontos\n", len(s.all), totalPoints)))
	b.WriteString("\n")

	var tabs []string
	labels := append([]string{"Todas"}, subjectLabels(s.subjects)...)
	for i, label := range labels {
		if i == s.selectedTab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nenhuma medalha por aqui ainda. Complete desafios para ganhá-las!"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(filtered)-1 {
		start = len(filtered) - 1
	}
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		badge := filtered[i]
		date := badge.EarnedAt.Format("02/01/2006")
		head := fmt.Sprintf("%s %s  ·  +%d pts  ·  %s", badge.Icon, badge.Name, badge.PointsAwarded, date)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(head)))
		b.WriteString("\n")
		if badge.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(badge.Description)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... mais %d", len(filtered)-end)))
	}

	return b.String()
}

func (s *BadgesScreen) filtered() []store.Badge {
	if s.selectedTab == 0 {
		return s.all
	}
	subject := s.subjects[s.selectedTab-1]
	var out []store.Badge
	for _, badge := range s.all {
		if badge.Subject == subject {
			out = append(out, badge)
		}
	}
	return out
}

func subjectLabels(subjects []catalog.Subject) []string {
	out := make([]string, len(subjects))
	for i, subj := range subjects {
		out[i] = catalog.SubjectDisplayName(subj)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
