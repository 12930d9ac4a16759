package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	"github.com/joaovmb/trilha/internal/session"
	"github.com/joaovmb/trilha/internal/ui/layout"
	"github.com/joaovmb/trilha/internal/ui/theme"
)

// SummaryScreen displays the results of a finished learning session.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resumo da sessão"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Voltar ao início"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ", "space":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	center := func(content string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, content))
		b.WriteString("\n")
	}

	heading := "Trilha concluída!"
	if sum.Quiz != nil && sum.Quiz.GameOver {
		heading = "Sessão encerrada"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	center(theme.Subtitle.Render(sum.Title))

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duração: %d:%02d · Seções lidas: %d/%d",
			mins, secs, sum.SectionsRead, sum.Sections)))
	b.WriteString("\n")

	center(theme.XPBadge.Render(fmt.Sprintf(" ✦ %d XP ", sum.TotalXP)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	center(divider)
	b.WriteString("\n")

	breakdown := []struct {
		label string
		xp    int
	}{
		{"Leitura", sum.ReadingXP},
		{"Atividades", sum.PracticeXP},
		{"Quiz", sum.QuizXP},
		{"Desafio", sum.ChallengeXP},
	}
	for _, row := range breakdown {
		if row.xp == 0 {
			continue
		}
		center(lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%-12s +%d XP", row.label, row.xp)))
	}

	if sum.Quiz != nil {
		b.WriteString("\n")
		line := fmt.Sprintf("Quiz: %d de %d corretas", sum.Quiz.CorrectAnswers, sum.Quiz.TotalQuestions)
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if sum.Quiz.GameOver {
			line = fmt.Sprintf("Quiz interrompido: %d de %d corretas", sum.Quiz.CorrectAnswers, sum.Quiz.TotalQuestions)
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		center(style.Render(line))
	}

	if sum.Challenge != nil {
		line := "Desafio: resposta registrada"
		if sum.Challenge.Correct {
			line = fmt.Sprintf("Desafio completo! +%d XP", sum.Challenge.XP)
		}
		center(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}

	if sum.BadgeEarned {
		b.WriteString("\n")
		center(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("🏅 Nova medalha conquistada!"))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
