package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/activity"
	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/quiz"
	sess "github.com/joaovmb/trilha/internal/session"
	"github.com/joaovmb/trilha/internal/ui/components"
	"github.com/joaovmb/trilha/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.centered(width, theme.Incorrect.Render(s.errMsg)+"\n\n"+
			theme.Hint.Render("Pressione qualquer tecla para voltar"))
	}
	if s.showQuitConfirm {
		return s.renderQuitConfirm(width)
	}

	switch s.st.Phase {
	case sess.PhaseIntro:
		return s.renderIntro(width)
	case sess.PhaseReading:
		return s.renderReading(width)
	case sess.PhaseCheckpoint:
		return s.renderCheckpoint(width)
	case sess.PhasePractice:
		return s.renderPractice(width)
	case sess.PhaseQuiz:
		return s.renderQuiz(width)
	case sess.PhaseChallenge:
		return s.renderChallenge(width)
	case sess.PhaseResults:
		return s.centered(width, theme.Hint.Render("Salvando sua sessão..."))
	}
	return ""
}

func (s *SessionScreen) centered(width int, content string) string {
	return "\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

func (s *SessionScreen) renderQuitConfirm(width int) string {
	card := components.Card(
		theme.Title.Render("Encerrar a sessão?")+"\n\n"+
			theme.Body.Render("O progresso das etapas já concluídas está salvo,\nmas esta sessão não contará como finalizada.")+"\n\n"+
			theme.Hint.Render("[S] Encerrar   [N] Continuar estudando"),
		components.ContentWidth(width),
	)
	return s.centered(width, card)
}

func (s *SessionScreen) renderIntro(width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.item.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(catalog.SubjectDisplayName(s.item.Subject)+" · "+s.item.Theme) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(s.item.Description) + "\n\n")

	mentor := catalog.MentorByID(s.item.MentorID)
	b.WriteString(theme.Body.Render(fmt.Sprintf("%s %s vai te acompanhar nessa trilha.", mentor.Emoji, mentor.Name)) + "\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d seções de leitura · %s · ~%d min",
		len(s.st.Sections), s.item.Difficulty.DisplayName(), s.item.EstimatedMinutes)) + "\n\n")
	b.WriteString(theme.ButtonActive.Render("  COMEÇAR  "))

	return s.centered(width, components.Card(b.String(), cw))
}

func (s *SessionScreen) renderReading(width int) string {
	cw := components.ContentWidth(width)
	sec := s.st.CurrentSection()
	minSecs := sess.MinReadSeconds(sec)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Seção %d de %d", s.st.SectionIndex+1, len(s.st.Sections))) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(sec.Text) + "\n\n")

	pct := float64(s.elapsed) / float64(minSecs)
	if pct > 1 {
		pct = 1
	}
	b.WriteString(components.NewProgressBar("Tempo de leitura", pct, false, cw-10).View() + "\n")

	if sess.MayAdvance(sec, s.elapsed) {
		b.WriteString(theme.Correct.Render("✔ Pode avançar") + "  " + theme.Hint.Render("Enter para a próxima seção"))
	} else {
		remaining := minSecs - s.elapsed
		b.WriteString(theme.Hint.Render(fmt.Sprintf("🔒 Continue lendo (%ds restantes)", remaining)))
	}

	return s.centered(width, components.Card(b.String(), cw))
}

func (s *SessionScreen) renderCheckpoint(width int) string {
	cw := components.ContentWidth(width)
	mentor := catalog.MentorByID(s.item.MentorID)
	done := s.st.CompletedCount()
	total := len(s.st.Sections)

	var b strings.Builder
	b.WriteString(theme.Title.Render(mentor.Emoji+" "+mentor.Name) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(mentor.MessageFor(done-1)) + "\n\n")
	b.WriteString(components.NewProgressBar("Progresso", float64(done)/float64(total), true, cw-10).View() + "\n")
	b.WriteString(theme.XPBadge.Render(fmt.Sprintf(" ✦ %d XP ", s.st.XP)) + "\n\n")
	b.WriteString(theme.ButtonActive.Render("  CONTINUAR  "))

	return s.centered(width, components.Card(b.String(), cw))
}

func (s *SessionScreen) renderPractice(width int) string {
	cw := components.ContentWidth(width)
	p := s.currentPlugin()
	if p == nil {
		return s.centered(width, theme.Hint.Render("Preparando atividades..."))
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Atividade %d de %d", s.activityIdx+1, len(s.plugins))) + "\n")
	b.WriteString(theme.Title.Render(p.Title()) + "\n\n")

	if s.actDone {
		b.WriteString(s.renderActivityOutcome())
		return s.centered(width, components.Card(b.String(), cw))
	}

	switch p := p.(type) {
	case *activity.Flashcards:
		b.WriteString(s.renderFlashcards(p, cw))
	case *activity.DragDrop:
		b.WriteString(s.renderDragDrop(p, cw))
	case *activity.FillBlank:
		b.WriteString(s.renderFillBlank(p, cw))
	}

	done, total := p.Progress()
	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("%d/%d", done, total)))
	return s.centered(width, components.Card(b.String(), cw))
}

func (s *SessionScreen) renderActivityOutcome() string {
	var b strings.Builder
	b.WriteString(theme.Correct.Render("Atividade concluída!") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Acertos: %d de %d", s.actOutcome.CorrectUnits, s.actOutcome.Units)) + "\n")
	b.WriteString(theme.XPBadge.Render(fmt.Sprintf(" ✦ +%d XP ", s.actOutcome.Score)) + "\n\n")
	b.WriteString(theme.Hint.Render("Enter para continuar"))
	return b.String()
}

func (s *SessionScreen) renderFlashcards(fc *activity.Flashcards, cw int) string {
	card := fc.Current()
	var b strings.Builder

	face := card.Front
	faceLabel := "PERGUNTA"
	if fc.Revealed() {
		face = card.Back
		faceLabel = "RESPOSTA"
	}
	b.WriteString(theme.Hint.Render(faceLabel) + "\n")
	inner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(1, 2).
		Width(cw - 10).
		Render(face)
	b.WriteString(inner + "\n\n")

	if fc.Revealed() {
		b.WriteString(theme.Hint.Render("[1] Sabia   [2] Não sabia"))
	} else {
		b.WriteString(theme.Hint.Render("Espaço para virar a carta"))
	}
	return b.String()
}

func (s *SessionScreen) renderDragDrop(dd *activity.DragDrop, cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render("Classifique cada item na categoria certa:") + "\n\n")
	for i, cat := range dd.Categories() {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("[%d] %s", i+1, cat)) + "\n")
	}
	b.WriteString("\n")

	for i, item := range dd.Items() {
		line := item.Label
		if c := dd.PlacementAt(i); c >= 0 {
			line += theme.Hint.Render("  → " + dd.Categories()[c])
		}
		if i == s.ddCursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	if dd.AllPlaced() {
		b.WriteString("\n" + theme.Hint.Render("Enter para conferir · R para recomeçar"))
	}
	return b.String()
}

func (s *SessionScreen) renderFillBlank(fb *activity.FillBlank, cw int) string {
	var b strings.Builder
	for qi, q := range fb.Questions() {
		marker := "  "
		if qi == s.fbQuestion {
			marker = "▸ "
		}
		b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(marker+q.Prompt) + "\n")
		for bi := range q.Blanks {
			val := fb.InputAt(qi, bi)
			if qi == s.fbQuestion && bi == s.fbBlank {
				b.WriteString("    " + s.fbInput.View() + "\n")
				continue
			}
			if val == "" {
				val = "______"
			}
			b.WriteString(theme.Hint.Render(fmt.Sprintf("    lacuna %d: %s", bi+1, val)) + "\n")
		}
	}
	return b.String()
}

func (s *SessionScreen) renderQuiz(width int) string {
	cw := components.ContentWidth(width)
	a := s.attempt
	if a == nil {
		return s.centered(width, theme.Hint.Render("Preparando o quiz..."))
	}

	if a.GameOver() {
		var b strings.Builder
		b.WriteString(theme.Incorrect.Render("💔 Fim das vidas!") + "\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Você acertou %d de %d antes de parar.", a.CorrectCount(), a.Total())) + "\n\n")
		b.WriteString(theme.Hint.Render("[R] Tentar de novo   [Enter] Encerrar o quiz"))
		return s.centered(width, components.Card(b.String(), cw))
	}

	q := a.Current()
	var b strings.Builder

	header := theme.Subtitle.Render(fmt.Sprintf("Pergunta %d/%d", a.Index()+1, a.Total()))
	if !a.Unlimited() {
		header = lipgloss.JoinHorizontal(lipgloss.Center,
			header, "   ", components.Hearts(a.Hearts(), quiz.StartingHearts))
	}
	b.WriteString(header + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Bold(true).Render(q.Prompt) + "\n\n")

	opts := components.OptionList{
		Options:      q.Options,
		Cursor:       s.quizCursor,
		Answered:     a.CurrentAnswered(),
		ChosenIndex:  a.AnswerAt(a.Index()),
		CorrectIndex: q.CorrectIndex,
	}
	b.WriteString(opts.View())

	if a.CurrentAnswered() {
		if q.Explanation != "" {
			b.WriteString("\n" + lipgloss.NewStyle().Width(cw-6).Foreground(theme.TextDim).Italic(true).Render(q.Explanation) + "\n")
		}
		if a.OnLastQuestion() && a.Finished() {
			b.WriteString("\n" + theme.Hint.Render("Enter para finalizar o quiz"))
		} else {
			b.WriteString("\n" + theme.Hint.Render("Enter para a próxima pergunta"))
		}
	}

	return s.centered(width, components.Card(b.String(), cw))
}

func (s *SessionScreen) renderChallenge(width int) string {
	cw := components.ContentWidth(width)
	if s.inflight {
		return s.centered(width, theme.Hint.Render("Salvando o quiz..."))
	}
	ch := s.item.Challenge

	var b strings.Builder
	b.WriteString(theme.Title.Render("🎯 Desafio") + "\n\n")
	if ch != nil {
		b.WriteString(lipgloss.NewStyle().Width(cw-6).Foreground(theme.Text).Render(ch.Prompt) + "\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Vale %d pontos e a medalha %s %s", ch.Points, ch.BadgeIcon, ch.BadgeName)) + "\n\n")
	}
	b.WriteString(s.chInput.View() + "\n\n")
	b.WriteString(theme.Hint.Render("Desenvolva sua resposta e pressione Enter"))

	return s.centered(width, components.Card(b.String(), cw))
}
