package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/ui/theme"
)

// OptionList renders a lettered multiple-choice option list. Before an
// answer is recorded only the cursor position is highlighted; afterwards
// the correct option is shown in green and a wrong pick in red.
type OptionList struct {
	Options      []string
	Cursor       int
	Answered     bool
	ChosenIndex  int
	CorrectIndex int
}

var optionLabels = []string{"A", "B", "C", "D", "E"}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.Answered {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Answered && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Answered && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Answered:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
