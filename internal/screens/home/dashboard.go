package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/ui/components"
	"github.com/joaovmb/trilha/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleArtFull = ` ████████╗██████╗ ██╗██╗     ██╗  ██╗ █████╗
 ╚══██╔══╝██╔══██╗██║██║     ██║  ██║██╔══██╗
    ██║   ██████╔╝██║██║     ███████║███████║
    ██║   ██╔══██╗██║██║     ██╔══██║██╔══██║
    ██║   ██║  ██║██║███████╗██║  ██║██║  ██║
    ╚═╝   ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝`

const titleArtCompact = "T · R · I · L · H · A"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleArtCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleArtFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(xp, badgeCount, completed, cw int, compact bool) string {
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			xpStyle.Render(fmt.Sprintf("✦%d", xp)),
			badgeStyle.Render(fmt.Sprintf("🏅%d", badgeCount)),
			doneStyle.Render(fmt.Sprintf("✔%d", completed)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			xpStyle.Render(fmt.Sprintf("✦ %d XP", xp)),
			badgeStyle.Render(fmt.Sprintf("🏅 %d MEDALHAS", badgeCount)),
			doneStyle.Render(fmt.Sprintf("✔ %d CONCLUÍDOS", completed)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
