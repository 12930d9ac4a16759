package home

import (
	"charm.land/lipgloss/v2"

	"github.com/joaovmb/trilha/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // Gold, star eyes: badge in the last day
	MascotStudying                         // Reading: a trail is in progress
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ◡  │
│ENEM │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ◡  │
│ENEM │
└─╥═╥─┘
  ╚═╝`

const mascotStudying = `┌─────┐
│ ◉ ◉ │ 📖
│  –  │
│ENEM │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotStudying:
		art = mascotStudying
		fg = theme.Secondary
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
