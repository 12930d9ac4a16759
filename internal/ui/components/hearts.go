package components

import (
	"strings"

	"github.com/joaovmb/trilha/internal/ui/theme"
)

// Hearts renders the remaining lives as filled and hollow hearts.
func Hearts(remaining, total int) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}

	var parts []string
	for i := 0; i < total; i++ {
		if i < remaining {
			parts = append(parts, theme.HeartFull.Render("♥"))
		} else {
			parts = append(parts, theme.HeartLost.Render("♡"))
		}
	}
	return strings.Join(parts, " ")
}
