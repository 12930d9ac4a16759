// Package activity implements the interactive practice plugins: flashcard
// recall, drag-and-drop categorization and fill-in-the-blank. Each plugin is
// a self-contained state machine that produces a (score, seconds-spent)
// outcome on completion. Plugins never touch session state directly; the
// session screen collects outcomes and aggregates XP.
package activity

import (
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// unitScore is the reward per fully-correct practice unit.
const unitScore = 10

// Outcome is the result of one completed plugin invocation.
type Outcome struct {
	Kind         catalog.ActivityKind
	Score        int
	SecondsSpent int
	Units        int
	CorrectUnits int
}

// Plugin is the capability set shared by all practice variants.
type Plugin interface {
	// Kind identifies the practice variant.
	Kind() catalog.ActivityKind

	// Title returns the activity's display title.
	Title() string

	// Progress returns completed and total unit counts for display.
	Progress() (done, total int)

	// Completed reports whether the plugin has reached its terminal state.
	Completed() bool

	// Outcome builds the completion result. Valid once Completed.
	Outcome(now time.Time) Outcome
}

// FromDef constructs the plugin for an activity definition. Malformed
// definitions yield a plugin that is trivially complete with zero score;
// they never fail the session.
func FromDef(def catalog.ActivityDef, now time.Time) Plugin {
	switch def.Kind {
	case catalog.ActivityFlashcards:
		return NewFlashcards(def, now)
	case catalog.ActivityDragDrop:
		return NewDragDrop(def, now)
	case catalog.ActivityFillBlank:
		return NewFillBlank(def, now)
	default:
		return NewFlashcards(catalog.ActivityDef{Kind: def.Kind, Title: def.Title}, now)
	}
}

// elapsedSecs converts a start timestamp to whole seconds spent.
func elapsedSecs(started, now time.Time) int {
	if started.IsZero() || now.Before(started) {
		return 0
	}
	return int(now.Sub(started).Seconds())
}
