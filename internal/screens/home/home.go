package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	"github.com/joaovmb/trilha/internal/screens/badges"
	"github.com/joaovmb/trilha/internal/screens/history"
	"github.com/joaovmb/trilha/internal/screens/library"
	"github.com/joaovmb/trilha/internal/screens/placeholder"
	"github.com/joaovmb/trilha/internal/store"
	"github.com/joaovmb/trilha/internal/ui/components"
)

// Deps carries the services the home screen and its children need.
type Deps struct {
	Catalog  *catalog.Catalog
	Reporter *progress.Reporter
	Learner  *store.LearnerRepo
	Sessions *store.SessionRepo
	Logger   *zap.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu           components.Menu
	menuLabels     []string
	totalXP        int
	badgeCount     int
	completedCount int
	mascotVariant  MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	// Dashboard stats are best-effort; the menu works without them.
	var totalXP, badgeCount, completedCount int
	var recentBadge, inProgress bool
	now := time.Now()

	if deps.Sessions != nil {
		totalXP, _ = deps.Sessions.TotalXP(ctx)
	}
	if deps.Learner != nil {
		if all, err := deps.Learner.AllBadges(ctx); err == nil {
			badgeCount = len(all)
			for _, b := range all {
				if now.Sub(b.EarnedAt) < 24*time.Hour {
					recentBadge = true
					break
				}
			}
		}
		if rows, err := deps.Learner.AllProgress(ctx); err == nil {
			for _, cp := range rows {
				if cp.Completed {
					completedCount++
				} else if cp.ProgressPercentage > 0 {
					inProgress = true
				}
			}
		}
	}

	mascotVariant := MascotIdle
	if inProgress {
		mascotVariant = MascotStudying
	}
	if recentBadge {
		mascotVariant = MascotCelebrating
	}

	menuLabels := []string{"ESTUDAR", "CONQUISTAS", "HISTÓRICO", "SAIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if deps.Catalog == nil || deps.Reporter == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Estudar")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: library.New(deps.Catalog, deps.Reporter, deps.Learner, deps.Sessions, deps.Logger),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if deps.Learner == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Conquistas")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(deps.Learner)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if deps.Sessions == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Histórico")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Sessions, deps.Catalog)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:           components.NewMenu(items),
		menuLabels:     menuLabels,
		totalXP:        totalXP,
		badgeCount:     badgeCount,
		completedCount: completedCount,
		mascotVariant:  mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.totalXP, h.badgeCount, h.completedCount, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Início"
}
