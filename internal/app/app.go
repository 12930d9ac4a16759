package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/progress"
	"github.com/joaovmb/trilha/internal/router"
	"github.com/joaovmb/trilha/internal/screen"
	"github.com/joaovmb/trilha/internal/screens/home"
	"github.com/joaovmb/trilha/internal/screens/welcome"
	"github.com/joaovmb/trilha/internal/store"
	"github.com/joaovmb/trilha/internal/ui/layout"
)

// Options carries the dependencies the screens need.
type Options struct {
	Catalog  *catalog.Catalog
	Reporter *progress.Reporter
	Learner  *store.LearnerRepo
	Sessions *store.SessionRepo
	Logger   *zap.Logger
}

type statsLoadedMsg struct {
	xp     int
	badges int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	opts        Options
	homeFactory func() screen.Screen
	width       int
	height      int
	xp          int
	badges      int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Catalog:  opts.Catalog,
			Reporter: opts.Reporter,
			Learner:  opts.Learner,
			Sessions: opts.Sessions,
			Logger:   opts.Logger,
		})
	}
	return AppModel{
		router:      router.New(welcome.New(homeFactory)),
		opts:        opts,
		homeFactory: homeFactory,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadStats()
}

// loadStats queries lifetime XP and badge count for the header.
func (m AppModel) loadStats() tea.Cmd {
	sessions := m.opts.Sessions
	learner := m.opts.Learner
	if sessions == nil || learner == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		xp, err := sessions.TotalXP(ctx)
		if err != nil {
			return nil
		}
		badges, err := learner.AllBadges(ctx)
		if err != nil {
			return statsLoadedMsg{xp: xp}
		}
		return statsLoadedMsg{xp: xp, badges: len(badges)}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsLoadedMsg:
		m.xp = msg.xp
		m.badges = msg.badges
		return m, nil

	case router.PopScreenMsg:
		// Returning from a screen may have changed the totals.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStats())

	case router.PopToRootMsg:
		// A finished session lands back on a rebuilt dashboard.
		cmd := m.router.Update(msg)
		replace := m.router.Update(router.ReplaceScreenMsg{Screen: m.homeFactory()})
		return m, tea.Batch(cmd, replace, m.loadStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.xp, m.badges, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Voltar"},
				{Key: "Ctrl+C", Description: "Sair"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navegar"},
				{Key: "Enter", Description: "Escolher"},
				{Key: "Ctrl+C", Description: "Sair"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
