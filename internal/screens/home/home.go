package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/screens/games"
	"github.com/abhisek/tabuada/internal/screens/leaderboard"
	"github.com/abhisek/tabuada/internal/screens/newgame"
	"github.com/abhisek/tabuada/internal/screens/play"
	"github.com/abhisek/tabuada/internal/store"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

// Menu positions.
const (
	itemNewGame = iota
	itemContinue
	itemSavedGames
	itemLeaderboard
	itemExit
)

// dashboard summarizes the saved games for the home screen.
type dashboard struct {
	saved      int
	bestScore  int
	bestPlayer string

	// resume is the most recently played game that is not over.
	resume *store.SavedGame

	// reachedBonus is set when the last played game got to the final table.
	reachedBonus bool

	err error
}

func loadDashboard(ctx context.Context, repo store.GameRepo) dashboard {
	var d dashboard
	if repo == nil {
		return d
	}
	games, err := repo.ListSessions(ctx)
	if err != nil {
		d.err = err
		return d
	}

	d.saved = len(games)
	if top := store.ComputeLeaderboard(games, 1); len(top) > 0 {
		d.bestScore = top[0].Score
		d.bestPlayer = top[0].PlayerName
	}
	for _, g := range games {
		if !g.GameOver {
			d.resume = g
			break
		}
	}
	if len(games) > 0 {
		d.reachedBonus = games[0].HighestPhase() >= quiz.TerminalPhase
	}
	return d
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env   play.Env
	menu  components.Menu
	board dashboard
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen and loads the saved-game summary.
func New(env play.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	h.menu = components.NewMenu([]components.MenuItem{
		itemNewGame: {Label: "NEW GAME", Action: func() tea.Cmd {
			return push(newgame.New(h.env))
		}},
		itemContinue: {Label: "CONTINUE", Action: func() tea.Cmd {
			if h.board.resume == nil {
				return nil
			}
			return push(play.Continue(h.env, h.board.resume.ID))
		}},
		itemSavedGames: {Label: "SAVED GAMES", Action: func() tea.Cmd {
			return push(games.New(h.env))
		}},
		itemLeaderboard: {Label: "LEADERBOARD", Action: func() tea.Cmd {
			return push(leaderboard.New(h.env.Repo, h.env.LeaderboardSize))
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	h.refresh()
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) refresh() {
	h.board = loadDashboard(context.Background(), h.env.Repo)
	if h.board.err != nil && h.env.Logger != nil {
		h.env.Logger.Error("load saved games failed", "error", h.board.err)
	}
	h.menu.SetDisabled(itemContinue, h.board.resume == nil)
	h.menu.SetDisabled(itemSavedGames, h.board.saved == 0)
	h.menu.SetDisabled(itemLeaderboard, h.board.saved == 0)
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.board.reachedBonus:
		return MascotCelebrating
	case h.board.resume != nil:
		return MascotAlert
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(play.RefreshMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer
	compact := height+8 < 30 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderStatsBar(h.board, cw, compact))
	if h.board.err != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Align(lipgloss.Center).
			Render("could not read saved games"))
	}
	sections = append(sections, h.menu.View(cw))
	if note := renderContinueNote(h.board, cw); note != "" && !compact {
		sections = append(sections, note)
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
