package games

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/screens/play"
	"github.com/abhisek/tabuada/internal/store"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/layout"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

type gamesLoadedMsg struct {
	Games []*store.SavedGame
	Err   error
}

type gameDeletedMsg struct {
	ID  string
	Err error
}

// GamesScreen lists saved games. Unfinished games can be continued and
// any game can be deleted.
type GamesScreen struct {
	env        play.Env
	games      []*store.SavedGame
	selected   int
	confirming bool
	loaded     bool
	errMsg     string
}

var (
	_ screen.Screen          = (*GamesScreen)(nil)
	_ screen.KeyHintProvider = (*GamesScreen)(nil)
	_ screen.EscapeHandler   = (*GamesScreen)(nil)
)

// New creates a new GamesScreen.
func New(env play.Env) *GamesScreen {
	return &GamesScreen{env: env}
}

func (s *GamesScreen) Init() tea.Cmd {
	return s.load()
}

func (s *GamesScreen) load() tea.Cmd {
	repo := s.env.Repo
	return func() tea.Msg {
		games, err := repo.ListSessions(context.Background())
		return gamesLoadedMsg{Games: games, Err: err}
	}
}

func (s *GamesScreen) delete(id string) tea.Cmd {
	repo := s.env.Repo
	return func() tea.Msg {
		_, err := repo.DeleteSession(context.Background(), id)
		return gameDeletedMsg{ID: id, Err: err}
	}
}

func (s *GamesScreen) Title() string {
	return "Saved Games"
}

// HandlesEscape reports that Esc is handled here so the home screen is
// refreshed on the way back.
func (s *GamesScreen) HandlesEscape() bool {
	return true
}

func (s *GamesScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Continue"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GamesScreen) current() *store.SavedGame {
	if s.selected < 0 || s.selected >= len(s.games) {
		return nil
	}
	return s.games[s.selected]
}

func (s *GamesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gamesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.games = msg.Games
		s.selected = min(s.selected, max(len(s.games)-1, 0))
		return s, nil

	case gameDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if s.env.Logger != nil {
			s.env.Logger.Info("saved game deleted", "id", msg.ID)
		}
		return s, s.load()

	case tea.KeyPressMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *GamesScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.confirming {
		switch key {
		case "y":
			s.confirming = false
			if g := s.current(); g != nil {
				return s, s.delete(g.ID)
			}
		case "n", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{Refresh: play.RefreshMsg{}} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.games)-1 {
			s.selected++
		}
	case "enter":
		g := s.current()
		if g == nil || g.GameOver {
			return s, nil
		}
		game := play.Continue(s.env, g.ID)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: game} }
	case "d", "delete":
		if s.current() != nil {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *GamesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading saved games...")
	}
	if len(s.games) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  No saved games. Start a new one!")
	}

	var b strings.Builder
	b.WriteString("\n")
	header := fmt.Sprintf("  %-16s %6s  %-12s %-7s %-16s", "Player", "Score", "Table", "Lives", "Last played")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	for i, g := range s.games {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		status := fmt.Sprintf("%d/%d", g.Data.Lives, g.Data.MaxLives)
		if g.GameOver {
			status = "over"
		}
		line := fmt.Sprintf("%s%-16s %6d  %-12s %-7s %-16s", prefix,
			truncate(g.PlayerName, 16), g.Score,
			quiz.PhaseName(g.Data.CurrentPhase)+" "+g.Data.CurrentSubPhase,
			status, g.LastPlayedAt.Local().Format("Jan 02 15:04"))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		case g.GameOver:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirming {
		if g := s.current(); g != nil {
			b.WriteString("\n")
			cw := components.ContentWidth(width)
			prompt := components.ArcadeBanner(fmt.Sprintf("Delete %s's game? [Y/N]", g.PlayerName), theme.Error, cw)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
