package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/store"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

type leaderboardLoadedMsg struct {
	Entries []store.LeaderboardEntry
	Err     error
}

// medals decorate the first three ranks.
var medals = []string{"🥇", "🥈", "🥉"}

// LeaderboardScreen shows the best score of each player.
type LeaderboardScreen struct {
	repo    store.GameRepo
	limit   int
	entries []store.LeaderboardEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen showing up to limit players.
func New(repo store.GameRepo, limit int) *LeaderboardScreen {
	if limit <= 0 {
		limit = store.DefaultLeaderboardSize
	}
	return &LeaderboardScreen{repo: repo, limit: limit}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	repo, limit := s.repo, s.limit
	return func() tea.Msg {
		entries, err := repo.Leaderboard(context.Background(), limit)
		return leaderboardLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(leaderboardLoadedMsg); ok {
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading leaderboard...")
	}

	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, components.ArcadeBanner(fmt.Sprintf("TOP %d", s.limit), theme.ArcadeYellow, cw))

	if len(s.entries) == 0 {
		sections = append(sections, theme.Hint.Render("No scores yet. Be the first!"))
		return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
	}

	rows := make([]string, 0, len(s.entries))
	for i, e := range s.entries {
		rank := fmt.Sprintf("%2d.", e.Rank)
		if i < len(medals) {
			rank = medals[i]
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s %-16s %6d  %-12s %s",
			rank, e.PlayerName, e.Score, quiz.PhaseName(e.HighestPhase), e.PlayedAt.Local().Format("Jan 02"))))
	}
	sections = append(sections, components.ArcadeCard(strings.Join(rows, "\n"), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
