package games

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screens/play"
	"github.com/abhisek/tabuada/internal/store"
)

type stubRepo struct {
	store.GameRepo
	games   []*store.SavedGame
	deleted []string
	listErr error
}

func (r *stubRepo) ListSessions(context.Context) ([]*store.SavedGame, error) {
	return r.games, r.listErr
}

func (r *stubRepo) DeleteSession(_ context.Context, id string) (bool, error) {
	r.deleted = append(r.deleted, id)
	for i, g := range r.games {
		if g.ID == id {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func game(id, player string, over bool) *store.SavedGame {
	return &store.SavedGame{
		ID:           id,
		PlayerName:   player,
		GameOver:     over,
		LastPlayedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Data:         store.GameData{CurrentPhase: 3, CurrentSubPhase: "B", Lives: 2, MaxLives: 5},
	}
}

// loaded runs the screen's load command and feeds the result back.
func loaded(t *testing.T, repo *stubRepo) *GamesScreen {
	t.Helper()
	s := New(play.Env{Repo: repo})
	s.Update(s.Init()())
	return s
}

func TestGamesScreen_List(t *testing.T) {
	s := loaded(t, &stubRepo{games: []*store.SavedGame{game("a", "Ana", false), game("b", "Bia", true)}})

	view := s.View(100, 30)
	for _, want := range []string{"Ana", "Bia", "Table of 3 B", "2/5", "over"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestGamesScreen_Empty(t *testing.T) {
	s := loaded(t, &stubRepo{})
	if !strings.Contains(s.View(100, 30), "No saved games") {
		t.Error("expected empty message")
	}
}

func TestGamesScreen_LoadError(t *testing.T) {
	s := loaded(t, &stubRepo{listErr: errors.New("disk gone")})
	if !strings.Contains(s.View(100, 30), "disk gone") {
		t.Error("expected error in view")
	}
}

func TestGamesScreen_ContinueUnfinished(t *testing.T) {
	s := loaded(t, &stubRepo{games: []*store.SavedGame{game("a", "Ana", false), game("b", "Bia", true)}})

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*play.Screen); !ok {
		t.Errorf("expected play screen, got %T", msg.Screen)
	}

	s.Update(specialKey(tea.KeyDown))
	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("finished games cannot be continued")
	}
}

func TestGamesScreen_DeleteWithConfirm(t *testing.T) {
	repo := &stubRepo{games: []*store.SavedGame{game("a", "Ana", false), game("b", "Bia", true)}}
	s := loaded(t, repo)
	s.Update(specialKey(tea.KeyDown))

	s.Update(keyPress('d'))
	if !s.confirming {
		t.Fatal("expected confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirming || len(repo.deleted) != 0 {
		t.Fatal("n should cancel the delete")
	}

	s.Update(keyPress('d'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	_, reload := s.Update(cmd())
	if len(repo.deleted) != 1 || repo.deleted[0] != "b" {
		t.Fatalf("deleted = %v", repo.deleted)
	}
	s.Update(reload())

	if len(s.games) != 1 || s.selected != 0 {
		t.Errorf("games = %d, selected = %d", len(s.games), s.selected)
	}
}

func TestGamesScreen_EscRefreshesHome(t *testing.T) {
	s := loaded(t, &stubRepo{})
	if !s.HandlesEscape() {
		t.Fatal("expected games screen to handle esc")
	}
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	msg, ok := cmd().(router.PopToRootMsg)
	if !ok {
		t.Fatalf("expected PopToRootMsg, got %T", cmd())
	}
	if _, ok := msg.Refresh.(play.RefreshMsg); !ok {
		t.Errorf("expected refresh, got %T", msg.Refresh)
	}
}
