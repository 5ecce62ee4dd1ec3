package play

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/store"
)

// memRepo is an in-memory store.GameRepo.
type memRepo struct {
	games map[string]*store.SavedGame
	next  int
}

func newMemRepo() *memRepo {
	return &memRepo{games: make(map[string]*store.SavedGame)}
}

func (m *memRepo) SaveSession(_ context.Context, g *store.SavedGame) (string, error) {
	if g.ID == "" {
		m.next++
		g.ID = fmt.Sprintf("game-%d", m.next)
	}
	cp := *g
	m.games[g.ID] = &cp
	return g.ID, nil
}

func (m *memRepo) LoadSession(_ context.Context, id string) (*store.SavedGame, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memRepo) DeleteSession(_ context.Context, id string) (bool, error) {
	_, ok := m.games[id]
	delete(m.games, id)
	return ok, nil
}

func (m *memRepo) ListSessions(context.Context) ([]*store.SavedGame, error) {
	var out []*store.SavedGame
	for _, g := range m.games {
		out = append(out, g)
	}
	return out, nil
}

func (m *memRepo) DeleteAll(context.Context) (int, error) {
	n := len(m.games)
	m.games = make(map[string]*store.SavedGame)
	return n, nil
}

func (m *memRepo) Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardEntry, error) {
	games, _ := m.ListSessions(ctx)
	return store.ComputeLeaderboard(games, limit), nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEnv(repo *memRepo) Env {
	return Env{
		Repo: repo,
		Rand: rand.New(rand.NewPCG(3, 5)),
	}
}

// startedScreen returns a screen whose game has been created and is
// waiting on the ready overlay.
func startedScreen(t *testing.T, cfg sess.GameConfig) (*Screen, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	s := New(testEnv(repo), cfg)
	s.Update(startMsg{})
	if s.engine == nil {
		t.Fatalf("game not started: %s", s.errMsg)
	}
	return s, repo
}

// running returns a screen with a question on display.
func running(t *testing.T, cfg sess.GameConfig) (*Screen, *memRepo) {
	t.Helper()
	s, repo := startedScreen(t, cfg)
	s.Update(specialKey(tea.KeyEnter))
	if s.engine.State().Paused {
		t.Fatal("expected enter to start the game")
	}
	return s, repo
}

func typeAnswer(s *Screen, n int) {
	for _, r := range fmt.Sprint(n) {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))
}

func activeAnswer(t *testing.T, s *Screen) int {
	t.Helper()
	q := s.engine.State().ActiveQuestion
	if q == nil {
		t.Fatal("no active question")
	}
	return q.Answer
}

func expectMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(T)
	if !ok {
		var zero T
		t.Fatalf("expected %T, got %T", zero, msg)
	}
	return msg
}

func TestPlayScreen_StartsOnReadyOverlay(t *testing.T) {
	s, repo := startedScreen(t, sess.GameConfig{PlayerName: "Ana"})

	st := s.engine.State()
	if !st.Paused || st.PauseReason != sess.PauseInitial {
		t.Fatalf("expected initial pause, got %q", st.PauseReason)
	}
	if !strings.Contains(s.View(80, 24), "READY, ANA?") {
		t.Error("expected ready overlay")
	}
	if len(repo.games) != 1 {
		t.Errorf("expected the new game to be saved, got %d games", len(repo.games))
	}
	if s.lives != 5 || s.maxLives != 5 {
		t.Errorf("lives = %d/%d", s.lives, s.maxLives)
	}
}

func TestPlayScreen_Title(t *testing.T) {
	s, _ := startedScreen(t, sess.GameConfig{PlayerName: "Ana"})
	if got := s.Title(); got != "Ana · Table of 2 A" {
		t.Errorf("title = %q", got)
	}
}

func TestPlayScreen_HandlesEscape(t *testing.T) {
	var scr screen.Screen = New(Env{}, sess.GameConfig{PlayerName: "Ana"})
	h, ok := scr.(screen.EscapeHandler)
	if !ok || !h.HandlesEscape() {
		t.Error("play screen should keep Esc for pausing")
	}
}

func TestPlayScreen_CorrectAnswer(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})

	typeAnswer(s, activeAnswer(t, s))

	if s.score != sess.PointsPerCorrect {
		t.Errorf("score = %d, want %d", s.score, sess.PointsPerCorrect)
	}
	if s.lastResult != sess.OutcomeCorrect {
		t.Errorf("last result = %v", s.lastResult)
	}
	if s.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", s.input.Value())
	}
	if !strings.Contains(s.Status(), "★ 10") {
		t.Errorf("status = %q", s.Status())
	}
}

func TestPlayScreen_LettersAreNotTyped(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})

	s.Update(keyPress('x'))
	s.Update(keyPress('7'))

	if s.input.Value() != "7" {
		t.Errorf("input = %q, want 7", s.input.Value())
	}
}

func TestPlayScreen_WrongAnswerOverlay(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})
	answer := activeAnswer(t, s)

	typeAnswer(s, answer+1)

	if s.wrong == nil || s.wrong.Answer != answer {
		t.Fatalf("expected the correct answer to be shown, got %+v", s.wrong)
	}
	if s.lives != 4 {
		t.Errorf("lives = %d, want 4", s.lives)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "NOT QUITE") || !strings.Contains(view, fmt.Sprintf("= %d", answer)) {
		t.Error("expected wrong answer overlay with the answer")
	}

	s.Update(keyPress('z'))
	if s.engine.State().Paused {
		t.Error("any key should resume after a wrong answer")
	}
	if s.wrong != nil {
		t.Error("overlay should be cleared")
	}
}

func TestPlayScreen_EscPausesAndResumes(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})

	s.Update(specialKey(tea.KeyEscape))
	st := s.engine.State()
	if !st.Paused || st.PauseReason != sess.PauseManual {
		t.Fatalf("expected manual pause, got %q", st.PauseReason)
	}
	if !strings.Contains(s.View(80, 24), "PAUSED") {
		t.Error("expected pause menu")
	}

	s.Update(keyPress('s'))
	if !s.showStats || !strings.Contains(s.View(80, 24), "STATS") {
		t.Error("expected stats view")
	}
	s.Update(keyPress('s'))
	if s.showStats {
		t.Error("expected stats view to close")
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.engine.State().Paused {
		t.Error("expected esc to resume")
	}
}

func TestPlayScreen_PhaseCursorStopsAtHighestPhase(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})
	s.Update(specialKey(tea.KeyEscape))

	s.Update(specialKey(tea.KeyRight))
	if s.cursor != 0 {
		t.Errorf("cursor moved onto a locked phase: %d", s.cursor)
	}

	s.Update(keyPress('g'))
	st := s.engine.State()
	if st.PauseReason != sess.PauseNextPhase || st.CurrentPhase != 2 {
		t.Errorf("expected phase 2 to restart, got phase %d (%q)", st.CurrentPhase, st.PauseReason)
	}
}

func TestPlayScreen_Tick(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana"})
	before := s.remaining

	s.Update(timerTickMsg{owner: New(Env{}, sess.GameConfig{})})
	if s.remaining != before {
		t.Error("ticks from another screen must be ignored")
	}

	_, cmd := s.Update(timerTickMsg{owner: s})
	if s.remaining != before-1 {
		t.Errorf("remaining = %d, want %d", s.remaining, before-1)
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
}

func TestPlayScreen_QuitSavesAndLeaves(t *testing.T) {
	s, repo := running(t, sess.GameConfig{PlayerName: "Ana"})
	typeAnswer(s, activeAnswer(t, s))

	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('q'))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("n should cancel")
	}

	s.Update(keyPress('q'))
	_, cmd := s.Update(keyPress('y'))
	msg := expectMsg[router.PopToRootMsg](t, cmd)
	if _, ok := msg.Refresh.(RefreshMsg); !ok {
		t.Errorf("expected refresh for the home screen, got %T", msg.Refresh)
	}

	saved := repo.games[s.engine.State().GameID]
	if saved == nil || saved.Score != sess.PointsPerCorrect {
		t.Errorf("expected saved score %d, got %+v", sess.PointsPerCorrect, saved)
	}
}

func TestPlayScreen_GameOver(t *testing.T) {
	s, _ := running(t, sess.GameConfig{PlayerName: "Ana", MaxLives: 1})

	typeAnswer(s, activeAnswer(t, s)+1)

	if s.over == nil {
		t.Fatal("expected game over")
	}
	if s.over.Rank != 1 || len(s.over.Leaderboard) != 1 {
		t.Errorf("summary = %+v", s.over)
	}
	if !strings.Contains(s.View(80, 24), "GAME OVER") {
		t.Error("expected game over view")
	}

	if _, cmd := s.Update(timerTickMsg{owner: s}); cmd != nil {
		t.Error("timer should stop after game over")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	expectMsg[router.PopToRootMsg](t, cmd)
}

func TestPlayScreen_ContinueRestoresGame(t *testing.T) {
	s, repo := running(t, sess.GameConfig{PlayerName: "Ana"})
	typeAnswer(s, activeAnswer(t, s))
	id := s.engine.State().GameID

	resumed := Continue(testEnv(repo), id)
	resumed.Update(startMsg{})
	if resumed.engine == nil {
		t.Fatalf("continue failed: %s", resumed.errMsg)
	}
	if resumed.score != sess.PointsPerCorrect {
		t.Errorf("score = %d", resumed.score)
	}
	if resumed.engine.State().PauseReason != sess.PauseInitial {
		t.Error("restored game should wait on the ready overlay")
	}
}

func TestPlayScreen_ContinueMissingGame(t *testing.T) {
	s := Continue(testEnv(newMemRepo()), "missing")
	s.Update(startMsg{})

	if s.errMsg == "" {
		t.Fatal("expected an error")
	}
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("expected error view")
	}
	_, cmd := s.Update(keyPress('x'))
	expectMsg[router.PopScreenMsg](t, cmd)
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s, _ := startedScreen(t, sess.GameConfig{PlayerName: "Ana"})
	if hints := s.KeyHints(); len(hints) == 0 || hints[0].Description != "Start" {
		t.Errorf("ready hints = %+v", hints)
	}

	s.Update(specialKey(tea.KeyEnter))
	if hints := s.KeyHints(); hints[len(hints)-1].Description != "Pause" {
		t.Errorf("running hints = %+v", hints)
	}
}
