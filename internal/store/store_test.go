package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tabuada.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleGame(name string, score int, playedAt time.Time) *SavedGame {
	best := int64(1200)
	done := playedAt.Format(time.RFC3339)
	return &SavedGame{
		PlayerName:   name,
		Score:        score,
		LastPlayedAt: playedAt,
		Data: GameData{
			Difficulty:      "medium",
			Lives:           3,
			MaxLives:        5,
			CurrentPhase:    4,
			CurrentSubPhase: "B",
			HighestPhase:    4,
			AttemptsHistory: []bool{true, false, true},
			Questions: []QuestionData{
				{Multiplicand: 4, Multiplier: 6, Answer: 24, MasteryLevel: 2},
				{Multiplicand: 4, Multiplier: 7, Answer: 28, MasteryLevel: 1},
			},
			PhaseStats: map[string]*PhaseStatData{
				"4A": {Completed: true, Corrects: 10, Attempts: 10, TotalTimeMs: 21000, BestTimeMs: &best, CompletionDate: &done},
			},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='saved_games'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "saved_games", name)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabuada.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.GameRepo().SaveSession(ctx, sampleGame("Ana", 40, time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	g, err := s.GameRepo().LoadSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", g.PlayerName)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("TABUADA_DB", filepath.Join(dir, "custom", "games.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "games.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("TABUADA_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tabuada", "tabuada.db"), p)
}
