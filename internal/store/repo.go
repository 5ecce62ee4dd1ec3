package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a saved game does not exist.
var ErrNotFound = errors.New("saved game not found")

// SavedGame is a persisted game session. Scalar fields are stored as
// columns for listing and ranking; Data holds the full game state.
type SavedGame struct {
	ID           string
	PlayerName   string
	Score        int
	GameOver     bool
	CreatedAt    time.Time
	LastPlayedAt time.Time
	Data         GameData
}

// GameData captures everything needed to resume a game.
type GameData struct {
	Version         int                       `json:"version"`
	Difficulty      string                    `json:"difficulty"`
	Lives           int                       `json:"lives"`
	MaxLives        int                       `json:"max_lives"`
	CurrentPhase    int                       `json:"current_phase"`
	CurrentSubPhase string                    `json:"current_sub_phase"`
	HighestPhase    int                       `json:"highest_phase"`
	AttemptsHistory []bool                    `json:"attempts_history,omitempty"`
	Questions       []QuestionData            `json:"questions"`
	PhaseStats      map[string]*PhaseStatData `json:"phase_stats,omitempty"`
}

// QuestionData is the persisted form of a question in the active bank.
type QuestionData struct {
	Multiplicand int `json:"multiplicand"`
	Multiplier   int `json:"multiplier"`
	Answer       int `json:"answer"`
	MasteryLevel int `json:"mastery_level"`
}

// PhaseStatData is the persisted form of one sub-phase's statistics.
type PhaseStatData struct {
	Completed      bool    `json:"completed"`
	Errors         int     `json:"errors"`
	Corrects       int     `json:"corrects"`
	Attempts       int     `json:"attempts"`
	TotalTimeMs    int64   `json:"total_time_ms"`
	BestTimeMs     *int64  `json:"best_time_ms,omitempty"`
	CompletionDate *string `json:"completion_date,omitempty"` // RFC3339
}

// HighestPhase returns the highest phase reached in the game.
func (g *SavedGame) HighestPhase() int {
	return max(g.Data.HighestPhase, g.Data.CurrentPhase)
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank         int
	PlayerName   string
	Score        int
	HighestPhase int
	GameID       string
	PlayedAt     time.Time
}

// GameRepo manages saved game sessions.
type GameRepo interface {
	// SaveSession inserts or updates a game. A game without an ID gets a
	// new one, which is written back to game.ID and returned.
	SaveSession(ctx context.Context, game *SavedGame) (string, error)

	// LoadSession returns the game with the given ID, or ErrNotFound.
	LoadSession(ctx context.Context, id string) (*SavedGame, error)

	// DeleteSession removes a game and reports whether it existed.
	DeleteSession(ctx context.Context, id string) (bool, error)

	// ListSessions returns all games, most recently played first.
	ListSessions(ctx context.Context) ([]*SavedGame, error)

	// DeleteAll removes every saved game and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)

	// Leaderboard returns the best score of each player, highest first.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
