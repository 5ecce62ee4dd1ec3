package session

import (
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

const (
	// PointsPerCorrect is added to the score for every correct answer.
	PointsPerCorrect = 10

	// MaxAttemptsHistory is the number of recent results kept for display.
	MaxAttemptsHistory = 5
)

// PauseReason records why the game is paused.
type PauseReason string

const (
	PauseNone        PauseReason = ""
	PauseInitial     PauseReason = "initial"      // waiting for the player to start
	PauseManual      PauseReason = "manual"       // paused by the player
	PauseNextPhase   PauseReason = "next_phase"   // announcing a new phase or part
	PauseWrongAnswer PauseReason = "wrong_answer" // showing the correct answer
	PauseGameOver    PauseReason = "game_over"
)

// Outcome is the result of submitting an answer.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // paused, game over or not a number
	OutcomeCorrect
	OutcomeWrong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// State is the observable state of a game.
type State struct {
	// GameID is assigned by the first successful save.
	GameID string

	PlayerName   string
	CreatedAt    time.Time
	LastPlayedAt time.Time

	CurrentPhase    int
	CurrentSubPhase quiz.SubPhase
	HighestPhase    int

	Score    int
	Lives    int
	MaxLives int

	Difficulty quiz.Difficulty

	Paused      bool
	PauseReason PauseReason
	GameOver    bool

	// ActiveQuestion is nil before the first question and between phases.
	ActiveQuestion *quiz.Question

	// AttemptsHistory holds the most recent results, oldest first.
	AttemptsHistory []bool

	// TimeRemaining is the countdown for the active question, in seconds.
	TimeRemaining int
}

// GameConfig holds the choices made when starting a new game.
type GameConfig struct {
	PlayerName string
	Difficulty quiz.Difficulty
	MaxLives   int
}
