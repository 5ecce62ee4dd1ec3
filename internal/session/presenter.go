package session

import (
	"github.com/abhisek/tabuada/internal/progress"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/store"
)

// Presenter receives state changes from the engine. Calls are made
// synchronously from the goroutine driving the engine.
type Presenter interface {
	QuestionChanged(multiplicand, multiplier int)
	TimerChanged(remaining int)
	LivesChanged(lives, maxLives int)
	ScoreChanged(score int)
	PhaseProgressChanged(phases []PhaseProgress)

	// WrongAnswer is called with the missed question, including its answer.
	// The game stays paused until Resume.
	WrongAnswer(q quiz.Question)

	// PhaseCompleted is called when a sub-phase is finished. The game
	// stays paused until Resume.
	PhaseCompleted(summary PhaseSummary)

	GameOver(summary GameOverSummary)
}

// NopPresenter ignores every event. Embed it to handle only some of them.
type NopPresenter struct{}

func (NopPresenter) QuestionChanged(int, int)             {}
func (NopPresenter) TimerChanged(int)                     {}
func (NopPresenter) LivesChanged(int, int)                {}
func (NopPresenter) ScoreChanged(int)                     {}
func (NopPresenter) PhaseProgressChanged([]PhaseProgress) {}
func (NopPresenter) WrongAnswer(quiz.Question)            {}
func (NopPresenter) PhaseCompleted(PhaseSummary)          {}
func (NopPresenter) GameOver(GameOverSummary)             {}

// PhaseProgress is one entry of the phase map.
type PhaseProgress struct {
	Phase int
	Name  string
	State progress.DisplayState
}

// PhaseSummary describes a finished sub-phase.
type PhaseSummary struct {
	Phase    int
	SubPhase quiz.SubPhase

	// Stats covers the finished part A, or the whole phase once part B is done.
	Stats progress.PhaseStat

	LifeGained bool

	NextPhase    int
	NextSubPhase quiz.SubPhase

	// GameCompleted is set when the final phase was finished.
	GameCompleted bool
}

// GameOverSummary describes a finished game.
type GameOverSummary struct {
	PlayerName   string
	Score        int
	HighestPhase int

	// Rank is the player's leaderboard position, 0 if unknown.
	Rank        int
	Leaderboard []store.LeaderboardEntry
}
