package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/tabuada/internal/progress"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/store"
)

var (
	// ErrEmptyPlayerName is returned when a new game has no player name.
	ErrEmptyPlayerName = errors.New("player name is required")

	// ErrPhaseLocked is returned when changing to a phase not yet reached.
	ErrPhaseLocked = errors.New("phase not unlocked")

	// ErrGameOver is returned by operations that need a running game.
	ErrGameOver = errors.New("game is over")

	// ErrPersistence wraps failures to save or query games. The in-memory
	// game keeps running when it is returned.
	ErrPersistence = errors.New("persistence failed")

	// ErrInvalidSavedGame is returned when a saved game cannot be restored.
	ErrInvalidSavedGame = errors.New("invalid saved game")
)

// Gateway is the persistence the engine needs.
type Gateway interface {
	SaveSession(ctx context.Context, game *store.SavedGame) (string, error)
	LoadSession(ctx context.Context, id string) (*store.SavedGame, error)
	Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardEntry, error)
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	// Gateway persists the game after every event. Nil disables saving.
	Gateway Gateway

	Presenter Presenter
	Logger    *slog.Logger

	// Rand drives question selection and the final phase's random facts.
	Rand *rand.Rand

	// Now is the clock used for statistics and timestamps.
	Now func() time.Time

	// LeaderboardSize is the number of rows reported at game over.
	LeaderboardSize int
}

// Engine runs one game. It is driven from a single goroutine and is not
// safe for concurrent use.
type Engine struct {
	state    State
	settings quiz.Settings

	bank     *quiz.Bank
	selector *quiz.Selector
	tracker  *progress.Tracker

	gateway         Gateway
	presenter       Presenter
	logger          *slog.Logger
	now             func() time.Time
	leaderboardSize int

	// gameOverPending defers the game-over report until the event is saved.
	gameOverPending bool
}

func newEngine(opts Options) *Engine {
	e := &Engine{
		gateway:         opts.Gateway,
		presenter:       opts.Presenter,
		logger:          opts.Logger,
		now:             opts.Now,
		leaderboardSize: opts.LeaderboardSize,
		tracker:         progress.NewTracker(),
	}
	if e.presenter == nil {
		e.presenter = NopPresenter{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.leaderboardSize <= 0 {
		e.leaderboardSize = store.DefaultLeaderboardSize
	}
	e.bank = quiz.NewBank(opts.Rand)
	e.selector = quiz.NewSelector(opts.Rand)
	return e
}

// NewGame creates a game at the first phase with full lives. Call Start to
// present it.
func NewGame(opts Options, cfg GameConfig) (*Engine, error) {
	name := strings.TrimSpace(cfg.PlayerName)
	if name == "" {
		return nil, ErrEmptyPlayerName
	}
	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = quiz.DifficultyMedium
	}
	difficulty, err := quiz.ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}
	maxLives := cfg.MaxLives
	if maxLives == 0 {
		maxLives = quiz.DefaultMaxLives
	}
	if err := quiz.ValidateLives(maxLives); err != nil {
		return nil, err
	}

	e := newEngine(opts)
	now := e.now()
	e.settings = difficulty.Settings()
	e.state = State{
		PlayerName:      name,
		CreatedAt:       now,
		LastPlayedAt:    now,
		CurrentPhase:    quiz.FirstPhase,
		CurrentSubPhase: quiz.SubPhaseA,
		HighestPhase:    quiz.FirstPhase,
		Lives:           maxLives,
		MaxLives:        maxLives,
		Difficulty:      difficulty,
		TimeRemaining:   e.settings.BaseSeconds(),
	}
	e.bank.Initialize(quiz.FirstPhase, quiz.SubPhaseA)
	e.tracker.StartSubPhase(quiz.FirstPhase, quiz.SubPhaseA, now)
	return e, nil
}

// Restore loads a saved game. The restored game starts paused; call Start
// to present it.
func Restore(ctx context.Context, opts Options, id string) (*Engine, error) {
	if opts.Gateway == nil {
		return nil, fmt.Errorf("restore game %s: no gateway configured", id)
	}
	saved, err := opts.Gateway.LoadSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", id, err)
	}

	e := newEngine(opts)
	if err := e.load(saved); err != nil {
		return nil, fmt.Errorf("restore game %s: %w", id, err)
	}
	e.logger.Info("game restored", "id", id, "player", e.state.PlayerName,
		"phase", e.state.CurrentPhase, "sub_phase", e.state.CurrentSubPhase)
	return e, nil
}

// Start presents the whole game state and waits, paused, for the player.
// It saves the game so that it has an ID.
func (e *Engine) Start(ctx context.Context) error {
	if !e.state.GameOver {
		e.pause(PauseInitial)
		if e.state.ActiveQuestion == nil {
			e.GenerateNextQuestion()
		}
	}

	if q := e.state.ActiveQuestion; q != nil {
		e.presenter.QuestionChanged(q.Multiplicand, q.Multiplier)
	}
	e.presenter.TimerChanged(e.state.TimeRemaining)
	e.presenter.LivesChanged(e.state.Lives, e.state.MaxLives)
	e.presenter.ScoreChanged(e.state.Score)
	e.presenter.PhaseProgressChanged(e.PhaseProgress())
	return e.commit(ctx)
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	s := e.state
	if s.ActiveQuestion != nil {
		q := *s.ActiveQuestion
		s.ActiveQuestion = &q
	}
	s.AttemptsHistory = append([]bool(nil), s.AttemptsHistory...)
	return s
}

// Settings returns the timing settings of the game's difficulty.
func (e *Engine) Settings() quiz.Settings {
	return e.settings
}

// Pause stops the countdown. Pausing an already paused or finished game
// keeps the original reason.
func (e *Engine) Pause(reason PauseReason) {
	if e.state.GameOver || e.state.Paused {
		return
	}
	e.pause(reason)
}

func (e *Engine) pause(reason PauseReason) {
	e.state.Paused = true
	e.state.PauseReason = reason
}

// Resume continues a paused game with a full countdown. After a wrong
// answer, or when no question is active, a new question is presented.
func (e *Engine) Resume() {
	if e.state.GameOver || !e.state.Paused {
		return
	}
	reason := e.state.PauseReason
	e.state.Paused = false
	e.state.PauseReason = PauseNone

	if reason == PauseWrongAnswer || e.state.ActiveQuestion == nil {
		e.GenerateNextQuestion()
		return
	}
	e.restartTimer()
}

// GenerateNextQuestion selects and presents the next question. A complete
// bank runs the phase advance first.
func (e *Engine) GenerateNextQuestion() {
	key, ok := e.selector.SelectNext(e.bank)
	if !ok {
		if !e.bank.IsComplete() {
			panic("session: question bank is empty")
		}
		e.completeSubPhase(e.now())
		if key, ok = e.selector.SelectNext(e.bank); !ok {
			panic("session: new question bank has no questions")
		}
	}

	q, _ := e.bank.Get(key)
	e.state.ActiveQuestion = &q
	e.presenter.QuestionChanged(q.Multiplicand, q.Multiplier)
	if !e.state.Paused {
		e.restartTimer()
	}
}

func (e *Engine) restartTimer() {
	e.state.TimeRemaining = e.settings.BaseSeconds()
	e.presenter.TimerChanged(e.state.TimeRemaining)
}

// PhaseProgress returns the phase map.
func (e *Engine) PhaseProgress() []PhaseProgress {
	phases := quiz.Phases()
	out := make([]PhaseProgress, 0, len(phases))
	for _, p := range phases {
		out = append(out, PhaseProgress{
			Phase: p,
			Name:  quiz.PhaseName(p),
			State: e.tracker.DisplayState(p, e.state.CurrentPhase, e.state.CurrentSubPhase, e.state.HighestPhase),
		})
	}
	return out
}

// MasteredCount returns how many questions of the current bank are mastered.
func (e *Engine) MasteredCount() int {
	n := 0
	for _, q := range e.bank.Questions() {
		if q.Mastered() {
			n++
		}
	}
	return n
}

// PhaseStat returns the statistics of one sub-phase.
func (e *Engine) PhaseStat(phase int, sub quiz.SubPhase) progress.PhaseStat {
	return e.tracker.Stat(phase, sub)
}

// CombinedStats returns the statistics of both halves of a phase.
func (e *Engine) CombinedStats(phase int) progress.PhaseStat {
	return e.tracker.CombinedStats(phase)
}

// Save persists the game.
func (e *Engine) Save(ctx context.Context) error {
	return e.save(ctx)
}

// commit saves the settled state of an event and reports a pending game over.
func (e *Engine) commit(ctx context.Context) error {
	err := e.save(ctx)
	if e.gameOverPending {
		e.gameOverPending = false
		err = errors.Join(err, e.reportGameOver(ctx))
	}
	return err
}

func (e *Engine) save(ctx context.Context) error {
	if e.gateway == nil {
		return nil
	}
	id, err := e.gateway.SaveSession(ctx, e.Snapshot())
	if err != nil {
		e.logger.Error("save game failed", "id", e.state.GameID, "error", err)
		return fmt.Errorf("%w: save game: %w", ErrPersistence, err)
	}
	e.state.GameID = id
	return nil
}

func (e *Engine) reportGameOver(ctx context.Context) error {
	summary := GameOverSummary{
		PlayerName:   e.state.PlayerName,
		Score:        e.state.Score,
		HighestPhase: e.state.HighestPhase,
	}

	var err error
	if e.gateway != nil {
		board, lerr := e.gateway.Leaderboard(ctx, 0)
		if lerr != nil {
			e.logger.Error("leaderboard query failed", "error", lerr)
			err = fmt.Errorf("%w: leaderboard: %w", ErrPersistence, lerr)
		}
		for _, entry := range board {
			if entry.PlayerName == e.state.PlayerName {
				summary.Rank = entry.Rank
				break
			}
		}
		summary.Leaderboard = board[:min(len(board), e.leaderboardSize)]
	}

	e.logger.Info("game over", "id", e.state.GameID, "player", e.state.PlayerName,
		"score", e.state.Score, "rank", summary.Rank)
	e.presenter.GameOver(summary)
	return err
}
