package session

import (
	"fmt"
	"time"

	"github.com/abhisek/tabuada/internal/progress"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/store"
)

// Snapshot converts the game into its persisted form.
func (e *Engine) Snapshot() *store.SavedGame {
	questions := e.bank.Questions()
	qd := make([]store.QuestionData, 0, len(questions))
	for _, q := range questions {
		qd = append(qd, store.QuestionData{
			Multiplicand: q.Multiplicand,
			Multiplier:   q.Multiplier,
			Answer:       q.Answer,
			MasteryLevel: q.MasteryLevel,
		})
	}

	stats := make(map[string]*store.PhaseStatData)
	for key, s := range e.tracker.Snapshot() {
		stats[key] = phaseStatToData(s)
	}

	return &store.SavedGame{
		ID:           e.state.GameID,
		PlayerName:   e.state.PlayerName,
		Score:        e.state.Score,
		GameOver:     e.state.GameOver,
		CreatedAt:    e.state.CreatedAt,
		LastPlayedAt: e.state.LastPlayedAt,
		Data: store.GameData{
			Difficulty:      string(e.state.Difficulty),
			Lives:           e.state.Lives,
			MaxLives:        e.state.MaxLives,
			CurrentPhase:    e.state.CurrentPhase,
			CurrentSubPhase: string(e.state.CurrentSubPhase),
			HighestPhase:    e.state.HighestPhase,
			AttemptsHistory: append([]bool(nil), e.state.AttemptsHistory...),
			Questions:       qd,
			PhaseStats:      stats,
		},
	}
}

// load replaces the engine state with a saved game.
func (e *Engine) load(g *store.SavedGame) error {
	d := g.Data

	difficulty, err := quiz.ParseDifficulty(d.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedGame, err)
	}
	sub, err := quiz.ParseSubPhase(d.CurrentSubPhase)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedGame, err)
	}
	if !quiz.ValidPhase(d.CurrentPhase) {
		return fmt.Errorf("%w: phase %d", ErrInvalidSavedGame, d.CurrentPhase)
	}
	if err := quiz.ValidateLives(d.MaxLives); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedGame, err)
	}
	if d.Lives < 0 || d.Lives > d.MaxLives {
		return fmt.Errorf("%w: %d of %d lives", ErrInvalidSavedGame, d.Lives, d.MaxLives)
	}

	questions := make([]quiz.Question, 0, len(d.Questions))
	for _, q := range d.Questions {
		questions = append(questions, quiz.Question{
			Multiplicand: q.Multiplicand,
			Multiplier:   q.Multiplier,
			Answer:       q.Answer,
			MasteryLevel: q.MasteryLevel,
		})
	}
	if err := e.bank.Restore(questions); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSavedGame, err)
	}

	now := e.now()
	stats := make(map[string]progress.PhaseStat, len(d.PhaseStats))
	for key, sd := range d.PhaseStats {
		if sd != nil {
			stats[key] = phaseStatFromData(sd)
		}
	}
	e.tracker.Restore(stats, now)

	e.settings = difficulty.Settings()
	e.state = State{
		GameID:          g.ID,
		PlayerName:      g.PlayerName,
		CreatedAt:       g.CreatedAt,
		LastPlayedAt:    g.LastPlayedAt,
		CurrentPhase:    d.CurrentPhase,
		CurrentSubPhase: sub,
		HighestPhase:    max(d.HighestPhase, d.CurrentPhase),
		Score:           g.Score,
		Lives:           d.Lives,
		MaxLives:        d.MaxLives,
		Difficulty:      difficulty,
		GameOver:        g.GameOver || d.Lives == 0,
		AttemptsHistory: d.AttemptsHistory,
		TimeRemaining:   e.settings.BaseSeconds(),
	}

	if e.bank.Len() == 0 {
		e.bank.Initialize(e.state.CurrentPhase, e.state.CurrentSubPhase)
	}
	e.tracker.StartSubPhase(e.state.CurrentPhase, e.state.CurrentSubPhase, now)

	if e.state.GameOver {
		e.pause(PauseGameOver)
	} else {
		e.pause(PauseInitial)
	}
	return nil
}

func phaseStatToData(s progress.PhaseStat) *store.PhaseStatData {
	d := &store.PhaseStatData{
		Completed:   s.Completed,
		Errors:      s.Errors,
		Corrects:    s.Corrects,
		Attempts:    s.Attempts,
		TotalTimeMs: s.TotalTime.Milliseconds(),
	}
	if s.BestTime != nil {
		ms := s.BestTime.Milliseconds()
		d.BestTimeMs = &ms
	}
	if s.CompletionDate != nil {
		str := s.CompletionDate.UTC().Format(time.RFC3339)
		d.CompletionDate = &str
	}
	return d
}

func phaseStatFromData(d *store.PhaseStatData) progress.PhaseStat {
	s := progress.PhaseStat{
		Completed: d.Completed,
		Errors:    d.Errors,
		Corrects:  d.Corrects,
		Attempts:  d.Attempts,
		TotalTime: time.Duration(d.TotalTimeMs) * time.Millisecond,
	}
	if d.BestTimeMs != nil {
		best := time.Duration(*d.BestTimeMs) * time.Millisecond
		s.BestTime = &best
	}
	if d.CompletionDate != nil {
		t, err := time.Parse(time.RFC3339, *d.CompletionDate)
		if err == nil {
			s.CompletionDate = &t
		}
	}
	return s
}
