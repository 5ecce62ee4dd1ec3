package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// SubmitAnswer checks the player's answer against the active question.
// Input is ignored while paused, after game over or when it is not an
// integer. The outcome is valid even when a persistence error is returned.
func (e *Engine) SubmitAnswer(ctx context.Context, input string) (Outcome, error) {
	if e.state.Paused || e.state.GameOver || e.state.ActiveQuestion == nil {
		return OutcomeIgnored, nil
	}
	answer, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return OutcomeIgnored, nil
	}

	q := *e.state.ActiveQuestion
	correct := answer == q.Answer
	now := e.now()
	e.state.LastPlayedAt = now

	if err := e.bank.RecordResult(q.Key(), correct); err != nil {
		panic(fmt.Sprintf("session: active question missing from bank: %v", err))
	}
	e.tracker.RecordAttempt(e.state.CurrentPhase, e.state.CurrentSubPhase, correct, now)
	e.pushHistory(correct)

	if correct {
		e.state.Score += PointsPerCorrect
		e.presenter.ScoreChanged(e.state.Score)
		if e.bank.IsComplete() {
			e.completeSubPhase(now)
		}
		e.GenerateNextQuestion()
		return OutcomeCorrect, e.commit(ctx)
	}

	e.pause(PauseWrongAnswer)
	e.presenter.WrongAnswer(q)
	e.loseLife()
	return OutcomeWrong, e.commit(ctx)
}

// LoseLife removes one life. Losing the last one ends the game.
func (e *Engine) LoseLife(ctx context.Context) error {
	if e.state.GameOver {
		return nil
	}
	e.loseLife()
	return e.commit(ctx)
}

func (e *Engine) loseLife() {
	if e.state.Lives == 0 {
		return
	}
	e.state.Lives--
	e.presenter.LivesChanged(e.state.Lives, e.state.MaxLives)
	if e.state.Lives == 0 {
		e.state.GameOver = true
		e.pause(PauseGameOver)
		e.gameOverPending = true
	}
}

// Tick advances the countdown by one second. When it reaches zero the
// player loses a life and a new question is presented; the question's
// mastery is left as it was.
func (e *Engine) Tick(ctx context.Context) error {
	if e.state.Paused || e.state.GameOver || e.state.ActiveQuestion == nil {
		return nil
	}
	e.state.TimeRemaining--
	e.presenter.TimerChanged(e.state.TimeRemaining)
	if e.state.TimeRemaining > 0 {
		return nil
	}

	e.logger.Debug("question timed out", "question", e.state.ActiveQuestion.Key())
	e.state.LastPlayedAt = e.now()
	e.pushHistory(false)
	e.loseLife()
	if !e.state.GameOver {
		e.GenerateNextQuestion()
	}
	return e.commit(ctx)
}

// ChangePhase restarts the game at an already reached phase. The phase's
// statistics are reset and it starts again from part A.
func (e *Engine) ChangePhase(ctx context.Context, phase int) error {
	if e.state.GameOver {
		return ErrGameOver
	}
	if phase < quiz.FirstPhase || phase > e.state.HighestPhase {
		return fmt.Errorf("phase %d: %w", phase, ErrPhaseLocked)
	}

	now := e.now()
	e.state.LastPlayedAt = now
	e.state.CurrentPhase = phase
	e.state.CurrentSubPhase = quiz.SubPhaseA
	e.tracker.ResetPhase(phase, now)
	e.startSubPhase(now)
	e.pause(PauseNextPhase)
	e.state.TimeRemaining = e.settings.BaseSeconds()
	e.presenter.TimerChanged(e.state.TimeRemaining)
	e.GenerateNextQuestion()
	e.presenter.PhaseProgressChanged(e.PhaseProgress())

	e.logger.Info("phase changed", "id", e.state.GameID, "phase", phase)
	return e.commit(ctx)
}

// completeSubPhase finishes the current sub-phase, grants a life and
// moves to the next part. The final phase loops back to its part A with
// fresh statistics. The game pauses until the player acknowledges.
func (e *Engine) completeSubPhase(now time.Time) {
	phase, sub := e.state.CurrentPhase, e.state.CurrentSubPhase
	e.tracker.CompleteSubPhase(phase, sub, now)

	summary := PhaseSummary{Phase: phase, SubPhase: sub}
	if sub == quiz.SubPhaseA {
		summary.Stats = e.tracker.Stat(phase, sub)
	} else {
		summary.Stats = e.tracker.CombinedStats(phase)
	}

	if e.state.Lives < e.state.MaxLives {
		e.state.Lives++
		summary.LifeGained = true
		e.presenter.LivesChanged(e.state.Lives, e.state.MaxLives)
	}

	switch {
	case sub == quiz.SubPhaseA:
		e.state.CurrentSubPhase = quiz.SubPhaseB
	case phase == quiz.TerminalPhase:
		e.state.CurrentSubPhase = quiz.SubPhaseA
		e.tracker.ResetPhase(phase, now)
		summary.GameCompleted = true
	default:
		e.state.CurrentPhase++
		e.state.CurrentSubPhase = quiz.SubPhaseA
	}
	e.state.HighestPhase = max(e.state.HighestPhase, e.state.CurrentPhase)
	e.startSubPhase(now)

	summary.NextPhase = e.state.CurrentPhase
	summary.NextSubPhase = e.state.CurrentSubPhase

	e.pause(PauseNextPhase)
	e.logger.Info("sub-phase complete", "id", e.state.GameID,
		"phase", phase, "sub_phase", sub,
		"next_phase", summary.NextPhase, "next_sub_phase", summary.NextSubPhase)
	e.presenter.PhaseCompleted(summary)
	e.presenter.PhaseProgressChanged(e.PhaseProgress())
}

func (e *Engine) startSubPhase(now time.Time) {
	e.bank.Initialize(e.state.CurrentPhase, e.state.CurrentSubPhase)
	e.tracker.StartSubPhase(e.state.CurrentPhase, e.state.CurrentSubPhase, now)
	e.state.ActiveQuestion = nil
}

func (e *Engine) pushHistory(correct bool) {
	h := append(e.state.AttemptsHistory, correct)
	if len(h) > MaxAttemptsHistory {
		h = h[len(h)-MaxAttemptsHistory:]
	}
	e.state.AttemptsHistory = h
}
