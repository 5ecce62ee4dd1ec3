package progress

import (
	"fmt"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// PhaseStat accumulates the results of one sub-phase.
type PhaseStat struct {
	Completed      bool
	Errors         int
	Corrects       int
	Attempts       int
	TotalTime      time.Duration
	BestTime       *time.Duration // fastest correct answer; nil until one is recorded
	CompletionDate *time.Time

	startedAt time.Time
}

// Accuracy returns the percentage of correct attempts (0 when nothing was attempted).
func (s PhaseStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Corrects) * 100 / float64(s.Attempts)
}

// AverageTime returns the mean time per attempt.
func (s PhaseStat) AverageTime() time.Duration {
	if s.Attempts == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Attempts)
}

// record adds one attempt measured from the timing marker to now.
func (s *PhaseStat) record(correct bool, now time.Time) {
	elapsed := now.Sub(s.startedAt)
	if s.startedAt.IsZero() || elapsed < 0 {
		elapsed = 0
	}

	s.Attempts++
	s.TotalTime += elapsed
	if correct {
		s.Corrects++
		if s.BestTime == nil || elapsed < *s.BestTime {
			best := elapsed
			s.BestTime = &best
		}
	} else {
		s.Errors++
	}
	s.startedAt = now
}

// StatKey builds the tracker key of a sub-phase, e.g. "3A".
func StatKey(phase int, sub quiz.SubPhase) string {
	return fmt.Sprintf("%d%s", phase, sub)
}
