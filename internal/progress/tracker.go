package progress

import (
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// Tracker keeps per-sub-phase statistics for a game.
type Tracker struct {
	stats map[string]*PhaseStat
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{stats: make(map[string]*PhaseStat)}
}

// Restore replaces all statistics with saved ones. Timing markers restart at now.
func (t *Tracker) Restore(stats map[string]PhaseStat, now time.Time) {
	t.stats = make(map[string]*PhaseStat, len(stats))
	for k, s := range stats {
		s.startedAt = now
		t.stats[k] = &s
	}
}

func (t *Tracker) get(phase int, sub quiz.SubPhase) *PhaseStat {
	key := StatKey(phase, sub)
	s, ok := t.stats[key]
	if !ok {
		s = &PhaseStat{}
		t.stats[key] = s
	}
	return s
}

// StartSubPhase creates the sub-phase's stat if needed and resets its timing marker.
func (t *Tracker) StartSubPhase(phase int, sub quiz.SubPhase, now time.Time) {
	t.get(phase, sub).startedAt = now
}

// RecordAttempt counts an answer for the sub-phase and adds the time spent
// since the previous attempt (or the sub-phase start).
func (t *Tracker) RecordAttempt(phase int, sub quiz.SubPhase, correct bool, now time.Time) {
	t.get(phase, sub).record(correct, now)
}

// CompleteSubPhase marks the sub-phase complete. The first completion date is kept.
func (t *Tracker) CompleteSubPhase(phase int, sub quiz.SubPhase, now time.Time) {
	s := t.get(phase, sub)
	s.Completed = true
	if s.CompletionDate == nil {
		done := now
		s.CompletionDate = &done
	}
}

// ResetPhase discards both sub-phase statistics of phase.
func (t *Tracker) ResetPhase(phase int, now time.Time) {
	t.stats[StatKey(phase, quiz.SubPhaseA)] = &PhaseStat{startedAt: now}
	t.stats[StatKey(phase, quiz.SubPhaseB)] = &PhaseStat{}
}

// Stat returns a copy of the sub-phase's statistics (zero value if never started).
func (t *Tracker) Stat(phase int, sub quiz.SubPhase) PhaseStat {
	if s, ok := t.stats[StatKey(phase, sub)]; ok {
		return *s
	}
	return PhaseStat{}
}

// CombinedStats merges both halves of a phase. Counters and total time are
// summed, the best time is the faster of the two and the completion date
// is that of part B.
func (t *Tracker) CombinedStats(phase int) PhaseStat {
	a := t.Stat(phase, quiz.SubPhaseA)
	b := t.Stat(phase, quiz.SubPhaseB)

	combined := PhaseStat{
		Completed:      b.Completed,
		Errors:         a.Errors + b.Errors,
		Corrects:       a.Corrects + b.Corrects,
		Attempts:       a.Attempts + b.Attempts,
		TotalTime:      a.TotalTime + b.TotalTime,
		CompletionDate: b.CompletionDate,
	}
	switch {
	case a.BestTime != nil && b.BestTime != nil:
		best := min(*a.BestTime, *b.BestTime)
		combined.BestTime = &best
	case a.BestTime != nil:
		best := *a.BestTime
		combined.BestTime = &best
	case b.BestTime != nil:
		best := *b.BestTime
		combined.BestTime = &best
	}
	return combined
}

// Snapshot returns copies of all statistics keyed by StatKey.
func (t *Tracker) Snapshot() map[string]PhaseStat {
	out := make(map[string]PhaseStat, len(t.stats))
	for k, s := range t.stats {
		out[k] = *s
	}
	return out
}
