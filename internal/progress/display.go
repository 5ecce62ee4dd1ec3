package progress

import "github.com/abhisek/tabuada/internal/quiz"

// DisplayState is how a phase is shown on the phase map.
type DisplayState string

const (
	DisplayLocked   DisplayState = "locked"
	DisplayNone     DisplayState = "none"
	DisplayStarted  DisplayState = "started"
	DisplayHalf     DisplayState = "half"
	DisplayComplete DisplayState = "complete"
)

// DisplayState resolves the phase-map state of phase given where the
// player currently is and the highest phase they have reached.
func (t *Tracker) DisplayState(phase, currentPhase int, currentSub quiz.SubPhase, highestPhase int) DisplayState {
	switch {
	case phase < currentPhase:
		return DisplayComplete
	case phase > currentPhase:
		if phase <= highestPhase {
			return DisplayNone
		}
		return DisplayLocked
	}

	if t.Stat(phase, quiz.SubPhaseB).Completed {
		return DisplayComplete
	}
	if currentSub == quiz.SubPhaseB {
		return DisplayHalf
	}
	return DisplayStarted
}

// Unlocked reports whether the player may navigate to phase.
func (s DisplayState) Unlocked() bool {
	return s != DisplayLocked
}
