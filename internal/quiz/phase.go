package quiz

import "fmt"

const (
	// FirstPhase is the times table the game starts with.
	FirstPhase = 2

	// TerminalPhase is the bonus phase mixing random facts. Completing it
	// loops back to its own first part.
	TerminalPhase = 10

	// QuestionsPerBank is the number of questions generated for every sub-phase.
	QuestionsPerBank = 5
)

// SubPhase is one half of a phase.
type SubPhase string

const (
	SubPhaseA SubPhase = "A"
	SubPhaseB SubPhase = "B"
)

// Valid reports whether s is a known sub-phase.
func (s SubPhase) Valid() bool {
	return s == SubPhaseA || s == SubPhaseB
}

// ParseSubPhase converts a stored sub-phase label.
func ParseSubPhase(s string) (SubPhase, error) {
	sp := SubPhase(s)
	if !sp.Valid() {
		return "", fmt.Errorf("unknown sub-phase %q", s)
	}
	return sp, nil
}

// ValidPhase reports whether phase is within FirstPhase..TerminalPhase.
func ValidPhase(phase int) bool {
	return phase >= FirstPhase && phase <= TerminalPhase
}

// Phases returns every phase in play order.
func Phases() []int {
	phases := make([]int, 0, TerminalPhase-FirstPhase+1)
	for p := FirstPhase; p <= TerminalPhase; p++ {
		phases = append(phases, p)
	}
	return phases
}

// PhaseName is the label shown for a phase.
func PhaseName(phase int) string {
	if phase == TerminalPhase {
		return "Bonus"
	}
	return fmt.Sprintf("Table of %d", phase)
}
