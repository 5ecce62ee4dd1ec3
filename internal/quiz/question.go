package quiz

import "fmt"

// MaxMastery is the mastery level at which a question counts as learned.
const MaxMastery = 2

// Key identifies a question within a bank, formatted "{multiplicand}x{multiplier}".
type Key string

// KeyFor returns the bank key for a multiplication fact.
func KeyFor(multiplicand, multiplier int) Key {
	return Key(fmt.Sprintf("%dx%d", multiplicand, multiplier))
}

// Question is a single multiplication fact and the learner's mastery of it.
type Question struct {
	Multiplicand int
	Multiplier   int
	Answer       int
	MasteryLevel int
}

// NewQuestion creates an unmastered question for multiplicand x multiplier.
func NewQuestion(multiplicand, multiplier int) Question {
	return Question{
		Multiplicand: multiplicand,
		Multiplier:   multiplier,
		Answer:       multiplicand * multiplier,
	}
}

// Key returns the bank key of the question.
func (q Question) Key() Key {
	return KeyFor(q.Multiplicand, q.Multiplier)
}

// Mastered reports whether the question has reached MaxMastery.
func (q Question) Mastered() bool {
	return q.MasteryLevel >= MaxMastery
}

// Text renders the question the way it is shown to the player.
func (q Question) Text() string {
	return fmt.Sprintf("%d x %d", q.Multiplicand, q.Multiplier)
}

// record applies one answer result: a correct answer raises the level by one
// (capped at MaxMastery), a wrong one drops it back to zero.
func (q *Question) record(correct bool) {
	if !correct {
		q.MasteryLevel = 0
		return
	}
	if q.MasteryLevel < MaxMastery {
		q.MasteryLevel++
	}
}
