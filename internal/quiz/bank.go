package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	// ErrUnknownQuestion is returned when a key is not part of the current bank.
	ErrUnknownQuestion = errors.New("question not in bank")

	// ErrInvalidQuestion is returned when restored question data is inconsistent.
	ErrInvalidQuestion = errors.New("invalid question")
)

// Bank holds the questions of the active sub-phase keyed by their Key.
type Bank struct {
	questions map[Key]*Question
	rng       *rand.Rand
}

// NewBank creates an empty bank. rng drives the random facts of the
// terminal phase; nil uses a randomly seeded source.
func NewBank(rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bank{
		questions: make(map[Key]*Question),
		rng:       rng,
	}
}

// Initialize discards the current questions and generates the bank for
// the given phase and sub-phase.
//
// Regular phases ask the phase's own table: multipliers 1..5 in part A and
// 6..10 in part B. The terminal phase draws five distinct random facts with
// a table from 2..5 (A) or 6..9 (B) and a multiplier from 1..10.
func (b *Bank) Initialize(phase int, sub SubPhase) {
	if !ValidPhase(phase) {
		panic(fmt.Sprintf("quiz: phase %d out of range %d..%d", phase, FirstPhase, TerminalPhase))
	}
	if !sub.Valid() {
		panic(fmt.Sprintf("quiz: unknown sub-phase %q", sub))
	}

	b.questions = make(map[Key]*Question, QuestionsPerBank)

	if phase == TerminalPhase {
		lo, hi := 2, 5
		if sub == SubPhaseB {
			lo, hi = 6, 9
		}
		for len(b.questions) < QuestionsPerBank {
			table := lo + b.rng.IntN(hi-lo+1)
			n := 1 + b.rng.IntN(10)
			q := NewQuestion(table, n)
			if _, exists := b.questions[q.Key()]; exists {
				continue
			}
			b.questions[q.Key()] = &q
		}
		return
	}

	first := 1
	if sub == SubPhaseB {
		first = 6
	}
	for n := first; n < first+QuestionsPerBank; n++ {
		q := NewQuestion(phase, n)
		b.questions[q.Key()] = &q
	}
}

// RecordResult applies an answer result to the question at key.
func (b *Bank) RecordResult(key Key, correct bool) error {
	q, ok := b.questions[key]
	if !ok {
		return fmt.Errorf("record %s: %w", key, ErrUnknownQuestion)
	}
	q.record(correct)
	return nil
}

// IsComplete reports whether every question in a non-empty bank is mastered.
func (b *Bank) IsComplete() bool {
	if len(b.questions) == 0 {
		return false
	}
	for _, q := range b.questions {
		if !q.Mastered() {
			return false
		}
	}
	return true
}

// Get returns a copy of the question at key.
func (b *Bank) Get(key Key) (Question, bool) {
	q, ok := b.questions[key]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Keys returns the bank's keys in sorted order.
func (b *Bank) Keys() []Key {
	keys := make([]Key, 0, len(b.questions))
	for k := range b.questions {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Questions returns copies of all questions ordered by key.
func (b *Bank) Questions() []Question {
	out := make([]Question, 0, len(b.questions))
	for _, k := range b.Keys() {
		out = append(out, *b.questions[k])
	}
	return out
}

// Restore replaces the bank contents with previously saved questions.
func (b *Bank) Restore(questions []Question) error {
	restored := make(map[Key]*Question, len(questions))
	for _, q := range questions {
		if q.Answer != q.Multiplicand*q.Multiplier {
			return fmt.Errorf("%s answer %d: %w", q.Key(), q.Answer, ErrInvalidQuestion)
		}
		if q.MasteryLevel < 0 || q.MasteryLevel > MaxMastery {
			return fmt.Errorf("%s mastery level %d: %w", q.Key(), q.MasteryLevel, ErrInvalidQuestion)
		}
		restored[q.Key()] = &q
	}
	b.questions = restored
	return nil
}
