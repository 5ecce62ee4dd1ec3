package quiz

import "math/rand/v2"

// Selector picks the next question to ask from a bank.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector drawing from rng; nil uses a randomly
// seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng}
}

// SelectNext returns the key of the next question to ask. Questions never
// answered correctly come first, then questions at level 1, with a uniform
// random choice inside a tier. It returns false when the bank is complete.
func (s *Selector) SelectNext(bank *Bank) (Key, bool) {
	var tiers [MaxMastery][]Key
	for _, k := range bank.Keys() {
		q := bank.questions[k]
		if q.MasteryLevel < MaxMastery {
			tiers[q.MasteryLevel] = append(tiers[q.MasteryLevel], k)
		}
	}
	for _, tier := range tiers {
		if len(tier) > 0 {
			return tier[s.rng.IntN(len(tier))], true
		}
	}
	return "", false
}
