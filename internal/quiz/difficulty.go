package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned when parsing an unsupported difficulty name.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the countdown settings of a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	// DefaultMaxLives is the number of lives a new game starts with.
	DefaultMaxLives = 5

	// MinLives and MaxLivesLimit bound the configurable lives count.
	MinLives      = 1
	MaxLivesLimit = 10
)

// Settings holds the timing parameters a difficulty maps to.
type Settings struct {
	BaseTime          time.Duration
	LevelTimeDecrease time.Duration
}

// AllDifficulties returns every difficulty from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}

// Settings returns the timing record for the difficulty.
func (d Difficulty) Settings() Settings {
	switch d {
	case DifficultyEasy:
		return Settings{BaseTime: 30 * time.Second, LevelTimeDecrease: 5 * time.Second}
	case DifficultyHard:
		return Settings{BaseTime: 10 * time.Second, LevelTimeDecrease: 2 * time.Second}
	default:
		return Settings{BaseTime: 15 * time.Second, LevelTimeDecrease: 3 * time.Second}
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// BaseSeconds is the full countdown in whole seconds.
func (s Settings) BaseSeconds() int {
	return int(s.BaseTime / time.Second)
}

// ValidateLives checks a configured lives count.
func ValidateLives(n int) error {
	if n < MinLives || n > MaxLivesLimit {
		return fmt.Errorf("lives must be between %d and %d, got %d", MinLives, MaxLivesLimit, n)
	}
	return nil
}
