package play

import (
	"log/slog"
	"math/rand/v2"
	"time"

	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/store"
)

// Env holds what the game screens share: the saved-games repository and
// the defaults for new games.
type Env struct {
	Repo   store.GameRepo
	Logger *slog.Logger

	// Defaults offered by the new game form.
	Defaults sess.GameConfig

	// LeaderboardSize is the number of rows shown at game over.
	LeaderboardSize int

	// Rand and Now are nil outside tests.
	Rand *rand.Rand
	Now  func() time.Time
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// options builds engine options reporting to p.
func (e Env) options(p sess.Presenter) sess.Options {
	opts := sess.Options{
		Presenter:       p,
		Logger:          e.logger(),
		Rand:            e.Rand,
		Now:             e.Now,
		LeaderboardSize: e.LeaderboardSize,
	}
	// A nil repo must stay a nil interface so the engine skips saving.
	if e.Repo != nil {
		opts.Gateway = e.Repo
	}
	return opts
}
