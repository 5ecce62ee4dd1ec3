package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/app"
	"github.com/abhisek/tabuada/internal/screens/play"
	"github.com/abhisek/tabuada/internal/session"
)

// runApp opens the store and launches the TUI, optionally straight into a
// new game.
func runApp(cmd *cobra.Command, newGame *session.GameConfig) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	if newGame != nil {
		if newGame.Difficulty == "" {
			newGame.Difficulty = d.cfg.Difficulty
		}
		if newGame.MaxLives == 0 {
			newGame.MaxLives = d.cfg.MaxLives
		}
	}

	opts := app.Options{
		Env: play.Env{
			Repo:   d.store.GameRepo(),
			Logger: d.logger,
			Defaults: session.GameConfig{
				Difficulty: d.cfg.Difficulty,
				MaxLives:   d.cfg.MaxLives,
			},
			LeaderboardSize: d.cfg.LeaderboardSize,
		},
		SkipWelcome: newGame != nil,
		NewGame:     newGame,
	}
	return app.Run(opts)
}
