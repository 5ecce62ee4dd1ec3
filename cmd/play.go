package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := playConfig(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, &cfg)
	},
}

// playConfig validates the play flags. Unset difficulty and lives fall
// back to the configured defaults when the game starts.
func playConfig(cmd *cobra.Command) (session.GameConfig, error) {
	name, _ := cmd.Flags().GetString("name")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	lives, _ := cmd.Flags().GetInt("lives")

	cfg := session.GameConfig{PlayerName: strings.TrimSpace(name), MaxLives: lives}
	if cfg.PlayerName == "" {
		return cfg, fmt.Errorf("--name is required")
	}
	if difficulty != "" {
		d, err := quiz.ParseDifficulty(difficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = d
	}
	if lives != 0 {
		if err := quiz.ValidateLives(lives); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func init() {
	playCmd.Flags().String("name", "", "Player name")
	playCmd.Flags().String("difficulty", "", "easy, medium or hard")
	playCmd.Flags().Int("lives", 0, "Maximum lives (1-10)")
}
