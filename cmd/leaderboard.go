package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/quiz"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the best score of each player",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = d.cfg.LeaderboardSize
		}

		entries, err := d.store.GameRepo().Leaderboard(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No scores yet.")
			return nil
		}

		fmt.Fprintf(out, "%4s  %-20s  %6s  %-12s  %s\n", "Rank", "Player", "Score", "Reached", "Played")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, e := range entries {
			fmt.Fprintf(out, "%4d  %-20s  %6d  %-12s  %s\n",
				e.Rank, e.PlayerName, e.Score, quiz.PhaseName(e.HighestPhase),
				e.PlayedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Int("limit", 0, "Number of rows (default from config)")
}
