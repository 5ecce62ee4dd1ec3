package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/quiz"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage saved games",
}

var gamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games, most recently played first",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		games, err := d.store.GameRepo().ListSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("list games: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(games) == 0 {
			fmt.Fprintln(out, "No saved games.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-16s  %6s  %-12s  %-8s  %s\n",
			"ID", "Player", "Score", "Phase", "Status", "Last played")
		fmt.Fprintln(out, strings.Repeat("─", 104))

		for _, g := range games {
			name := g.PlayerName
			if len(name) > 16 {
				name = name[:13] + "..."
			}
			status := "playing"
			if g.GameOver {
				status = "over"
			}
			fmt.Fprintf(out, "%-36s  %-16s  %6d  %-12s  %-8s  %s\n",
				g.ID, name, g.Score, quiz.PhaseName(g.HighestPhase()), status,
				g.LastPlayedAt.Local().Format("2006-01-02 15:04"))
		}

		fmt.Fprintf(out, "\n%d games\n", len(games))
		return nil
	},
}

var gamesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ok, err := d.store.GameRepo().DeleteSession(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete game: %w", err)
		}
		if !ok {
			return fmt.Errorf("no saved game with id %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
		return nil
	},
}

func init() {
	gamesCmd.AddCommand(gamesListCmd)
	gamesCmd.AddCommand(gamesDeleteCmd)
}
