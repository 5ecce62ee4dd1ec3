package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved game and the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("reset deletes all saved games; pass --yes to confirm")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		n, err := d.store.GameRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		d.logger.Info("saved games reset", "deleted", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d saved games.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all saved games")
}
