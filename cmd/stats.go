package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show per-phase statistics of a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		// Restore only reads; the game is saved again when Start runs.
		engine, err := session.Restore(cmd.Context(), session.Options{
			Gateway: d.store.GameRepo(),
			Logger:  d.logger,
		}, args[0])
		if err != nil {
			return err
		}

		st := engine.State()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s · %s · score %d · %d/%d lives\n\n",
			st.PlayerName, st.Difficulty.DisplayName(), st.Score, st.Lives, st.MaxLives)

		fmt.Fprintf(out, "%-12s  %8s  %6s  %6s  %8s  %8s  %s\n",
			"Phase", "Answers", "Right", "Wrong", "Best", "Average", "Done")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, phase := range quiz.Phases() {
			s := engine.CombinedStats(phase)
			best := "-"
			if s.BestTime != nil {
				best = seconds(*s.BestTime)
			}
			done := ""
			if s.Completed {
				done = "✓"
			}
			fmt.Fprintf(out, "%-12s  %8d  %6d  %6d  %8s  %8s  %s\n",
				quiz.PhaseName(phase), s.Attempts, s.Corrects, s.Errors,
				best, seconds(s.AverageTime()), done)
		}
		return nil
	},
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
