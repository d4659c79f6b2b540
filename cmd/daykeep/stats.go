package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/planner"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show habit streaks and the trailing 7-day completion series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			now := time.Now()
			defs := sess.store.HabitDefinitions()
			streaks := planner.Streaks(sess.store, now)
			week := planner.WeeklyCompletion(sess.store, now)

			if flagJSON {
				return printJSON(cmd, struct {
					Streaks map[string]int          `json:"streaks"`
					Week    []planner.DayCompletion `json:"week"`
				}{streaks, week})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Streaks:")
			if len(defs) == 0 {
				fmt.Fprintln(out, "  (no habits defined)")
			}
			for _, d := range defs {
				fmt.Fprintf(out, "  %-20s %s\n", d.Name, formatStreak(streaks[d.ID]))
			}

			fmt.Fprintln(out, "\nLast 7 days:")
			fmt.Fprintln(out, "  date        tasks      habits")
			for _, day := range week {
				fmt.Fprintf(out, "  %s  %d/%d (%3.0f%%)  %d/%d (%3.0f%%)\n",
					day.Key,
					day.TasksDone, day.TasksTotal, day.TaskRate*100,
					day.HabitsDone, day.HabitsTotal, day.HabitRate*100,
				)
			}
			return nil
		},
	}
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
