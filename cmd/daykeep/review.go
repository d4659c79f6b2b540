package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/pkg/types"
)

func newReviewCmd() *cobra.Command {
	var (
		flagDate    string
		flagWorked  string
		flagImprove string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record or show the evening review for a day",
		Long:  "With --worked or --improve, update the day's review; only the given\nfields change. Without flags, show the review and the day's counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseDateFlag(flagDate)
			if err != nil {
				return err
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			record := sess.store.Get(key)

			if cmd.Flags().Changed("worked") || cmd.Flags().Changed("improve") {
				review := record.Review
				if cmd.Flags().Changed("worked") {
					review.WhatWorked = flagWorked
				}
				if cmd.Flags().Changed("improve") {
					review.WhatToImprove = flagImprove
				}
				record, err = sess.store.Patch(key, types.ReviewPatch(review))
				if err != nil {
					return err
				}
			}

			tasksDone, tasksTotal := record.TaskCounts()
			habitsDone, habitsTotal := record.HabitCounts(sess.store.HabitDefinitions())

			if flagJSON {
				return printJSON(cmd, struct {
					Date        types.DateKey `json:"date"`
					Review      types.Review  `json:"review"`
					TasksDone   int           `json:"tasksDone"`
					TasksTotal  int           `json:"tasksTotal"`
					HabitsDone  int           `json:"habitsDone"`
					HabitsTotal int           `json:"habitsTotal"`
				}{key, record.Review, tasksDone, tasksTotal, habitsDone, habitsTotal})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Review for %s\n", key)
			fmt.Fprintf(out, "Tasks: %d/%d  Habits: %d/%d\n", tasksDone, tasksTotal, habitsDone, habitsTotal)
			if record.Review.WhatWorked != "" {
				fmt.Fprintf(out, "worked:  %s\n", record.Review.WhatWorked)
			}
			if record.Review.WhatToImprove != "" {
				fmt.Fprintf(out, "improve: %s\n", record.Review.WhatToImprove)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "day to review (default today)")
	cmd.Flags().StringVar(&flagWorked, "worked", "", "what worked today")
	cmd.Flags().StringVar(&flagImprove, "improve", "", "what to improve tomorrow")
	return cmd
}
