package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/planner"
	"github.com/daykeep/daykeep/pkg/types"
)

// topPriorityCount is how many uncompleted tasks the focus section shows.
const topPriorityCount = 3

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Show the day record for a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseDateArg(args)
			if err != nil {
				return err
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			record := sess.store.Get(key)
			defs := sess.store.HabitDefinitions()
			top := planner.TopPriorities(record, topPriorityCount)

			if flagJSON {
				return printJSON(cmd, struct {
					Date          types.DateKey   `json:"date"`
					Record        types.DayRecord `json:"record"`
					TopPriorities []types.Task    `json:"topPriorities"`
				}{key, record, top})
			}

			printDay(cmd, key, record, defs, top)
			return nil
		},
	}
}

func printDay(cmd *cobra.Command, key types.DateKey, record types.DayRecord, defs []types.HabitDefinition, top []types.Task) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", key, key.Time().Format("Monday"))

	if len(top) > 0 {
		fmt.Fprintln(out, "\nFocus:")
		for _, t := range top {
			fmt.Fprintf(out, "  ! %s (%s)\n", t.Title, t.Priority)
		}
	}

	fmt.Fprintln(out, "\nTasks:")
	if len(record.Tasks) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for i, t := range record.Tasks {
		fmt.Fprintf(out, "  %2d. %s %s (%s)%s\n", i+1, checkbox(t.Completed), t.Title, t.Priority, dueSuffix(t.DueDate))
		for _, sub := range t.Subtasks {
			fmt.Fprintf(out, "      - %s %s\n", checkbox(sub.Completed), sub.Title)
		}
	}

	fmt.Fprintln(out, "\nHabits:")
	if len(defs) == 0 {
		fmt.Fprintln(out, "  (none defined)")
	}
	for _, d := range defs {
		fmt.Fprintf(out, "  %s %s\n", checkbox(record.Habits[d.ID]), d.Name)
	}

	if record.Review.WhatWorked != "" || record.Review.WhatToImprove != "" {
		fmt.Fprintln(out, "\nReview:")
		if record.Review.WhatWorked != "" {
			fmt.Fprintf(out, "  worked:  %s\n", record.Review.WhatWorked)
		}
		if record.Review.WhatToImprove != "" {
			fmt.Fprintf(out, "  improve: %s\n", record.Review.WhatToImprove)
		}
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func dueSuffix(due types.DateKey) string {
	if due == "" {
		return ""
	}
	return ", due " + string(due)
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
	return nil
}
