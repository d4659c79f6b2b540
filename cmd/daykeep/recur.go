package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/pkg/types"
)

// dayNames renders weekDay values, indexed 0=Sunday..6=Saturday.
var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func newRecurCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recur",
		Short: "Manage recurring task definitions",
	}
	cmd.AddCommand(newRecurAddCmd())
	cmd.AddCommand(newRecurRmCmd())
	cmd.AddCommand(newRecurListCmd())
	return cmd
}

func newRecurAddCmd() *cobra.Command {
	var (
		flagPriority string
		flagFreq     string
		flagWeekDay  int
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Define a recurring task",
		Long:  "Define a recurring task. Daily definitions are added to every day;\nweekly ones on their configured weekday (--day 0=Sunday..6=Saturday).\nThe next populated day picks the new definition up.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority := types.DefaultPriority
			if flagPriority != "" {
				var err error
				priority, err = types.ParsePriority(flagPriority)
				if err != nil {
					return err
				}
			}

			freq, err := types.ParseFrequency(flagFreq)
			if err != nil {
				return err
			}

			def, err := types.NewRecurringTask(args[0], priority, freq, flagWeekDay)
			if err != nil {
				return err
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := append(sess.store.RecurringTasks(), def)
			if err := sess.store.SetRecurringTasks(defs); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added recurring task: %s (%s)\n", def.Title, describeSchedule(def))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagPriority, "priority", "", "task priority: high, mid, or low (default mid)")
	cmd.Flags().StringVar(&flagFreq, "freq", "daily", "frequency: daily or weekly")
	cmd.Flags().IntVar(&flagWeekDay, "day", 1, "weekday for weekly tasks (0=Sunday..6=Saturday)")
	return cmd
}

func newRecurRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm TITLE",
		Short: "Delete a recurring task definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := sess.store.RecurringTasks()
			kept := defs[:0]
			removed := false
			for _, d := range defs {
				if !removed && (d.Title == args[0] || d.ID == args[0]) {
					removed = true
					continue
				}
				kept = append(kept, d)
			}
			if !removed {
				return fmt.Errorf("%w: %q", types.ErrRecurringNotFound, args[0])
			}

			if err := sess.store.SetRecurringTasks(kept); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed recurring task: %s\n", args[0])
			return nil
		},
	}
}

func newRecurListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring task definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := sess.store.RecurringTasks()
			if flagJSON {
				return printJSON(cmd, defs)
			}

			if len(defs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recurring tasks defined.")
				return nil
			}
			for _, d := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s, %s)\n", d.ID, d.Title, describeSchedule(d), d.Priority)
			}
			return nil
		},
	}
}

func describeSchedule(d types.RecurringTaskDefinition) string {
	if d.Frequency == types.FrequencyWeekly && d.WeekDay != nil {
		return dayNames[*d.WeekDay]
	}
	return string(d.Frequency)
}
