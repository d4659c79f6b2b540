package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/pkg/types"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on a day record",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskSubCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		flagPriority string
		flagDue      string
		flagDate     string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseDateFlag(flagDate)
			if err != nil {
				return err
			}

			priority := types.DefaultPriority
			if flagPriority != "" {
				priority, err = types.ParsePriority(flagPriority)
				if err != nil {
					return err
				}
			}

			task, err := types.NewTask(args[0], priority)
			if err != nil {
				return err
			}
			if flagDue != "" {
				due := types.DateKey(flagDue)
				if !due.Valid() {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", flagDue)
				}
				task.DueDate = due
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			record := sess.store.Get(key)
			// The task cap is enforced here at the editing surface; the
			// store's merge never re-checks it.
			if len(record.Tasks) >= types.MaxTasksPerDay {
				return types.ErrTaskLimit
			}

			tasks := append(record.Tasks, task)
			if _, err := sess.store.Patch(key, types.TasksPatch(tasks)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d on %s: %s\n", len(tasks), key, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagPriority, "priority", "", "task priority: high, mid, or low (default mid)")
	cmd.Flags().StringVar(&flagDue, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagDate, "date", "", "day to add the task to (default today)")
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "done INDEX",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
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
			idx, err := taskIndex(args[0], len(record.Tasks))
			if err != nil {
				return err
			}

			record.Tasks[idx].Completed = !record.Tasks[idx].Completed
			if _, err := sess.store.Patch(key, types.TasksPatch(record.Tasks)); err != nil {
				return err
			}

			state := "open"
			if record.Tasks[idx].Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %q is now %s\n", record.Tasks[idx].Title, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "day of the task (default today)")
	return cmd
}

func newTaskSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage subtasks",
	}
	cmd.AddCommand(newTaskSubAddCmd())
	cmd.AddCommand(newTaskSubDoneCmd())
	return cmd
}

func newTaskSubAddCmd() *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "add INDEX TITLE",
		Short: "Add a subtask to a task",
		Args:  cobra.ExactArgs(2),
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
			idx, err := taskIndex(args[0], len(record.Tasks))
			if err != nil {
				return err
			}

			sub, err := types.NewSubtask(args[1])
			if err != nil {
				return err
			}

			record.Tasks[idx].Subtasks = append(record.Tasks[idx].Subtasks, sub)
			if _, err := sess.store.Patch(key, types.TasksPatch(record.Tasks)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added subtask to %q: %s\n", record.Tasks[idx].Title, sub.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "day of the task (default today)")
	return cmd
}

func newTaskSubDoneCmd() *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "done INDEX SUBINDEX",
		Short: "Toggle a subtask's completion",
		Args:  cobra.ExactArgs(2),
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
			idx, err := taskIndex(args[0], len(record.Tasks))
			if err != nil {
				return err
			}
			subIdx, err := taskIndex(args[1], len(record.Tasks[idx].Subtasks))
			if err != nil {
				return err
			}

			sub := &record.Tasks[idx].Subtasks[subIdx]
			sub.Completed = !sub.Completed
			if _, err := sess.store.Patch(key, types.TasksPatch(record.Tasks)); err != nil {
				return err
			}

			state := "open"
			if sub.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subtask %q is now %s\n", sub.Title, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "day of the task (default today)")
	return cmd
}

// taskIndex parses a 1-based index argument against a list length.
func taskIndex(arg string, length int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > length {
		return 0, fmt.Errorf("%w: index %q out of range 1..%d", types.ErrTaskNotFound, arg, length)
	}
	return n - 1, nil
}
