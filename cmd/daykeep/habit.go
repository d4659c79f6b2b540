package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/pkg/types"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habit definitions and daily completion marks",
	}
	cmd.AddCommand(newHabitAddCmd())
	cmd.AddCommand(newHabitRmCmd())
	cmd.AddCommand(newHabitListCmd())
	cmd.AddCommand(newHabitToggleCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Define a new habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := sess.store.HabitDefinitions()
			// The definition cap is an editing-surface rule, like the task cap.
			if len(defs) >= types.MaxHabitDefinitions {
				return types.ErrHabitLimit
			}

			def, err := types.NewHabitDefinition(args[0])
			if err != nil {
				return err
			}

			if err := sess.store.SetHabitDefinitions(append(defs, def)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added habit: %s\n", def.Name)
			return nil
		},
	}
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a habit definition",
		Long:  "Delete a habit definition by name or ID. Historical day records keep\ntheir completion entries; only the definition is removed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := sess.store.HabitDefinitions()
			kept := defs[:0]
			removed := false
			for _, d := range defs {
				if !removed && (d.Name == args[0] || d.ID == args[0]) {
					removed = true
					continue
				}
				kept = append(kept, d)
			}
			if !removed {
				return fmt.Errorf("%w: %q", types.ErrHabitNotFound, args[0])
			}

			if err := sess.store.SetHabitDefinitions(kept); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed habit: %s\n", args[0])
			return nil
		},
	}
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habit definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.close()

			defs := sess.store.HabitDefinitions()
			if flagJSON {
				return printJSON(cmd, defs)
			}

			if len(defs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No habits defined.")
				return nil
			}
			for _, d := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.ID, d.Name)
			}
			return nil
		},
	}
}

func newHabitToggleCmd() *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "toggle NAME",
		Short: "Toggle a habit's completion for a day",
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

			def, err := findHabit(sess.store.HabitDefinitions(), args[0])
			if err != nil {
				return err
			}

			record := sess.store.Get(key)
			record.Habits[def.ID] = !record.Habits[def.ID]
			if _, err := sess.store.Patch(key, types.HabitsPatch(record.Habits)); err != nil {
				return err
			}

			state := "not done"
			if record.Habits[def.ID] {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n", def.Name, key, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "day to mark (default today)")
	return cmd
}

// findHabit resolves a habit definition by name or ID.
func findHabit(defs []types.HabitDefinition, arg string) (types.HabitDefinition, error) {
	for _, d := range defs {
		if d.Name == arg || d.ID == arg {
			return d, nil
		}
	}
	return types.HabitDefinition{}, fmt.Errorf("%w: %q", types.ErrHabitNotFound, arg)
}
