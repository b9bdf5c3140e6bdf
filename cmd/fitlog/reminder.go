package fitlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage daily reminders",
}

var (
	reminderTitle string
	reminderTime  string
	reminderKind  string
)

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(reminderTitle) == "" {
			return fmt.Errorf("--title is required")
		}
		if !validHHMM(reminderTime) {
			return fmt.Errorf("invalid --time %q (expected HH:MM)", reminderTime)
		}
		kind := model.ReminderKind(reminderKind)
		switch kind {
		case model.ReminderWater, model.ReminderMeal, model.ReminderSupp:
		default:
			return fmt.Errorf("invalid --kind %q (use water, meal, or supp)", reminderKind)
		}
		return mutateState(func(s model.State) model.State {
			s = service.AddReminder(s, reminderTitle, reminderTime, kind)
			added := s.Reminders[len(s.Reminders)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s at %s (%s)\n", added.Title, added.Time, added.ID)
			return s
		})
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTIME\tKIND\tENABLED\tTITLE")
			for _, r := range s.Reminders {
				fmt.Fprintf(out, "%s\t%s\t%s\t%t\t%s\n", r.ID, r.Time, r.Kind, r.Enabled, r.Title)
			}
			return nil
		})
	},
}

func reminderExists(s model.State, id string) bool {
	for _, r := range s.Reminders {
		if r.ID == id {
			return true
		}
	}
	return false
}

var reminderToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateState(func(s model.State) model.State {
			if !reminderExists(s, args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No reminder with id %s\n", args[0])
				return s
			}
			s = service.ToggleReminder(s, args[0])
			for _, r := range s.Reminders {
				if r.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s enabled=%t\n", r.Title, r.Enabled)
				}
			}
			return s
		})
	},
}

var reminderTimeCmd = &cobra.Command{
	Use:   "time <id> <HH:MM>",
	Short: "Change a reminder's fire time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !validHHMM(args[1]) {
			return fmt.Errorf("invalid time %q (expected HH:MM)", args[1])
		}
		return mutateState(func(s model.State) model.State {
			if !reminderExists(s, args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No reminder with id %s\n", args[0])
				return s
			}
			s = service.UpdateReminderTime(s, args[0], args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder %s now fires at %s\n", args[0], args[1])
			return s
		})
	},
}

var reminderTitleCmd = &cobra.Command{
	Use:   "title <id> <title>",
	Short: "Rename a reminder",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args[1:], " ")
		return mutateState(func(s model.State) model.State {
			if !reminderExists(s, args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No reminder with id %s\n", args[0])
				return s
			}
			s = service.UpdateReminderTitle(s, args[0], title)
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed reminder %s to %q\n", args[0], title)
			return s
		})
	},
}

var reminderRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateState(func(s model.State) model.State {
			if !reminderExists(s, args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "No reminder with id %s\n", args[0])
				return s
			}
			s = service.RemoveReminder(s, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed reminder %s\n", args[0])
			return s
		})
	},
}

func init() {
	reminderAddCmd.Flags().StringVar(&reminderTitle, "title", "", "Reminder title")
	reminderAddCmd.Flags().StringVar(&reminderTime, "time", "", "Fire time (HH:MM)")
	reminderAddCmd.Flags().StringVar(&reminderKind, "kind", "supp", "Reminder kind: water, meal, or supp")

	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderToggleCmd)
	reminderCmd.AddCommand(reminderTimeCmd)
	reminderCmd.AddCommand(reminderTitleCmd)
	reminderCmd.AddCommand(reminderRemoveCmd)
	rootCmd.AddCommand(reminderCmd)
}
