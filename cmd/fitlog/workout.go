package fitlog

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Build and save workout sessions",
}

var workoutDayCmd = &cobra.Command{
	Use:   "day <push|pull|legs>",
	Short: "Select the split day for the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidDayType(args[0]) {
			return fmt.Errorf("invalid day type %q (use push, pull, or legs)", args[0])
		}
		return mutateState(func(s model.State) model.State {
			s = service.SetSessionDayType(s, model.DayType(args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Session day: %s\n", s.Session.DayType)
			return s
		})
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add a set to the session, prefilled from your last set of that exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateState(func(s model.State) model.State {
			s = service.AddSet(s, args[0])
			added := s.Session.Sets[len(s.Session.Sets)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d: %s %.1f kg x %d\n",
				len(s.Session.Sets)-1, service.ExerciseName(s, added.ExerciseID), added.WeightKg, added.Reps)
			return s
		})
	},
}

var (
	setWeight float64
	setReps   int
	setRPE    float64
)

var workoutUpdateCmd = &cobra.Command{
	Use:   "update <index>",
	Short: "Update a session set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg("set index", args[0])
		if err != nil {
			return err
		}
		patch := service.SetPatch{}
		if cmd.Flags().Changed("weight") {
			patch.WeightKg = &setWeight
		}
		if cmd.Flags().Changed("reps") {
			patch.Reps = &setReps
		}
		if cmd.Flags().Changed("rpe") {
			patch.RPE = &setRPE
		}
		return mutateState(func(s model.State) model.State {
			if index >= len(s.Session.Sets) {
				fmt.Fprintf(cmd.OutOrStdout(), "No set at index %d\n", index)
				return s
			}
			s = service.UpdateSet(s, index, patch)
			updated := s.Session.Sets[index]
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d: %s %.1f kg x %d\n",
				index, service.ExerciseName(s, updated.ExerciseID), updated.WeightKg, updated.Reps)
			return s
		})
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a session set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg("set index", args[0])
		if err != nil {
			return err
		}
		return mutateState(func(s model.State) model.State {
			if index >= len(s.Session.Sets) {
				fmt.Fprintf(cmd.OutOrStdout(), "No set at index %d\n", index)
				return s
			}
			s = service.RemoveSet(s, index)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed set %d (%d left)\n", index, len(s.Session.Sets))
			return s
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session (%s)\n", s.Session.DayType)
			if len(s.Session.Sets) == 0 {
				fmt.Fprintln(out, "No sets yet")
				return nil
			}
			for i, set := range s.Session.Sets {
				line := fmt.Sprintf("%d\t%s\t%.1f kg x %d", i, service.ExerciseName(s, set.ExerciseID), set.WeightKg, set.Reps)
				if set.RPE > 0 {
					line += fmt.Sprintf("\t@%.1f", set.RPE)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		})
	},
}

var workoutNotes string

var workoutSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the session to the workout log and start a fresh one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateState(func(s model.State) model.State {
			before := len(s.Logs)
			s = service.SaveWorkout(s, time.Now(), workoutNotes)
			if len(s.Logs) == before {
				fmt.Fprintln(cmd.OutOrStdout(), "Session is empty, nothing to save")
				return s
			}
			saved := s.Logs[0]
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s workout with %d sets\n", saved.DayType, len(saved.Sets))
			return s
		})
	},
}

var planDay string

var workoutPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the template for a split day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			day := s.Session.DayType
			if planDay != "" {
				if !model.ValidDayType(planDay) {
					return fmt.Errorf("invalid day type %q (use push, pull, or legs)", planDay)
				}
				day = model.DayType(planDay)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template (%s)\n", day)
			for _, slot := range service.TemplateFor(s, day) {
				fmt.Fprintf(out, "%s\trest %ds\n", slot.Name, slot.RestSec)
			}
			return nil
		})
	},
}

var historyLimit int

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent saved workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			logs := s.Logs
			if historyLimit > 0 && len(logs) > historyLimit {
				logs = logs[:historyLimit]
			}
			if len(logs) == 0 {
				fmt.Fprintln(out, "No saved workouts yet")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(out, "%s  %s  %d sets", l.DateISO, l.DayType, len(l.Sets))
				if l.Notes != "" {
					fmt.Fprintf(out, "  (%s)", l.Notes)
				}
				fmt.Fprintln(out)
			}
			return nil
		})
	},
}

func init() {
	workoutUpdateCmd.Flags().Float64Var(&setWeight, "weight", 0, "Weight in kg")
	workoutUpdateCmd.Flags().IntVar(&setReps, "reps", 0, "Repetitions")
	workoutUpdateCmd.Flags().Float64Var(&setRPE, "rpe", 0, "Rate of perceived exertion")
	workoutSaveCmd.Flags().StringVar(&workoutNotes, "notes", "", "Session notes")
	workoutPlanCmd.Flags().StringVar(&planDay, "day", "", "Day type (default: current session day)")
	workoutHistoryCmd.Flags().IntVar(&historyLimit, "limit", 10, "Max workouts to show")

	workoutCmd.AddCommand(workoutDayCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutUpdateCmd)
	workoutCmd.AddCommand(workoutRemoveCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutSaveCmd)
	workoutCmd.AddCommand(workoutPlanCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	rootCmd.AddCommand(workoutCmd)
}
