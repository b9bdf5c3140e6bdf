package fitlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage the exercise library",
}

var (
	exerciseName    string
	exerciseMuscles string
	exerciseImage   string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exerciseName) == "" {
			return fmt.Errorf("--name is required")
		}
		return mutateState(func(s model.State) model.State {
			s = service.AddExercise(s, exerciseName, exerciseMuscles, exerciseImage)
			added := s.Exercises[len(s.Exercises)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", added.Name, added.ID)
			return s
		})
	},
}

var exerciseImageCmd = &cobra.Command{
	Use:   "image <id> <url>",
	Short: "Set (or clear with an empty url) an exercise image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateState(func(s model.State) model.State {
			if service.ExerciseName(s, args[0]) == service.UnknownExercise {
				fmt.Fprintf(cmd.OutOrStdout(), "No exercise with id %s\n", args[0])
				return s
			}
			s = service.UpdateExerciseImage(s, args[0], args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Updated image for %s\n", args[0])
			return s
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tMUSCLES")
			for _, e := range s.Exercises {
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.ID, e.Name, strings.Join(e.Muscles, ", "))
			}
			return nil
		})
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().StringVar(&exerciseMuscles, "muscles", "", "Comma-separated muscle list")
	exerciseAddCmd.Flags().StringVar(&exerciseImage, "image", "", "Image URL")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseImageCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	rootCmd.AddCommand(exerciseCmd)
}
