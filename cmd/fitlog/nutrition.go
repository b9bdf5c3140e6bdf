package fitlog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Daily nutrition checklist and notes",
}

var nutritionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			printChecklist(cmd, s)
			if s.Nutrition.Notes != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nNotes: %s\n", s.Nutrition.Notes)
			}
			return nil
		})
	},
}

var nutritionToggleCmd = &cobra.Command{
	Use:   "toggle <label>",
	Short: "Toggle a checklist item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := strings.Join(args, " ")
		return mutateState(func(s model.State) model.State {
			if _, ok := s.Nutrition.Checklist[label]; !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No checklist item %q\n", label)
				return s
			}
			s = service.ToggleChecklistItem(s, label)
			printChecklist(cmd, s)
			return s
		})
	},
}

var nutritionNotesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Set nutrition notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := strings.Join(args, " ")
		return mutateState(func(s model.State) model.State {
			s = service.SetNutritionNotes(s, notes)
			fmt.Fprintln(cmd.OutOrStdout(), "Notes updated")
			return s
		})
	},
}

func printChecklist(cmd *cobra.Command, s model.State) {
	labels := make([]string, 0, len(s.Nutrition.Checklist))
	for label := range s.Nutrition.Checklist {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		mark := " "
		if s.Nutrition.Checklist[label] {
			mark = "x"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", mark, label)
	}
}

func init() {
	nutritionCmd.AddCommand(nutritionShowCmd)
	nutritionCmd.AddCommand(nutritionToggleCmd)
	nutritionCmd.AddCommand(nutritionNotesCmd)
	rootCmd.AddCommand(nutritionCmd)
}
