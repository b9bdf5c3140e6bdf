package fitlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add water in milliliters (negative to undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseIntArg("milliliters", args[0])
		if err != nil {
			return err
		}
		return mutateState(func(s model.State) model.State {
			s = service.AddWater(s, ml)
			fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d ml (%d%%)\n", s.WaterTodayML, service.WaterPercent(s))
			return s
		})
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily water goal (minimum 500 ml)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseIntArg("milliliters", args[0])
		if err != nil {
			return err
		}
		return mutateState(func(s model.State) model.State {
			s = service.SetWaterGoal(s, ml)
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal: %d ml\n", s.WaterGoalML)
			return s
		})
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress and the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today: %d / %d ml (%d%%)\n\n", s.WaterTodayML, s.WaterGoalML, service.WaterPercent(s))
			for _, day := range service.Last7DaysWater(s, time.Now()) {
				bars := 0
				if s.WaterGoalML > 0 {
					bars = day.ML * 20 / s.WaterGoalML
					if bars > 20 {
						bars = 20
					}
				}
				fmt.Fprintf(out, "%s  %-20s %d ml\n", day.Date, strings.Repeat("#", bars), day.ML)
			}
			return nil
		})
	},
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterGoalCmd)
	waterCmd.AddCommand(waterStatusCmd)
	rootCmd.AddCommand(waterCmd)
}
