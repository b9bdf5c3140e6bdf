package fitlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's water, checklist, weight, and recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", s.WaterTodayDate)
			fmt.Fprintf(out, "Water: %d / %d ml (%d%%)\n", s.WaterTodayML, s.WaterGoalML, service.WaterPercent(s))

			if latest, ok := service.MostRecentWeight(s); ok {
				fmt.Fprintf(out, "Weight: %.1f kg\n", latest)
			}

			fmt.Fprintln(out)
			printChecklist(cmd, s)

			recent := service.RecentLogs(s)
			if len(recent) > 0 {
				fmt.Fprintln(out, "\nRecent workouts:")
				for _, l := range recent {
					fmt.Fprintf(out, "%s  %s  %d sets\n", l.DateISO, l.DayType, len(l.Sets))
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
