package fitlog

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track bodyweight",
}

var weightDate string

var weightLogCmd = &cobra.Command{
	Use:   "log <kg>",
	Short: "Log bodyweight in kilograms (one entry per day, later value wins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := parseFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		if kg <= 0 {
			return fmt.Errorf("weight must be > 0")
		}
		date := weightDate
		if date == "" {
			date = service.DateKey(time.Now())
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return mutateState(func(s model.State) model.State {
			s = service.LogBodyweight(s, kg, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg for %s\n", kg, date)
			return s
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the last 30 bodyweight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s model.State) error {
			out := cmd.OutOrStdout()
			entries := service.Last30Weights(s)
			if len(entries) == 0 {
				fmt.Fprintln(out, "No bodyweight entries yet")
				return nil
			}
			fmt.Fprintln(out, "DATE\tWEIGHT_KG")
			for _, w := range entries {
				fmt.Fprintf(out, "%s\t%.1f\n", w.Date, w.WeightKg)
			}
			if latest, ok := service.MostRecentWeight(s); ok {
				fmt.Fprintf(out, "\nMost recent: %.1f kg\n", latest)
			}
			return nil
		})
	},
}

func init() {
	weightLogCmd.Flags().StringVar(&weightDate, "date", "", "Date to log for (YYYY-MM-DD, default today)")
	weightCmd.AddCommand(weightLogCmd)
	weightCmd.AddCommand(weightListCmd)
	rootCmd.AddCommand(weightCmd)
}
