package fitlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/timer"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Countdown timers",
}

var timerRestCmd = &cobra.Command{
	Use:   "rest <seconds>",
	Short: "Run a rest countdown with an audible cue at zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseIntArg("seconds", args[0])
		if err != nil {
			return err
		}
		if seconds <= 0 {
			return fmt.Errorf("seconds must be > 0")
		}

		out := cmd.OutOrStdout()
		rest := timer.NewRestTimer(func() {
			// terminal bell as the audible cue
			fmt.Fprint(out, "\aRest over!\n")
		})

		done := rest.Start(seconds)
		fmt.Fprintf(out, "Resting %ds\n", seconds)
		<-done
		return nil
	},
}

func init() {
	timerCmd.AddCommand(timerRestCmd)
	rootCmd.AddCommand(timerCmd)
}
