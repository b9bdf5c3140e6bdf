package fitlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "fitlog tracks workouts, hydration, and bodyweight from your terminal",
	Long:  "fitlog is a local-first fitness tracking CLI with a push/pull/legs workout log, water intake, bodyweight history, reminders, and a daily nutrition checklist.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
