package fitlog

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitlog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fitlog %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
