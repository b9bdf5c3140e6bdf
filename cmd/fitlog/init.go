package fitlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achrafi04/fitlog/internal/app"
	"github.com/achrafi04/fitlog/internal/db"
	"github.com/achrafi04/fitlog/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fitlog database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}

		st := store.New(sqldb)
		state, err := st.Load()
		if err != nil {
			return err
		}
		if err := st.Save(state); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitlog database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
