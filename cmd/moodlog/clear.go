package moodlog

import (
	"database/sql"
	"fmt"

	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("this deletes every entry; re-run with --yes to confirm")
		}
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.ClearAll(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", removed)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting all entries")
}
