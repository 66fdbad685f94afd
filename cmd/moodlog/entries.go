package moodlog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var (
	entriesDate  string
	entriesLimit int
	entriesJSON  bool
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List logged entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListEntriesFilter{Date: entriesDate, Limit: entriesLimit}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListEntries(sqldb, filter)
			if err != nil {
				return err
			}
			if entriesJSON {
				b, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal entries json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tEMOTION\tSTRESS\tTEXT")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\n", e.ID, e.LoggedAt.Local().Format("2006-01-02 15:04"), e.Emotion, e.Stress, e.Text)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
	entriesCmd.Flags().StringVar(&entriesDate, "date", "", "Restrict to date YYYY-MM-DD")
	entriesCmd.Flags().IntVar(&entriesLimit, "limit", 0, "Maximum entries to list (0 = all)")
	entriesCmd.Flags().BoolVar(&entriesJSON, "json", false, "Output as JSON")
}
