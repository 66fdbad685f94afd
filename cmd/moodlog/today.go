package moodlog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entries, average stress, and dominant emotion",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.Summarize(sqldb, date)
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal summary json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", summary.Date)
			fmt.Fprintf(out, "Entries: %d\n", summary.TotalEntries)
			fmt.Fprintf(out, "Avg stress: %d/100\n", summary.AverageStress)
			fmt.Fprintf(out, "Dominant: %s\n", summary.Dominant)
			if summary.TotalEntries == 0 {
				return nil
			}
			fmt.Fprintln(out)
			for i, e := range summary.Entries {
				fmt.Fprintf(out, "%d. [%s] %s (%d)", i+1, e.LoggedAt.Local().Format("15:04"), e.Emotion, e.Stress)
				if e.Text != "" && !service.IsQuickText(e.Text) {
					fmt.Fprintf(out, " %s", e.Text)
				}
				fmt.Fprintln(out)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}
