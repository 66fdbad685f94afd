package moodlog

import (
	"database/sql"
	"fmt"

	"github.com/arjunv/moodlog/internal/app"
	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var (
	reportDate   string
	reportOutDir string
	reportPrint  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Save the daily text report",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(reportDate)
		if err != nil {
			return err
		}
		dir := reportOutDir
		if dir == "" {
			dir, err = app.DefaultReportsDir()
			if err != nil {
				return err
			}
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.Summarize(sqldb, date)
			if err != nil {
				return err
			}
			if summary.TotalEntries == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries for %s, nothing to report\n", date)
				return nil
			}
			if reportPrint {
				fmt.Fprint(cmd.OutOrStdout(), service.RenderReport(summary))
				return nil
			}
			path, err := service.SaveReport(summary, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved report to %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Date YYYY-MM-DD (default today)")
	reportCmd.Flags().StringVar(&reportOutDir, "out-dir", "", "Directory for report files (default config dir)")
	reportCmd.Flags().BoolVar(&reportPrint, "print", false, "Print the report instead of saving it")
}
