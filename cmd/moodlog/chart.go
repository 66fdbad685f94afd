package moodlog

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/arjunv/moodlog/internal/service"
	"github.com/arjunv/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var (
	chartDate    string
	chartAllTime bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the emotion distribution as a bar chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if !chartAllTime {
			var err error
			date, err = resolveDate(chartDate)
			if err != nil {
				return err
			}
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.Summarize(sqldb, date)
			if err != nil {
				return err
			}
			slices := service.ChartData(summary.Counts)

			out := cmd.OutOrStdout()
			if date == "" {
				fmt.Fprintln(out, "Distribution (all time)")
			} else {
				fmt.Fprintf(out, "Distribution for %s\n", date)
			}
			maxValue := 0
			for _, s := range slices {
				if s.Value > maxValue {
					maxValue = s.Value
				}
			}
			if maxValue == 0 {
				fmt.Fprintln(out, "No entries yet")
				return nil
			}
			for _, s := range slices {
				label := ui.EmotionStyle(s.Label).Render(fmt.Sprintf("%-12s", s.Label))
				fmt.Fprintf(out, "%s %-24s %d (%.0f%%)\n", label, horizontalBar(s.Value, maxValue, 24), s.Value, s.Percent)
			}
			return nil
		})
	},
}

func horizontalBar(value, maxValue, width int) string {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return ""
	}
	bars := int(math.Round((float64(value) / float64(maxValue)) * float64(width)))
	if bars == 0 {
		bars = 1
	}
	return strings.Repeat("#", bars)
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&chartDate, "date", "", "Date YYYY-MM-DD (default today)")
	chartCmd.Flags().BoolVar(&chartAllTime, "all", false, "Chart all entries instead of one day")
}
