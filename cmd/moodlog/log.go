package moodlog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log [text...]",
	Short: "Analyze free text and record the detected emotion",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.LogText(sqldb, text, time.Now())
			if err != nil {
				if errors.Is(err, service.ErrEmptyText) {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to analyze. Tell me how you feel, e.g.: moodlog log \"exam pressure is building\"")
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Emotion: %s\n", entry.Emotion)
			fmt.Fprintf(cmd.OutOrStdout(), "Stress: %d/100\n", entry.Stress)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
