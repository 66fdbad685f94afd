package moodlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "moodlog tracks emotional tone and stress from your terminal",
	Long:  "moodlog is a local-first wellness logger: record how you feel with one-tap emotions or free text, and review stress patterns with daily summaries, reports, and charts.",
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
