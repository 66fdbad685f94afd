package moodlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/arjunv/moodlog/internal/model"
	"github.com/arjunv/moodlog/internal/service"
	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick <emotion>",
	Short: "Record an emotion with one tap, skipping text analysis",
	Long:  "Record an emotion directly. Valid emotions: " + strings.Join(model.EmotionNames(), ", ") + ".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emotion, err := model.ParseEmotion(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.LogQuick(sqldb, emotion, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (stress %d/100)\n", entry.Emotion, entry.Stress)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(quickCmd)
}
