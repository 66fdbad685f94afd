package moodlog

import (
	"fmt"

	"github.com/arjunv/moodlog/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "moodlog %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
