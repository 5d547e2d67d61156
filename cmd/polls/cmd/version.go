package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boscoin.io/polls/lib/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Fprintf(output, "%s\n", version.ToDetailVersion())
	},
}
