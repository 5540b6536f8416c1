package cmd

import (
	"fmt"

	"github.com/budgetplanner/backend/internal/router"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), router.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
