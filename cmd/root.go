package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagEnvFiles []string

var rootCmd = &cobra.Command{
	Use:           "budgetplanner",
	Short:         "Backend for the budget planner",
	Long:          "Serves the budget planner API: budgets, their monthly plans and recorded actuals.",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&flagEnvFiles, "env-file", "e", nil, "Files to load environment variables from (default .env)")
}
