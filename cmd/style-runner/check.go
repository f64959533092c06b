// Package main provides the style-runner CLI application.
package main

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check formatting and report violations",
	Long: `Check runs every enabled linter against the source tree and reports
formatting differences as line-ranged violations.

The exit status is non-zero when a linter could not run or produced
error-severity violations. Warnings fail the run only with --strict.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStyleCheck(cmd, args, false)
	},
}

// checkFlags holds the flags for the check command
type checkFlags struct {
	strict        bool
	noAnnotations bool
}

var checkOpts checkFlags

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkOpts.strict, "strict", false, "Fail the run on warnings too")
	checkCmd.Flags().BoolVar(&checkOpts.noAnnotations, "no-annotations", false, "Suppress CI annotation output")
}
