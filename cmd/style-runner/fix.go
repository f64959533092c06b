// Package main provides the style-runner CLI application.
package main

import (
	"github.com/spf13/cobra"
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix [dir]",
	Short: "Rewrite files in place with each formatter",
	Long: `Fix runs every enabled linter in apply mode, rewriting the matched
files in place. No per-line annotations are produced; only the raw tool
status is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStyleCheck(cmd, args, true)
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
