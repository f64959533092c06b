// Package main provides the style-runner CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codestyle-ci/style-runner/pkg/version"
)

// versionCmd shows detailed version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "style-runner version: %s\n", info["version"])
		fmt.Fprintf(cmd.OutOrStdout(), "  build date: %s\n", info["buildDate"])
		fmt.Fprintf(cmd.OutOrStdout(), "  git commit: %s\n", info["gitCommit"])
		fmt.Fprintf(cmd.OutOrStdout(), "  go version: %s\n", info["goVersion"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
