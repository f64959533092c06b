// Package main provides the style-runner CLI application.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codestyle-ci/style-runner/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "style-runner",
	Short: "CI code-style checker",
	Long: `style-runner runs external formatting tools against a checked-out
source tree and reports formatting differences as precisely line-ranged
violations, suitable for review annotations.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
