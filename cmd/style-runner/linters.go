// Package main provides the style-runner CLI application.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codestyle-ci/style-runner/pkg/config"
	"github.com/codestyle-ci/style-runner/pkg/lint"
)

// lintersCmd represents the linters command
var lintersCmd = &cobra.Command{
	Use:   "linters",
	Short: "List known linters and their configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewLoader().Load()
		if err != nil {
			return err
		}

		for _, name := range []string{lint.ClangFormatName, lint.GofmtName} {
			lc, configured := cfg.Linter(name)
			switch {
			case !configured:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tnot configured\n", name)
			case lc.Enabled:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tenabled\t%s\n",
					name, strings.Join(lc.Extensions, ","))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tdisabled\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintersCmd)
}
