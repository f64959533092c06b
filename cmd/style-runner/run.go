// Package main provides the style-runner CLI application.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codestyle-ci/style-runner/pkg/config"
	"github.com/codestyle-ci/style-runner/pkg/lint"
	"github.com/codestyle-ci/style-runner/pkg/observability"
	"github.com/codestyle-ci/style-runner/pkg/report"
)

// runStyleCheck is the shared driver behind check and fix.
func runStyleCheck(cmd *cobra.Command, args []string, fix bool) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := config.NewLoader().WithProjectRoot(dir).Load()
	if err != nil {
		return err
	}

	log := observability.NewLogger(cfg.Global.LogLevel).With(
		observability.String("run_id", uuid.NewString()))

	registry := buildRegistry(cfg, log)
	results := runLinters(cmd.Context(), registry, cfg, log, dir, fix)

	out := cmd.OutOrStdout()
	report.WriteSummary(out, results)
	if !fix && !checkOpts.noAnnotations && report.InGitHubActions() {
		report.WriteActionsAnnotations(out, results)
	}

	if report.Failed(results, checkOpts.strict) {
		return fmt.Errorf("style check failed")
	}
	return nil
}

// buildRegistry registers an adapter for every enabled linter the
// toolkit knows how to drive. Unknown names are skipped with a warning
// so a shared config can mention linters this build doesn't carry.
func buildRegistry(cfg *config.Config, log observability.Logger) *lint.Registry {
	registry := lint.NewRegistry()
	for _, lc := range cfg.EnabledLinters() {
		opts := []lint.Option{
			lint.WithConcurrency(cfg.Global.Concurrency),
			lint.WithTimeout(cfg.Global.Timeout),
			lint.WithLogger(log),
		}
		if lc.Severity != "" {
			opts = append(opts, lint.WithSeverity(lint.Severity(lc.Severity)))
		}

		switch lc.Name {
		case lint.ClangFormatName:
			registry.Register(lint.NewClangFormat(opts...))
		case lint.GofmtName:
			registry.Register(lint.NewGofmt(opts...))
		default:
			log.Warn("no adapter for configured linter",
				observability.String("linter", lc.Name))
		}
	}
	return registry
}

// runLinters drives every registered linter to completion. A failing
// linter never blocks the others; its failure becomes part of the
// results.
func runLinters(ctx context.Context, registry *lint.Registry, cfg *config.Config, log observability.Logger, dir string, fix bool) []report.LinterResult {
	var results []report.LinterResult

	for _, lc := range cfg.EnabledLinters() {
		l, ok := registry.Get(lc.Name)
		if !ok {
			continue
		}

		if err := l.VerifySetup(dir); err != nil {
			log.Error("linter setup failed",
				observability.String("linter", lc.Name), observability.Err(err))
			results = append(results, report.LinterResult{Name: lc.Name, Err: err})
			continue
		}

		env, err := l.Lint(ctx, dir, lc.Extensions, fix)
		if env == nil {
			results = append(results, report.LinterResult{Name: lc.Name, Err: err})
			continue
		}
		if err != nil {
			// Partial failure: the envelope is still valid and the
			// failed files are recorded inside it.
			log.Warn("some files could not be checked",
				observability.String("linter", lc.Name), observability.Err(err))
		}

		if fix {
			results = append(results, report.LinterResult{Name: lc.Name, Result: fixResult(env)})
			continue
		}

		res, perr := l.ParseOutput(dir, env)
		if perr != nil {
			results = append(results, report.LinterResult{Name: lc.Name, Err: perr})
			continue
		}
		results = append(results, report.LinterResult{Name: lc.Name, Result: res})
	}

	return results
}

// fixResult converts a fix-mode envelope, which carries only the raw
// tool status and stderr, into a result.
func fixResult(env *lint.Envelope) *lint.Result {
	res := &lint.Result{Success: env.Status == 0}
	if env.Status != 0 {
		msg := strings.TrimSpace(env.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("formatter exited with status %d", env.Status)
		}
		res.Failures = append(res.Failures, msg)
	}
	return res
}
