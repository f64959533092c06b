// Package main is the entry point for the style-runner CLI.
package main

import (
	"context"
	"os"
	"syscall"

	appctx "github.com/codestyle-ci/style-runner/pkg/context"
)

func main() {
	ctx, stop := appctx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
