// Package main provides the entry point for the skytrackr CLI tool.
package main

import (
	"context"

	"github.com/skytrackr/skytrackr/cmd/skytrackr/app"
	"github.com/skytrackr/skytrackr/cmd/skytrackr/cmd"
)

// Version information populated by the build system.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := cmd.Execute(ctx, version, commit, date); err != nil {
		app.ExitOnError(err)
	}
}
