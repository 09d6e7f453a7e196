package main

import (
	"context"
	"fmt"
	"os"

	"fairdiv/pkg/divtool"
)

// Package main wires the CLI arguments to the divtool package.
func main() {
	if len(os.Args) < 2 {
		divtool.PrintGlobalUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		divtool.PrintGlobalUsage()
		return
	}

	ctx, cancel := divtool.WithTimeout()
	defer cancel()

	app, err := newApp(ctx, cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var run func(context.Context, []string) error
	switch cmd {
	case "solve":
		run = app.RunSolve
	case "region":
		run = app.RunRegion
	case "info":
		run = app.RunInfo
	case "submit":
		run = app.RunSubmit
	case "list":
		run = app.RunList
	case "get":
		run = app.RunGet
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		divtool.PrintGlobalUsage()
		os.Exit(1)
	}

	if err := run(ctx, os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cmd string) (*divtool.App, error) {
	if divtool.IsClusterCommand(cmd) {
		app, err := divtool.NewApp(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating Kubernetes client: %w", err)
		}
		return app, nil
	}
	return divtool.NewLocalApp(ctx)
}
