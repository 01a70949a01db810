// Package main is the entrypoint of ytd.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ytd/internal/cfg"
	"ytd/internal/domain/paths"
)

// main is the main entrypoint of the program.
func main() {
	os.Exit(run())
}

func run() int {
	progFiles, err := paths.InitProgFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ytd exiting with error: %v\n", err)
		return 1
	}

	// Ctrl-C is handled per command by the shell.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := cfg.InitCommands(progFiles); err != nil {
		fmt.Fprintf(os.Stderr, "ytd exiting with error: %v\n", err)
		return 1
	}

	if err := cfg.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ytd exiting with error: %v\n", err)
		return 1
	}
	return 0
}
