// Package main is the entry point for the ltask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ltask/internal/backend/jsonfile"
	"ltask/internal/cli"
	"ltask/internal/commands"

	// Import all command packages to register them via init()
	_ "ltask/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create dispatcher with the JSON-file backend
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, jsonfile.New)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
