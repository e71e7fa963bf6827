package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/doeshing/xterm-go/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	opts := cli.Options{Verbose: isVerbose()}

	if err := cli.Execute(ctx, opts, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("XTERM_DEBUG"), "1") || strings.EqualFold(os.Getenv("XTERM_DEBUG"), "true")
}
