// Command boxlayout lays out terminal UI design documents.
//
// Usage:
//
//	boxlayout compute [flags] <design>...   Print node rectangles and warnings
//	boxlayout check [flags] <design>...     Fail when any design has warnings
//	boxlayout kinds                         List node kinds and default sizes
//	boxlayout version                       Print version information
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/boxlayout/internal/cli"
	"github.com/grindlemire/boxlayout/internal/debug"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	debug.Close()
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130) // Standard shell convention for SIGINT
	case errors.Is(err, cli.ErrWarnings):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
