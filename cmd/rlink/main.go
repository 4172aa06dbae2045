// Package main is the entry point for the rlink build helper.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rlink/cmd/rlink/commands"
	"go.trai.ch/rlink/internal/app"
	_ "go.trai.ch/rlink/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provide ComponentProvider) int {
	components, err := provide(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
