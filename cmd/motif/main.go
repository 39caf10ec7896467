// SPDX-License-Identifier: MIT

// Command motif counts subgraph matches between two amalfi graph files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/katalvlaran/motif/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand(afero.NewOsFs()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "motif:", err)
		os.Exit(1)
	}
}
