// Command crucible computes the cheapest top-left to bottom-right traversal
// of digit cost grids under the basic and windowed movement policies.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/katalvlaran/crucible/cmd/crucible/internal"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n%s", r, debug.Stack())
			os.Exit(internal.ExitError)
		}
	}()

	cmd := newRootCmd()
	if err := execute(context.Background(), cmd); err != nil {
		os.Exit(internal.HandleError(cmd, err))
	}
}
