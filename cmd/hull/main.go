// Command hull evaluates, generates and verifies upper-envelope workloads.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hull/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCodeOf(err))
	}
}
