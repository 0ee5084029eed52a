package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/pagedlist/internal/cli"
)

func main() {
	// Flags, config and subcommands are all handled by the CLI runner.
	code := cli.Run(os.Args[1:])
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
