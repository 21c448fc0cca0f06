// Command conclave inspects parameter files and runs the statistics helpers.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/conclave/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil && !cli.WasReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
