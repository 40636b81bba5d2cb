// Command uncross removes self-intersections from Euclidean tours.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/uncross/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
