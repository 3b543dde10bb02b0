// Command fixer replays sticky-element scenarios against a synthetic
// page: simulate prints the transition trace, snapshot renders a frame.
package main

import (
	"fmt"
	"os"

	"github.com/alexspark86/Fixer/cmd/fixer/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
