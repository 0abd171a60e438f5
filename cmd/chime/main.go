package main

import (
	"fmt"
	"os"

	"github.com/RonaldDijks/chime/cmd/chime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
