package main

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/vectopo/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vinfo: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
