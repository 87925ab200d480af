// Package main is the entry point for the nuclide CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/nuclide/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
