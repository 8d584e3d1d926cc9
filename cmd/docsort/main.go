// Package main provides the entry point for the docsort CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docsort-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
