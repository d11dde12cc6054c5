// Package main is the entry point for the freelance-rate CLI.
package main

import (
	"fmt"
	"os"

	"freelance-rate/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
