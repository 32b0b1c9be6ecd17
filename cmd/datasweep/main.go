// Package main is the entry point for the datasweep CLI.
package main

import (
	"os"

	"github.com/datasweep/datasweep/cmd/datasweep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
