// Package main - Entry point for the immoquote CLI
package main

import (
	"os"

	"immoquote/cmd/cli/cmd"
	"immoquote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
