// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the CLI version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("immoquote %s\n", Version)
	},
}
