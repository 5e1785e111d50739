// Package cmd provides the CLI commands for immoquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"immoquote/internal/config"
	"immoquote/internal/logging"
)

// Version is the CLI version, overridable at build time
var Version = "1.0.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "immoquote",
	Short: "Price real-estate marketing quotations",
	Long: `immoquote prices property-microsite quotations.

It combines a service tier, optional add-on modules and the property
attributes into a fully itemized quote: base package, module costs,
property adjustments, VAT, validity window and delivery estimate.

Examples:
  immoquote quote --tier PREMIUM --property-type HAUS --region MUENCHEN
  immoquote quote --tier BASIC --module floor-plan-2d --living-area 120 --format json
  immoquote recommend --tier ENTERPRISE --property-type GEWERBE
  immoquote catalog modules`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
