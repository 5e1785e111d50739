// Package cmd - catalog commands
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	pricingcatalog "immoquote/core/catalog"
)

// catalogCmd groups catalog inspection commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the service catalog",
}

// catalogPackagesCmd lists the base packages
var catalogPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List base packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, p := range cat.Packages() {
			fmt.Printf("%-12s %-12s %12s\n", p.Tier, p.Name, formatEUR(decimal.NewFromInt(p.Price)))
			for _, f := range p.Features {
				fmt.Printf("    - %s\n", f)
			}
		}
		return nil
	},
}

// catalogModulesCmd lists the add-on modules
var catalogModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List add-on modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, m := range cat.Modules() {
			area := ""
			if m.HasAreaPricing() {
				area = fmt.Sprintf(" + %d ct/sqm", m.PricePerSqm)
			}
			fmt.Printf("%-26s %-10s %12s%s\n", m.ID, m.Category, formatEUR(decimal.NewFromInt(m.BasePrice)), area)
		}
		return nil
	},
}

// catalogCheckCmd validates a pricing overrides file
var catalogCheckCmd = &cobra.Command{
	Use:   "check [overrides-file]",
	Short: "Validate a pricing overrides file",
	Long: `Parse a pricing overrides file and apply it to a scratch copy of the
catalog, reporting the first problem found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := pricingcatalog.Default()
		if err := cat.ApplyOverridesFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: OK\n", args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogPackagesCmd)
	catalogCmd.AddCommand(catalogModulesCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}
