// Package cmd - recommend command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"immoquote/core/pricing"
	"immoquote/core/types"
)

var (
	recTier     string
	recPropType string
	recLuxury   string
	recFormat   string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest add-on modules for a tier and property",
	Long: `List the modules the engine would suggest for a tier/property
combination: tier-required modules, recommended modules the tier
allows, plus property-driven additions.

Examples:
  immoquote recommend --tier ENTERPRISE
  immoquote recommend --tier PREMIUM --property-type GEWERBE
  immoquote recommend --tier BASIC --luxury-class LUXURY --format json`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recTier, "tier", "t", "", "service tier (BASIC, PREMIUM, ENTERPRISE)")
	recommendCmd.Flags().StringVar(&recPropType, "property-type", "", "property type")
	recommendCmd.Flags().StringVar(&recLuxury, "luxury-class", "", "luxury class")
	recommendCmd.Flags().StringVarP(&recFormat, "format", "f", "text", "output format (text, json)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	rec := pricing.NewRecommender(cat)
	modules, err := rec.Recommend(types.Tier(recTier), types.PropertySpecs{
		Type:        types.PropertyType(recPropType),
		LuxuryClass: types.LuxuryClass(recLuxury),
	})
	if err != nil {
		return err
	}

	if recFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(modules)
	}

	fmt.Printf("Recommended modules for %s:\n\n", recTier)
	for _, m := range modules {
		fmt.Printf("  %-26s %-10s %12s  (%d days)\n",
			m.ID, m.Category, formatEUR(decimal.NewFromInt(m.BasePrice)), m.EstimatedDeliveryDays)
	}
	return nil
}
