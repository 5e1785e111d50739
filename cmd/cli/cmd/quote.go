// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"immoquote/core/catalog"
	"immoquote/core/pricing"
	"immoquote/core/types"
	"immoquote/internal/config"
	"immoquote/internal/logging"
)

var (
	quoteTier        string
	quotePropType    string
	quoteRegion      string
	quoteLuxury      string
	quoteLivingArea  float64
	quoteTotalArea   float64
	quoteRooms       float64
	quoteModules     []string
	quoteFormat      string
	quoteSelectionIn string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a quotation",
	Long: `Compute a fully itemized quotation for a tier, add-on modules and
property attributes.

Modules are given as repeated --module flags, either "id" or "id:qty".
Alternatively --selection reads the whole request from a JSON file in
the API request format.

Examples:
  immoquote quote --tier PREMIUM --property-type HAUS --region MUENCHEN --module drone-photography
  immoquote quote --tier BASIC --property-type WOHNUNG --region DEUTSCHLAND --format json
  immoquote quote --selection request.json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "t", "", "service tier (BASIC, PREMIUM, ENTERPRISE)")
	quoteCmd.Flags().StringVar(&quotePropType, "property-type", "", "property type (WOHNUNG, HAUS, ...)")
	quoteCmd.Flags().StringVar(&quoteRegion, "region", "", "region (MUENCHEN, BAYERN, DEUTSCHLAND, EUROPA)")
	quoteCmd.Flags().StringVar(&quoteLuxury, "luxury-class", "", "luxury class (STANDARD, PREMIUM, LUXURY)")
	quoteCmd.Flags().Float64Var(&quoteLivingArea, "living-area", 0, "living area in sqm")
	quoteCmd.Flags().Float64Var(&quoteTotalArea, "total-area", 0, "total area in sqm")
	quoteCmd.Flags().Float64Var(&quoteRooms, "rooms", 0, "room count")
	quoteCmd.Flags().StringArrayVarP(&quoteModules, "module", "m", nil, "module selection, id or id:qty (repeatable)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "text", "output format (text, json)")
	quoteCmd.Flags().StringVarP(&quoteSelectionIn, "selection", "s", "", "JSON file with the full quotation request")
}

// quoteInput mirrors the API request format for --selection files
type quoteInput struct {
	Tier            types.Tier                `json:"tier"`
	SelectedModules []pricing.ModuleSelection `json:"selected_modules"`
	PropertySpecs   types.PropertySpecs       `json:"property_specs"`
}

func runQuote(cmd *cobra.Command, args []string) error {
	input, err := buildQuoteInput()
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	calc := pricing.NewCalculator(cat, pricing.WithLogger(logging.Logger))
	result, err := calc.Calculate(input.Tier, input.SelectedModules, input.PropertySpecs)
	if err != nil {
		return err
	}

	if quoteFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printCalculation(result)
	return nil
}

func buildQuoteInput() (*quoteInput, error) {
	if quoteSelectionIn != "" {
		data, err := os.ReadFile(quoteSelectionIn)
		if err != nil {
			return nil, fmt.Errorf("read selection file: %w", err)
		}
		var input quoteInput
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("parse selection file: %w", err)
		}
		return &input, nil
	}

	selections := make([]pricing.ModuleSelection, 0, len(quoteModules))
	for _, raw := range quoteModules {
		sel, err := parseModuleFlag(raw)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}

	return &quoteInput{
		Tier:            types.Tier(quoteTier),
		SelectedModules: selections,
		PropertySpecs: types.PropertySpecs{
			Type:        types.PropertyType(quotePropType),
			LivingArea:  quoteLivingArea,
			TotalArea:   quoteTotalArea,
			RoomCount:   quoteRooms,
			Region:      types.Region(quoteRegion),
			LuxuryClass: types.LuxuryClass(quoteLuxury),
		},
	}, nil
}

// parseModuleFlag parses "id" or "id:qty"
func parseModuleFlag(raw string) (pricing.ModuleSelection, error) {
	id, qtyRaw, found := strings.Cut(raw, ":")
	if !found {
		return pricing.ModuleSelection{ModuleID: id}, nil
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		return pricing.ModuleSelection{}, fmt.Errorf("invalid module quantity %q: %w", raw, err)
	}
	return pricing.ModuleSelection{ModuleID: id, Quantity: qty}, nil
}

// loadCatalog builds the catalog, with pricing overrides when
// configured
func loadCatalog() (*catalog.Catalog, error) {
	cat := catalog.Default()
	if file := config.Get().Pricing.OverridesFile; file != "" {
		if err := cat.ApplyOverridesFile(file); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func printCalculation(calc *types.PricingCalculation) {
	fmt.Printf("Quotation — %s package\n\n", calc.BasePackage.Name)
	fmt.Printf("  %-46s %14s\n", calc.BasePackage.Name+" package", formatEUR(decimal.NewFromInt(calc.BasePackage.Price)))

	for _, line := range calc.Modules {
		label := line.Module.Name
		if line.Quantity > 1 {
			label = fmt.Sprintf("%s × %d", label, line.Quantity)
		}
		fmt.Printf("  %-46s %14s\n", label, formatEUR(line.TotalPrice))
		if line.Note != "" {
			fmt.Printf("    (%s)\n", line.Note)
		}
	}

	for _, adj := range calc.Adjustments {
		label := fmt.Sprintf("Adjustment: %s (×%s)", adj.Description, adj.Factor.String())
		fmt.Printf("  %-46s %14s\n", label, formatEUR(adj.Amount))
	}

	fmt.Println()
	fmt.Printf("  %-46s %14s\n", "Subtotal", formatEUR(calc.Subtotal))
	fmt.Printf("  %-46s %14s\n", "VAT (19%)", formatEUR(calc.Tax))
	fmt.Printf("  %-46s %14s\n", "Total", formatEUR(calc.Total))
	fmt.Println()
	fmt.Printf("  Delivery: %d–%d %s\n", calc.EstimatedDelivery.Min, calc.EstimatedDelivery.Max, calc.EstimatedDelivery.Unit)
	fmt.Printf("  Valid until: %s\n", calc.ValidUntil.Format("2006-01-02"))
}

// formatEUR renders minor-unit decimals as euros, banker's rounding
func formatEUR(minorUnits decimal.Decimal) string {
	return minorUnits.Div(decimal.NewFromInt(100)).StringFixedBank(2) + " €"
}
