// Package pricing - Quotation engine
// The engine is a set of pure functions over the read-only catalog: one
// call produces one fresh PricingCalculation and no state survives
// between calls, so concurrent use needs no locking.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"immoquote/core/catalog"
	"immoquote/core/types"
	"immoquote/internal/errors"
)

// validityDays is the quotation validity window
const validityDays = 30

// Calculator composes catalog lookups, module pricing, the adjustment
// pipeline, VAT and delivery estimation into full quotations
type Calculator struct {
	catalog *catalog.Catalog
	log     *zap.Logger
	now     func() time.Time
}

// Option configures a Calculator
type Option func(*Calculator)

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Calculator) { c.log = log }
}

// WithClock sets the time source, used by tests to pin ValidUntil
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// NewCalculator creates a calculator over the given catalog
func NewCalculator(cat *catalog.Catalog, opts ...Option) *Calculator {
	c := &Calculator{
		catalog: cat,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate produces a fully itemized quotation for a tier, a set of
// selected add-on modules and the property the microsite markets.
//
// Selections whose module id is not in the catalog are skipped: the
// resulting calculation is identical to one that never contained the
// selection. The skip is logged so client bugs stay observable.
func (c *Calculator) Calculate(tier types.Tier, selections []ModuleSelection, specs types.PropertySpecs) (*types.PricingCalculation, error) {
	if err := validateInput(selections, specs); err != nil {
		return nil, err
	}

	pkg, err := c.catalog.Package(tier)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.NewFromInt(pkg.Price)
	lines := make([]types.ModuleLine, 0, len(selections))
	for _, sel := range selections {
		m, ok := c.catalog.Module(sel.ModuleID)
		if !ok {
			c.log.Warn("skipping unknown module selection",
				zap.String("module_id", sel.ModuleID),
				zap.String("tier", tier.String()))
			continue
		}
		line := priceModule(m, sel.Quantity, specs)
		lines = append(lines, line)
		subtotal = subtotal.Add(line.TotalPrice)
	}

	subtotal, adjustments := applyAdjustments(subtotal, specs)

	totalAdjustments := decimal.Zero
	for _, a := range adjustments {
		totalAdjustments = totalAdjustments.Add(a.Amount)
	}

	tax := calculateTax(subtotal)
	now := c.now()

	return &types.PricingCalculation{
		BasePackage:       pkg,
		Modules:           lines,
		Adjustments:       adjustments,
		Subtotal:          subtotal,
		TotalAdjustments:  totalAdjustments,
		Tax:               tax,
		Total:             subtotal.Add(tax),
		Currency:          types.CurrencyEUR,
		ValidUntil:        now.AddDate(0, 0, validityDays),
		EstimatedDelivery: estimateDelivery(lines),
	}, nil
}

// validateInput rejects malformed property specs and selections before
// any pricing happens
func validateInput(selections []ModuleSelection, specs types.PropertySpecs) error {
	if !specs.Type.Valid() {
		return errors.Validation("unknown property type %q", specs.Type)
	}
	if !specs.Region.Valid() {
		return errors.Validation("unknown region %q", specs.Region)
	}
	if !specs.LuxuryClass.Valid() {
		return errors.Validation("unknown luxury class %q", specs.LuxuryClass)
	}
	if specs.LivingArea < 0 {
		return errors.Validation("living area must not be negative, got %v", specs.LivingArea)
	}
	if specs.TotalArea < 0 {
		return errors.Validation("total area must not be negative, got %v", specs.TotalArea)
	}
	if specs.RoomCount < 0 {
		return errors.Validation("room count must not be negative, got %v", specs.RoomCount)
	}
	for _, sel := range selections {
		if sel.Quantity < 0 {
			return errors.Validation("module %s: quantity must not be negative, got %d", sel.ModuleID, sel.Quantity)
		}
	}
	return nil
}
