// Package pricing - Module pricing
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"immoquote/core/types"
)

// ModuleSelection is one requested add-on in a quotation request.
// Quantity zero means "one".
type ModuleSelection struct {
	// ModuleID references a catalog module
	ModuleID string `json:"module_id"`

	// Quantity is the number of units, at least 1 when given
	Quantity int `json:"quantity,omitempty"`
}

// priceModule prices a single catalog module for the given property.
// The per-sqm component applies only when the module has area pricing
// and the property provides a living area; the line note records the
// applied area component.
func priceModule(m types.PricingModule, quantity int, specs types.PropertySpecs) types.ModuleLine {
	if quantity < 1 {
		quantity = 1
	}

	unit := decimal.NewFromInt(m.BasePrice)
	note := ""
	if m.HasAreaPricing() && specs.LivingArea > 0 {
		area := decimal.NewFromFloat(specs.LivingArea)
		component := decimal.NewFromInt(m.PricePerSqm).Mul(area)
		unit = unit.Add(component)
		note = fmt.Sprintf("includes area pricing: %d ct/sqm × %s sqm", m.PricePerSqm, area.String())
	}

	return types.ModuleLine{
		Module:     m,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(quantity))),
		Note:       note,
	}
}
