// Package pricing - Adjustment pipeline
// Property attributes scale the subtotal through a fixed, ordered chain
// of multiplicative rules. Each rule sees the subtotal as modified by
// every prior rule, so the numeric result depends on the order; the
// pipeline must not be reordered.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"immoquote/core/types"
)

var one = decimal.NewFromInt(1)

var propertyTypeFactors = map[types.PropertyType]decimal.Decimal{
	types.PropertyWohnung:          decimal.RequireFromString("1.00"),
	types.PropertyHaus:             decimal.RequireFromString("1.15"),
	types.PropertyReihenhaus:       decimal.RequireFromString("1.10"),
	types.PropertyDoppelhaus:       decimal.RequireFromString("1.20"),
	types.PropertyMehrfamilienhaus: decimal.RequireFromString("1.30"),
	types.PropertyGewerbe:          decimal.RequireFromString("1.40"),
}

var regionFactors = map[types.Region]decimal.Decimal{
	types.RegionMuenchen:    decimal.RequireFromString("1.15"),
	types.RegionBayern:      decimal.RequireFromString("1.05"),
	types.RegionDeutschland: decimal.RequireFromString("1.00"),
	types.RegionEuropa:      decimal.RequireFromString("1.20"),
}

var luxuryFactors = map[types.LuxuryClass]decimal.Decimal{
	types.LuxuryPremium: decimal.RequireFromString("1.10"),
	types.LuxuryLuxury:  decimal.RequireFromString("1.25"),
}

const largePropertySqm = 300

var largePropertyFactor = decimal.RequireFromString("1.15")

// adjustmentRule yields a factor and description for the property, or
// ok=false when the rule does not apply
type adjustmentRule struct {
	kind types.AdjustmentType
	eval func(specs types.PropertySpecs) (factor decimal.Decimal, description string, ok bool)
}

// pipeline returns the adjustment rules in their fixed order:
// property type, region, luxury class, size.
func pipeline() []adjustmentRule {
	return []adjustmentRule{
		{
			kind: types.AdjustmentPropertyType,
			eval: func(specs types.PropertySpecs) (decimal.Decimal, string, bool) {
				f, ok := propertyTypeFactors[specs.Type]
				return f, fmt.Sprintf("property type %s", specs.Type), ok
			},
		},
		{
			kind: types.AdjustmentRegion,
			eval: func(specs types.PropertySpecs) (decimal.Decimal, string, bool) {
				f, ok := regionFactors[specs.Region]
				return f, fmt.Sprintf("region %s", specs.Region), ok
			},
		},
		{
			kind: types.AdjustmentLuxury,
			eval: func(specs types.PropertySpecs) (decimal.Decimal, string, bool) {
				f, ok := luxuryFactors[specs.LuxuryClass]
				return f, fmt.Sprintf("luxury class %s", specs.LuxuryClass), ok
			},
		},
		{
			kind: types.AdjustmentSize,
			eval: func(specs types.PropertySpecs) (decimal.Decimal, string, bool) {
				if specs.LivingArea > largePropertySqm {
					return largePropertyFactor, fmt.Sprintf("living area over %d sqm", largePropertySqm), true
				}
				return decimal.Decimal{}, "", false
			},
		},
	}
}

// applyAdjustments runs the pipeline over the subtotal. A neutral
// factor produces no record and leaves the subtotal unchanged; every
// other rule computes its amount against the running subtotal and
// feeds the result into the next rule.
func applyAdjustments(subtotal decimal.Decimal, specs types.PropertySpecs) (decimal.Decimal, []types.Adjustment) {
	var records []types.Adjustment

	running := subtotal
	for _, rule := range pipeline() {
		factor, description, ok := rule.eval(specs)
		if !ok || factor.Equal(one) {
			continue
		}
		amount := running.Mul(factor.Sub(one))
		records = append(records, types.Adjustment{
			Type:        rule.kind,
			Factor:      factor,
			Amount:      amount,
			Description: description,
		})
		running = running.Add(amount)
	}

	return running, records
}
