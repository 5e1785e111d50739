// Package pricing - VAT
package pricing

import "github.com/shopspring/decimal"

// vatRate is the fixed German VAT rate applied to the adjusted subtotal
var vatRate = decimal.RequireFromString("0.19")

// calculateTax returns the exact VAT on the subtotal. No rounding is
// performed here; callers round at presentation time.
func calculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(vatRate)
}
