// Package pricing - Delivery estimation
package pricing

import "immoquote/core/types"

const (
	// defaultDeliveryDays applies when no module is selected
	defaultDeliveryDays = 7

	// deliveryBufferDays widens the estimate into a range
	deliveryBufferDays = 3
)

// estimateDelivery derives the delivery window from the slowest
// selected module
func estimateDelivery(lines []types.ModuleLine) types.DeliveryEstimate {
	days := 0
	for _, line := range lines {
		if line.Module.EstimatedDeliveryDays > days {
			days = line.Module.EstimatedDeliveryDays
		}
	}
	if len(lines) == 0 {
		days = defaultDeliveryDays
	}
	return types.DeliveryEstimate{
		Min:  days,
		Max:  days + deliveryBufferDays,
		Unit: "days",
	}
}
