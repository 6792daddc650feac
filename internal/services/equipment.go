package services

import "math"

// DefaultEquipmentUnitCost is the average cost of one drainage unit, in thousands.
const DefaultEquipmentUnitCost = 20.0

// EquipmentCount converts an investment cost into a whole number of units,
// rounding half to even.
func EquipmentCount(cost, unitCost float64) int {
	if !(unitCost > 0) {
		return 0
	}
	return int(math.RoundToEven(cost / unitCost))
}
