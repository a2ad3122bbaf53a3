package allocation

import "dietplanner/internal/catalog"

// Share is one slot's slice of the daily calorie target and budget.
type Share struct {
	Slot     catalog.Slot `json:"slot"`
	Calories float64      `json:"calories"`
	Budget   float64      `json:"budget"`
}

// Fixed proportions; each set sums to 1.
var (
	CalorieWeights = map[catalog.Slot]float64{
		catalog.Breakfast: 0.25,
		catalog.Lunch:     0.35,
		catalog.Dinner:    0.30,
		catalog.Snack:     0.07,
		catalog.Drink:     0.03,
	}

	BudgetWeights = map[catalog.Slot]float64{
		catalog.Breakfast: 0.20,
		catalog.Lunch:     0.35,
		catalog.Dinner:    0.30,
		catalog.Snack:     0.10,
		catalog.Drink:     0.05,
	}
)

// Allocate splits targetCalories and budget across the slots, in plan order.
// Values are left unrounded.
func Allocate(targetCalories, budget float64) []Share {
	shares := make([]Share, 0, len(catalog.Slots))
	for _, slot := range catalog.Slots {
		shares = append(shares, Share{
			Slot:     slot,
			Calories: targetCalories * CalorieWeights[slot],
			Budget:   budget * BudgetWeights[slot],
		})
	}
	return shares
}
