package selector

import (
	"errors"
	"math"
	"sort"

	"dietplanner/internal/catalog"
)

// Preference restricts which diet types may be picked.
type Preference string

const (
	PreferVeg    Preference = "veg"
	PreferNonVeg Preference = "nonveg"
	PreferBoth   Preference = "both"
)

func (p Preference) Valid() bool {
	return p == PreferVeg || p == PreferNonVeg || p == PreferBoth
}

// ErrEmptySlot means a slot has nothing to offer even after the veg fallback.
// Validated catalogs never produce it.
var ErrEmptySlot = errors.New("no candidate food items for slot")

// SelectFood picks the item from items that best fits the calorie target
// without exceeding budget.
//
// Under PreferBoth a single coin flip decides whether the slot is served from
// its nonveg (heads) or veg (tails) items, so repeated calls can differ. A nil
// flipper always lands tails. When the filter leaves nothing, the slot's veg
// items are used instead.
//
// Candidates are ordered by budget overrun, then by distance from
// targetCalories; ties keep catalog order.
func SelectFood(
	items []catalog.FoodItem,
	targetCalories float64,
	budget float64,
	pref Preference,
	flipper Flipper,
) (catalog.FoodItem, error) {

	candidates := filter(items, pref, flipper)
	if len(candidates) == 0 {
		candidates = ofType(items, catalog.Veg)
	}
	if len(candidates) == 0 {
		return catalog.FoodItem{}, ErrEmptySlot
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		oi, oj := overrun(candidates[i], budget), overrun(candidates[j], budget)
		if oi != oj {
			return oi < oj
		}
		return calorieGap(candidates[i], targetCalories) < calorieGap(candidates[j], targetCalories)
	})

	return candidates[0], nil
}

func filter(items []catalog.FoodItem, pref Preference, flipper Flipper) []catalog.FoodItem {
	switch pref {
	case PreferVeg:
		return ofType(items, catalog.Veg)
	case PreferNonVeg:
		return ofType(items, catalog.NonVeg)
	case PreferBoth:
		if flipper != nil && flipper.Flip() {
			return ofType(items, catalog.NonVeg)
		}
		return ofType(items, catalog.Veg)
	}
	return nil
}

// ofType returns a fresh slice, so sorting never touches the caller's items.
func ofType(items []catalog.FoodItem, t catalog.DietType) []catalog.FoodItem {
	var out []catalog.FoodItem
	for _, item := range items {
		if item.DietType == t {
			out = append(out, item)
		}
	}
	return out
}

func overrun(item catalog.FoodItem, budget float64) float64 {
	return math.Max(0, float64(item.Price)-budget)
}

func calorieGap(item catalog.FoodItem, target float64) float64 {
	return math.Abs(float64(item.Calories) - target)
}
