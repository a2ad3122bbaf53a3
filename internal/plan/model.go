package plan

import (
	"errors"
	"fmt"

	"dietplanner/internal/allocation"
	"dietplanner/internal/catalog"
	"dietplanner/internal/health"
	"dietplanner/internal/metabolic"
	"dietplanner/internal/selector"
)

// ErrInvalidInput is the single failure surfaced for a bad profile.
var ErrInvalidInput = errors.New("invalid input")

// UserProfile is the validated input of one planning request.
type UserProfile struct {
	Age            int                     `json:"age"`
	Sex            metabolic.Sex           `json:"sex"`
	Weight         float64                 `json:"weight"`
	Height         float64                 `json:"height"`
	ActivityLevel  metabolic.ActivityLevel `json:"activity_level"`
	Goal           metabolic.Goal          `json:"goal"`
	DietPreference selector.Preference     `json:"diet_preference"`
	DailyBudget    float64                 `json:"daily_budget"`
}

// Validate rejects any zero, unset or out-of-domain field.
func (p UserProfile) Validate() error {
	switch {
	case p.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	case !p.Sex.Valid():
		return fmt.Errorf("%w: sex %q", ErrInvalidInput, p.Sex)
	case p.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	case !p.ActivityLevel.Valid():
		return fmt.Errorf("%w: activity level %q", ErrInvalidInput, p.ActivityLevel)
	case !p.Goal.Valid():
		return fmt.Errorf("%w: goal %q", ErrInvalidInput, p.Goal)
	case !p.DietPreference.Valid():
		return fmt.Errorf("%w: diet preference %q", ErrInvalidInput, p.DietPreference)
	case p.DailyBudget <= 0:
		return fmt.Errorf("%w: daily budget must be positive", ErrInvalidInput)
	}
	return nil
}

// MealPlan holds exactly one item per slot.
type MealPlan struct {
	Breakfast catalog.FoodItem `json:"breakfast"`
	Lunch     catalog.FoodItem `json:"lunch"`
	Dinner    catalog.FoodItem `json:"dinner"`
	Snack     catalog.FoodItem `json:"snack"`
	Drink     catalog.FoodItem `json:"drink"`
}

func (m *MealPlan) set(slot catalog.Slot, item catalog.FoodItem) {
	switch slot {
	case catalog.Breakfast:
		m.Breakfast = item
	case catalog.Lunch:
		m.Lunch = item
	case catalog.Dinner:
		m.Dinner = item
	case catalog.Snack:
		m.Snack = item
	case catalog.Drink:
		m.Drink = item
	}
}

// Items returns the five picks in plan order.
func (m MealPlan) Items() []catalog.FoodItem {
	return []catalog.FoodItem{m.Breakfast, m.Lunch, m.Dinner, m.Snack, m.Drink}
}

// Totals are the sums over the five picks. Macros are rounded to one decimal.
type Totals struct {
	Calories int     `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Carbs    float64 `json:"total_carbs"`
	Fats     float64 `json:"total_fats"`
	Fiber    float64 `json:"total_fiber"`
	Cost     int     `json:"total_cost"`
}

// Metrics are the body figures without any food selection.
type Metrics struct {
	BMI            float64        `json:"bmi"`
	BMR            int            `json:"bmr"`
	TDEE           int            `json:"tdee"`
	TargetCalories int            `json:"target_calories"`
	GoalPolicy     string         `json:"goal_policy"`
	Health         health.Verdict `json:"health"`
}

// PlanResult is what the caller renders.
type PlanResult struct {
	ID string `json:"id"`
	Metrics
	MealPlan   MealPlan           `json:"meal_plan"`
	Allocation []allocation.Share `json:"allocation"`
	Totals
}
