package plan

import (
	"errors"
	"math"
	"testing"

	"dietplanner/internal/catalog"
	"dietplanner/internal/health"
	"dietplanner/internal/metabolic"
	"dietplanner/internal/selector"
)

func sampleProfile() UserProfile {
	return UserProfile{
		Age:            30,
		Sex:            metabolic.Male,
		Weight:         70,
		Height:         175,
		ActivityLevel:  metabolic.Moderate,
		Goal:           metabolic.Maintain,
		DietPreference: selector.PreferVeg,
		DailyBudget:    500,
	}
}

func newTestService() *Service {
	return NewService(catalog.Builtin(), metabolic.DefaultGoalPolicy, selector.NewRandomFlipper(1))
}

func TestGenerate_ReferenceProfile(t *testing.T) {
	result, err := newTestService().Generate(sampleProfile(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BMI != 22.9 {
		t.Errorf("expected BMI 22.9, got %v", result.BMI)
	}
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	if result.BMR != 1649 {
		t.Errorf("expected BMR 1649, got %d", result.BMR)
	}
	// 1648.75 * 1.55 = 2555.5625
	if result.TargetCalories != 2556 || result.TDEE != 2556 {
		t.Errorf("expected target/TDEE 2556, got %d/%d", result.TargetCalories, result.TDEE)
	}
	if result.Health.Category != health.Normal {
		t.Errorf("expected Normal, got %s", result.Health.Category)
	}

	breakfast := result.Allocation[0]
	if breakfast.Slot != catalog.Breakfast || math.Abs(breakfast.Budget-100) > 1e-9 {
		t.Fatalf("unexpected breakfast share %+v", breakfast)
	}
	if math.Abs(breakfast.Calories-2555.5625*0.25) > 1e-9 {
		t.Errorf("expected breakfast calories %v, got %v", 2555.5625*0.25, breakfast.Calories)
	}

	// highest-calorie veg breakfast under 100, first in catalog order on the tie
	if got := result.MealPlan.Breakfast.Name; got != "Multigrain Paratha with Curd" {
		t.Errorf("unexpected breakfast %q", got)
	}

	for _, item := range result.MealPlan.Items() {
		if item.DietType != catalog.Veg {
			t.Errorf("veg plan contains %q", item.Name)
		}
	}

	if result.ID == "" {
		t.Error("expected a plan id")
	}
}

func TestGenerate_PicksComeFromTheirSlot(t *testing.T) {
	c := catalog.Builtin()
	result, err := Generate(c, sampleProfile(), metabolic.DefaultGoalPolicy, nil)
	if err != nil {
		t.Fatal(err)
	}

	picks := result.MealPlan.Items()
	for i, slot := range catalog.Slots {
		items, _ := c.Slice(slot)
		found := false
		for _, item := range items {
			if item == picks[i] {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s pick %q is not in the %s slice", slot, picks[i].Name, slot)
		}
	}
}

func TestGenerate_TotalsAreExactSums(t *testing.T) {
	for _, pref := range []selector.Preference{selector.PreferVeg, selector.PreferNonVeg, selector.PreferBoth} {
		p := sampleProfile()
		p.DietPreference = pref

		result, err := newTestService().Generate(p, Options{})
		if err != nil {
			t.Fatal(err)
		}

		var (
			cal, cost                   int
			protein, carbs, fats, fiber float64
		)
		for _, item := range result.MealPlan.Items() {
			cal += item.Calories
			cost += item.Price
			protein += item.Protein
			carbs += item.Carbs
			fats += item.Fats
			fiber += item.Fiber
		}

		if result.Calories != cal || result.Cost != cost {
			t.Errorf("%s: expected %d kcal/%d cost, got %d/%d", pref, cal, cost, result.Calories, result.Cost)
		}
		if result.Protein != round1(protein) || result.Carbs != round1(carbs) ||
			result.Fats != round1(fats) || result.Fiber != round1(fiber) {
			t.Errorf("%s: macro totals drifted: %+v", pref, result.Totals)
		}
	}
}

func TestGenerate_NonVegFallsBackOnVegOnlySlot(t *testing.T) {
	p := sampleProfile()
	p.DietPreference = selector.PreferNonVeg

	result, err := newTestService().Generate(p, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the builtin drink slice has no nonveg items
	if result.MealPlan.Drink.DietType != catalog.Veg {
		t.Errorf("expected veg drink, got %q", result.MealPlan.Drink.Name)
	}
	if result.MealPlan.Lunch.DietType != catalog.NonVeg {
		t.Errorf("expected nonveg lunch, got %q", result.MealPlan.Lunch.Name)
	}
}

func TestGenerate_BothWithPinnedCoin(t *testing.T) {
	p := sampleProfile()
	p.DietPreference = selector.PreferBoth

	result, err := newTestService().Generate(p, Options{Flipper: selector.AlwaysNonVeg})
	if err != nil {
		t.Fatal(err)
	}

	if result.MealPlan.Dinner.DietType != catalog.NonVeg {
		t.Errorf("expected nonveg dinner, got %q", result.MealPlan.Dinner.Name)
	}
	if result.MealPlan.Drink.DietType != catalog.Veg {
		t.Errorf("expected veg drink fallback, got %q", result.MealPlan.Drink.Name)
	}
}

func TestGenerate_SeededReplay(t *testing.T) {
	p := sampleProfile()
	p.DietPreference = selector.PreferBoth
	svc := newTestService()

	a, _ := svc.Generate(p, Options{Flipper: selector.NewRandomFlipper(42)})
	b, _ := svc.Generate(p, Options{Flipper: selector.NewRandomFlipper(42)})

	if a.MealPlan != b.MealPlan {
		t.Fatal("same seed produced different plans")
	}
	if a.ID == b.ID {
		t.Fatal("plan ids must be unique")
	}
}

func TestGenerate_MultiplicativePolicy(t *testing.T) {
	p := sampleProfile()
	p.Goal = metabolic.Lose

	svc := NewService(catalog.Builtin(), metabolic.PercentGoalPolicy, nil)
	result, err := svc.Generate(p, Options{})
	if err != nil {
		t.Fatal(err)
	}

	tdee := 1648.75 * 1.55
	if want := int(math.Round(tdee * 0.85)); result.TargetCalories != want {
		t.Errorf("expected %d, got %d", want, result.TargetCalories)
	}
	if result.GoalPolicy != "multiplicative" {
		t.Errorf("expected multiplicative, got %s", result.GoalPolicy)
	}
}

func TestGenerate_AdditivePolicyGain(t *testing.T) {
	p := sampleProfile()
	p.Goal = metabolic.Gain

	result, err := newTestService().Generate(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := int(math.Round(1648.75*1.55 + 500)); result.TargetCalories != want {
		t.Errorf("expected %d, got %d", want, result.TargetCalories)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserProfile)
	}{
		{"zero age", func(p *UserProfile) { p.Age = 0 }},
		{"unset sex", func(p *UserProfile) { p.Sex = "" }},
		{"unknown sex", func(p *UserProfile) { p.Sex = "other" }},
		{"zero weight", func(p *UserProfile) { p.Weight = 0 }},
		{"negative height", func(p *UserProfile) { p.Height = -170 }},
		{"unset activity", func(p *UserProfile) { p.ActivityLevel = "" }},
		{"unset goal", func(p *UserProfile) { p.Goal = "" }},
		{"unset diet", func(p *UserProfile) { p.DietPreference = "" }},
		{"zero budget", func(p *UserProfile) { p.DailyBudget = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleProfile()
			tt.mutate(&p)

			_, err := newTestService().Generate(p, Options{})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	m, err := newTestService().Metrics(sampleProfile())
	if err != nil {
		t.Fatal(err)
	}
	if m.BMI != 22.9 || m.BMR != 1649 || m.TargetCalories != 2556 {
		t.Errorf("unexpected metrics %+v", m)
	}

	if _, err := newTestService().Metrics(UserProfile{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
