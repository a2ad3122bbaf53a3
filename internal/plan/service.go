package plan

import (
	"fmt"
	"math"

	"dietplanner/internal/allocation"
	"dietplanner/internal/catalog"
	"dietplanner/internal/health"
	"dietplanner/internal/metabolic"
	"dietplanner/internal/selector"

	"github.com/google/uuid"
)

type Service struct {
	catalog *catalog.Catalog
	policy  metabolic.GoalPolicy
	flipper selector.Flipper
}

func NewService(
	c *catalog.Catalog,
	policy metabolic.GoalPolicy,
	flipper selector.Flipper,
) *Service {
	if policy == nil {
		policy = metabolic.DefaultGoalPolicy
	}
	return &Service{
		catalog: c,
		policy:  policy,
		flipper: flipper,
	}
}

// Options override per-request behaviour. A nil Flipper uses the service's.
type Options struct {
	Flipper selector.Flipper
}

// --------------------------------------------------
// Metrics only
// --------------------------------------------------
func (s *Service) Metrics(p UserProfile) (*Metrics, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, _, err := computeMetrics(p, s.policy)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// Full plan
// --------------------------------------------------
func (s *Service) Generate(p UserProfile, opts Options) (*PlanResult, error) {
	flipper := opts.Flipper
	if flipper == nil {
		flipper = s.flipper
	}

	result, err := Generate(s.catalog, p, s.policy, flipper)
	if err != nil {
		return nil, err
	}

	result.ID = uuid.New().String()
	return result, nil
}

// Generate runs the whole pipeline for one profile: metrics, allocation,
// one selection per slot, totals. It holds no state of its own.
func Generate(
	c *catalog.Catalog,
	p UserProfile,
	policy metabolic.GoalPolicy,
	flipper selector.Flipper,
) (*PlanResult, error) {

	if err := p.Validate(); err != nil {
		return nil, err
	}

	metrics, target, err := computeMetrics(p, policy)
	if err != nil {
		return nil, err
	}

	shares := allocation.Allocate(target, p.DailyBudget)

	var meals MealPlan
	for _, share := range shares {
		items, err := c.Slice(share.Slot)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", share.Slot, err)
		}

		pick, err := selector.SelectFood(
			items,
			share.Calories,
			share.Budget,
			p.DietPreference,
			flipper,
		)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", share.Slot, err)
		}

		meals.set(share.Slot, pick)
	}

	return &PlanResult{
		Metrics:    *metrics,
		MealPlan:   meals,
		Allocation: shares,
		Totals:     sumTotals(meals),
	}, nil
}

// computeMetrics also returns the unrounded target, which drives allocation.
func computeMetrics(p UserProfile, policy metabolic.GoalPolicy) (*Metrics, float64, error) {
	bmi := metabolic.ComputeBMI(p.Weight, p.Height)
	bmr := metabolic.ComputeBMR(p.Weight, p.Height, p.Age, p.Sex)
	if bmi == 0 || bmr == 0 {
		return nil, 0, ErrInvalidInput
	}

	tdee, err := metabolic.ComputeTDEE(bmr, p.ActivityLevel)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	target := tdee + policy.Adjustment(tdee, p.Goal)

	shown := round1(bmi)

	return &Metrics{
		BMI:            shown,
		BMR:            roundInt(bmr),
		TDEE:           roundInt(tdee),
		TargetCalories: roundInt(target),
		GoalPolicy:     policy.Name(),
		Health:         health.Classify(shown),
	}, target, nil
}

func sumTotals(m MealPlan) Totals {
	var (
		t                           Totals
		protein, carbs, fats, fiber float64
	)
	for _, item := range m.Items() {
		t.Calories += item.Calories
		t.Cost += item.Price
		protein += item.Protein
		carbs += item.Carbs
		fats += item.Fats
		fiber += item.Fiber
	}

	t.Protein = round1(protein)
	t.Carbs = round1(carbs)
	t.Fats = round1(fats)
	t.Fiber = round1(fiber)
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
