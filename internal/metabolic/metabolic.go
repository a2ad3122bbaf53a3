package metabolic

import (
	"errors"
	"fmt"
	"strings"
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

var ErrUnknownActivityLevel = errors.New("unknown activity level")

// activityFactors is the single source of truth for valid activity levels.
var activityFactors = map[ActivityLevel]float64{
	Sedentary:  1.20,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.90,
}

func (s Sex) Valid() bool {
	return s == Male || s == Female
}

func (l ActivityLevel) Valid() bool {
	_, ok := activityFactors[l]
	return ok
}

func (g Goal) Valid() bool {
	return g == Lose || g == Maintain || g == Gain
}

// ActivityFactor returns the TDEE multiplier for level.
func ActivityFactor(level ActivityLevel) (float64, error) {
	f, ok := activityFactors[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivityLevel, level)
	}
	return f, nil
}

// ComputeBMI returns weight / height_m². 0 means unavailable.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// ComputeBMR applies Mifflin-St Jeor. 0 means unavailable.
func ComputeBMR(weightKg, heightCm float64, age int, sex Sex) float64 {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 || !sex.Valid() {
		return 0
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE scales bmr by the activity factor.
func ComputeTDEE(bmr float64, level ActivityLevel) (float64, error) {
	f, err := ActivityFactor(level)
	if err != nil {
		return 0, err
	}
	return bmr * f, nil
}

// ComputeTargetCalories is TDEE plus the policy's goal adjustment.
func ComputeTargetCalories(bmr float64, level ActivityLevel, goal Goal, policy GoalPolicy) (float64, error) {
	tdee, err := ComputeTDEE(bmr, level)
	if err != nil {
		return 0, err
	}
	return tdee + policy.Adjustment(tdee, goal), nil
}

// --------------------------------------------------
// Goal policy
// --------------------------------------------------

// GoalPolicy turns a goal into a calorie adjustment on top of TDEE.
// A process picks one policy at startup and uses it for every request.
type GoalPolicy interface {
	Name() string
	Adjustment(tdee float64, goal Goal) float64
}

// AdditiveGoalPolicy shifts TDEE by a fixed number of kcal per day.
type AdditiveGoalPolicy struct {
	Kcal float64
}

func (p AdditiveGoalPolicy) Name() string { return "additive" }

func (p AdditiveGoalPolicy) Adjustment(tdee float64, goal Goal) float64 {
	switch goal {
	case Lose:
		return -p.Kcal
	case Gain:
		return p.Kcal
	}
	return 0
}

// MultiplicativeGoalPolicy shifts TDEE by a fraction of itself.
type MultiplicativeGoalPolicy struct {
	Fraction float64
}

func (p MultiplicativeGoalPolicy) Name() string { return "multiplicative" }

func (p MultiplicativeGoalPolicy) Adjustment(tdee float64, goal Goal) float64 {
	switch goal {
	case Lose:
		return -tdee * p.Fraction
	case Gain:
		return tdee * p.Fraction
	}
	return 0
}

// 500 kcal/day is roughly 0.5 kg per week.
var (
	DefaultGoalPolicy GoalPolicy = AdditiveGoalPolicy{Kcal: 500}
	PercentGoalPolicy GoalPolicy = MultiplicativeGoalPolicy{Fraction: 0.15}
)

// ParseGoalPolicy maps a config value to a policy. Empty selects the default.
func ParseGoalPolicy(name string) (GoalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "additive":
		return DefaultGoalPolicy, nil
	case "multiplicative", "percent":
		return PercentGoalPolicy, nil
	}
	return nil, fmt.Errorf("unknown goal policy %q", name)
}
